package dto

import "support-desk-backend/internal/model"

type CreateConversationRequest struct {
	CustomerID    string `json:"customerId" validate:"required"`
	Subject       string `json:"subject" validate:"required"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=open pending resolved"`
	Channel       string `json:"channel,omitempty" validate:"omitempty,oneof=chat email voice sms"`
	Priority      string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	AssignedAgent string `json:"assignedAgent,omitempty"`
}

func (r CreateConversationRequest) ToModel() model.Conversation {
	return model.Conversation{
		CustomerID:    r.CustomerID,
		Subject:       r.Subject,
		Status:        model.ConversationStatus(orDefault(r.Status, string(model.ConversationStatusOpen))),
		Channel:       model.Channel(orDefault(r.Channel, string(model.ChannelChat))),
		Priority:      model.Priority(orDefault(r.Priority, string(model.PriorityMedium))),
		AssignedAgent: r.AssignedAgent,
	}
}

type UpdateConversationRequest struct {
	CustomerID    *string `json:"customerId,omitempty" validate:"omitempty,min=1"`
	Subject       *string `json:"subject,omitempty" validate:"omitempty,min=1"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=open pending resolved"`
	Channel       *string `json:"channel,omitempty" validate:"omitempty,oneof=chat email voice sms"`
	Priority      *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	AssignedAgent *string `json:"assignedAgent,omitempty"`
}

func (r UpdateConversationRequest) ToPatch() model.ConversationPatch {
	patch := model.ConversationPatch{
		CustomerID:    r.CustomerID,
		Subject:       r.Subject,
		AssignedAgent: r.AssignedAgent,
	}
	if r.Status != nil {
		status := model.ConversationStatus(*r.Status)
		patch.Status = &status
	}
	if r.Channel != nil {
		channel := model.Channel(*r.Channel)
		patch.Channel = &channel
	}
	if r.Priority != nil {
		priority := model.Priority(*r.Priority)
		patch.Priority = &priority
	}
	return patch
}

type PostMessageRequest struct {
	Sender  string `json:"sender" validate:"required,oneof=customer agent ai"`
	Content string `json:"content" validate:"required"`
	IsRead  bool   `json:"isRead"`
}

func (r PostMessageRequest) ToModel(conversationID string) model.Message {
	return model.Message{
		ConversationID: conversationID,
		Sender:         model.Sender(r.Sender),
		Content:        r.Content,
		IsRead:         r.IsRead,
	}
}

// PostMessageResponse omits AIMessage when no assistant reply was stored.
type PostMessageResponse struct {
	UserMessage model.Message  `json:"userMessage"`
	AIMessage   *model.Message `json:"aiMessage,omitempty"`
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
