package support

import (
	"context"
	"log"

	"support-desk-backend/internal/assist"
	"support-desk-backend/internal/dto"
	"support-desk-backend/internal/model"
)

func (s *Service) ListConversations() []model.Conversation {
	return s.store.ListConversations()
}

func (s *Service) GetConversation(id string) (model.Conversation, error) {
	c, ok := s.store.GetConversation(id)
	if !ok {
		return model.Conversation{}, notFound("conversation")
	}
	return c, nil
}

func (s *Service) CreateConversation(ctx context.Context, req dto.CreateConversationRequest) (model.Conversation, error) {
	if err := checkRequest(req); err != nil {
		return model.Conversation{}, err
	}
	c := s.store.CreateConversation(req.ToModel())
	s.publish(ctx, EventConversationCreated, c, "")
	return c, nil
}

func (s *Service) UpdateConversation(ctx context.Context, id string, req dto.UpdateConversationRequest) (model.Conversation, error) {
	if err := checkRequest(req); err != nil {
		return model.Conversation{}, err
	}
	c, ok := s.store.UpdateConversation(id, req.ToPatch())
	if !ok {
		return model.Conversation{}, notFound("conversation")
	}
	s.publish(ctx, EventConversationUpdated, c, c.ID)
	return c, nil
}

// ListMessages returns the messages of conversationID in insertion order.
// An unknown conversation simply has no messages.
func (s *Service) ListMessages(conversationID string) []model.Message {
	return s.store.ListMessages(conversationID)
}

type PostMessageResult struct {
	UserMessage model.Message
	// AIMessage is nil unless a customer message produced a real draft.
	AIMessage *model.Message
}

// SentimentEvent is published once a conversation has been scored.
type SentimentEvent struct {
	ConversationID string  `json:"conversationId"`
	Sentiment      string  `json:"sentiment"`
	Score          float64 `json:"score"`
}

// PostMessage stores the message. For customer messages it then drafts an
// assistant reply from the stored history, stores the reply when the draft
// is not a fallback, and scores sentiment in the background.
func (s *Service) PostMessage(ctx context.Context, conversationID string, req dto.PostMessageRequest) (PostMessageResult, error) {
	if err := checkRequest(req); err != nil {
		return PostMessageResult{}, err
	}

	msg := s.store.CreateMessage(req.ToModel(conversationID))
	s.publish(ctx, EventMessageCreated, msg, conversationID)
	result := PostMessageResult{UserMessage: msg}

	if msg.Sender != model.SenderCustomer {
		return result, nil
	}

	history := assist.HistoryFromMessages(s.store.ListMessages(conversationID))
	reply := s.assistant.DraftReply(ctx, history, s.customerContext(conversationID))
	if reply.Fallback {
		log.Printf("support: no assistant reply for conversation %s", conversationID)
	} else {
		aiMsg := s.store.CreateMessage(model.Message{
			ConversationID: conversationID,
			Sender:         model.SenderAI,
			Content:        reply.Text,
			IsRead:         false,
		})
		s.publish(ctx, EventMessageCreated, aiMsg, conversationID)
		result.AIMessage = &aiMsg
	}

	s.runBackground(ctx, "sentiment "+conversationID, func(ctx context.Context) error {
		sentiment := s.assistant.AnalyzeSentiment(ctx, history)
		log.Printf("conversation %s sentiment: %s (%g)", conversationID, sentiment.Label, sentiment.Score)
		s.publish(ctx, EventConversationSentiment, SentimentEvent{
			ConversationID: conversationID,
			Sentiment:      sentiment.Label,
			Score:          sentiment.Score,
		}, conversationID)
		return nil
	})

	return result, nil
}

func (s *Service) customerContext(conversationID string) *assist.CustomerContext {
	conv, ok := s.store.GetConversation(conversationID)
	if !ok {
		return nil
	}
	customer, ok := s.store.GetCustomer(conv.CustomerID)
	if !ok {
		return nil
	}
	return assist.CustomerContextFrom(customer)
}
