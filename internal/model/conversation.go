package model

import "time"

type ConversationStatus string

const (
	ConversationStatusOpen     ConversationStatus = "open"
	ConversationStatusPending  ConversationStatus = "pending"
	ConversationStatusResolved ConversationStatus = "resolved"
)

type Channel string

const (
	ChannelChat  Channel = "chat"
	ChannelEmail Channel = "email"
	ChannelVoice Channel = "voice"
	ChannelSMS   Channel = "sms"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Sender string

const (
	SenderCustomer Sender = "customer"
	SenderAgent    Sender = "agent"
	SenderAI       Sender = "ai"
)

type Conversation struct {
	ID            string             `json:"id" dynamodbav:"id"`
	CustomerID    string             `json:"customerId" dynamodbav:"customerId"`
	Subject       string             `json:"subject" dynamodbav:"subject"`
	Status        ConversationStatus `json:"status" dynamodbav:"status"`
	Channel       Channel            `json:"channel" dynamodbav:"channel"`
	Priority      Priority           `json:"priority" dynamodbav:"priority"`
	AssignedAgent string             `json:"assignedAgent,omitempty" dynamodbav:"assignedAgent,omitempty"`
	LastActivity  time.Time          `json:"lastActivity" dynamodbav:"lastActivity"`
	CreatedAt     time.Time          `json:"createdAt" dynamodbav:"createdAt"`
}

type ConversationPatch struct {
	CustomerID    *string
	Subject       *string
	Status        *ConversationStatus
	Channel       *Channel
	Priority      *Priority
	AssignedAgent *string
}

func (c *Conversation) Apply(p ConversationPatch) {
	if p.CustomerID != nil {
		c.CustomerID = *p.CustomerID
	}
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Channel != nil {
		c.Channel = *p.Channel
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.AssignedAgent != nil {
		c.AssignedAgent = *p.AssignedAgent
	}
}

// Message is append-only; it has no patch type.
type Message struct {
	ID             string    `json:"id" dynamodbav:"id"`
	ConversationID string    `json:"conversationId" dynamodbav:"conversationId"`
	Sender         Sender    `json:"sender" dynamodbav:"sender"`
	Content        string    `json:"content" dynamodbav:"content"`
	Timestamp      time.Time `json:"timestamp" dynamodbav:"timestamp"`
	IsRead         bool      `json:"isRead" dynamodbav:"isRead"`
}
