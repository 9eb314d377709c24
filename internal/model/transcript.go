package model

import "time"

const TranscriptsTable = "Transcripts"

// TranscriptItem is an archived conversation together with its messages.
type TranscriptItem struct {
	ConversationID string       `json:"conversationId" dynamodbav:"conversationId"`
	Conversation   Conversation `json:"conversation" dynamodbav:"conversation"`
	Customer       *Customer    `json:"customer,omitempty" dynamodbav:"customer,omitempty"`
	Messages       []Message    `json:"messages" dynamodbav:"messages"`
	ArchivedAt     time.Time    `json:"archivedAt" dynamodbav:"archivedAt"`
}
