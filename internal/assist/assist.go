// Package assist drafts replies, scores sentiment and categorizes tickets
// with a hosted generative model. No operation returns an error: every
// failure is logged and replaced by a fixed fallback value.
package assist

import (
	"context"
	"math"

	"support-desk-backend/internal/model"
)

const (
	// ReplyEmptyFallback is used when the model answers with no text.
	ReplyEmptyFallback = "I apologize, but I'm having trouble processing your request right now. Let me connect you with a human agent who can better assist you."
	// ReplyErrorFallback is used when the model call itself fails.
	ReplyErrorFallback = "I apologize for the technical issue. Let me connect you with a human agent who can help you immediately."
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// NeutralSentiment is returned when there is no customer text to score and
// when scoring fails.
var NeutralSentiment = Sentiment{Label: SentimentNeutral, Score: 0.5}

type Assistant interface {
	DraftReply(ctx context.Context, history []HistoryMessage, customer *CustomerContext) Reply
	AnalyzeSentiment(ctx context.Context, history []HistoryMessage) Sentiment
	CategorizeTicket(ctx context.Context, description, subject string) model.TicketCategory
}

type HistoryMessage struct {
	Sender  model.Sender
	Content string
}

// HistoryFromMessages keeps the order of msgs.
func HistoryFromMessages(msgs []model.Message) []HistoryMessage {
	out := make([]HistoryMessage, len(msgs))
	for i, m := range msgs {
		out[i] = HistoryMessage{Sender: m.Sender, Content: m.Content}
	}
	return out
}

type CustomerContext struct {
	Name               string
	SatisfactionRating *float64
	Tags               []string
}

func CustomerContextFrom(c model.Customer) *CustomerContext {
	return &CustomerContext{
		Name:               c.Name,
		SatisfactionRating: c.SatisfactionRating,
		Tags:               c.Tags,
	}
}

// Reply is a drafted answer. Fallback is set when Text is one of the fixed
// apology strings rather than model output.
type Reply struct {
	Text     string
	Fallback bool
}

type Sentiment struct {
	Label string  `json:"sentiment"`
	Score float64 `json:"score"`
}

func validSentiment(label string) bool {
	switch label {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

func clampScore(score float64) float64 {
	if math.IsNaN(score) {
		return NeutralSentiment.Score
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
