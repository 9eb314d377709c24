package assist

import (
	"context"
	"strings"

	"support-desk-backend/internal/model"
)

// Canned returns fixed results without calling any model. It keeps the
// same input rules as Gemini: no customer text means neutral sentiment, and
// categories outside the fixed set become general.
type Canned struct {
	Reply     Reply
	Sentiment Sentiment
	Category  model.TicketCategory
}

var _ Assistant = (*Canned)(nil)

// Offline is used when no model is configured; every operation yields its
// fallback.
func Offline() *Canned {
	return &Canned{
		Reply:     Reply{Text: ReplyErrorFallback, Fallback: true},
		Sentiment: NeutralSentiment,
		Category:  model.CategoryGeneral,
	}
}

func (c *Canned) DraftReply(ctx context.Context, history []HistoryMessage, customer *CustomerContext) Reply {
	outcome := outcomeOK
	if c.Reply.Fallback {
		outcome = outcomeFallback
	}
	assistCalls.WithLabelValues(opDraftReply, outcome).Inc()
	return c.Reply
}

func (c *Canned) AnalyzeSentiment(ctx context.Context, history []HistoryMessage) Sentiment {
	if strings.TrimSpace(customerText(history)) == "" {
		assistCalls.WithLabelValues(opSentiment, outcomeSkipped).Inc()
		return NeutralSentiment
	}
	assistCalls.WithLabelValues(opSentiment, outcomeOK).Inc()
	return Sentiment{Label: c.Sentiment.Label, Score: clampScore(c.Sentiment.Score)}
}

func (c *Canned) CategorizeTicket(ctx context.Context, description, subject string) model.TicketCategory {
	category, _ := parseCategory(string(c.Category))
	assistCalls.WithLabelValues(opCategorize, outcomeOK).Inc()
	return category
}
