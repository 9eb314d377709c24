package assist

import (
	"strconv"
	"strings"

	"support-desk-backend/internal/model"
)

const replyGuidelines = `Guidelines:
- Be professional, friendly, and empathetic
- Provide specific, actionable solutions when possible
- Ask clarifying questions if needed
- Show understanding of the customer's concerns
- Keep responses concise but thorough
- If you cannot solve the issue, suggest escalation to a human agent

Respond as the customer service agent:`

const sentimentInstruction = `Analyze the sentiment of customer messages and provide a sentiment score from 0 (very negative) to 1 (very positive). 
Respond with JSON in this format: 
{'sentiment': 'positive|negative|neutral', 'score': number}`

const categoryLabels = `Categorize this customer service request into one of these categories:
- payment: billing, charges, refunds, payment issues
- technical: bugs, errors, system problems
- account: login, password, profile, settings
- appointment: scheduling, rescheduling, cancellations
- order: shipping, delivery, product issues
- general: other inquiries`

func replyPrompt(history []HistoryMessage, customer *CustomerContext) string {
	var b strings.Builder
	b.WriteString("You are a helpful customer service AI assistant. Based on the conversation history below, provide a professional, empathetic, and helpful response to the customer's latest message.\n\n")
	if customer != nil {
		b.WriteString(customerLine(customer))
		b.WriteString("\n")
	}
	b.WriteString("\nConversation History:\n")
	for i, m := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(string(m.Sender))
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	b.WriteString("\n\n")
	b.WriteString(replyGuidelines)
	return b.String()
}

func customerLine(c *CustomerContext) string {
	name := c.Name
	if name == "" {
		name = "Unknown"
	}
	rating := "N/A"
	if c.SatisfactionRating != nil && *c.SatisfactionRating != 0 {
		rating = strconv.FormatFloat(*c.SatisfactionRating, 'f', -1, 64)
	}
	tags := strings.Join(c.Tags, ", ")
	if tags == "" {
		tags = "None"
	}
	return "Customer Info: " + name + ", Satisfaction: " + rating + "/5, Tags: " + tags
}

// customerText joins customer-authored content only; agent and AI turns
// carry no signal about how the customer feels.
func customerText(history []HistoryMessage) string {
	parts := make([]string, 0, len(history))
	for _, m := range history {
		if m.Sender == model.SenderCustomer {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, " ")
}

func sentimentPrompt(text string) string {
	return "Analyze the sentiment of these customer messages: " + text
}

func categoryPrompt(description, subject string) string {
	var b strings.Builder
	b.WriteString(categoryLabels)
	b.WriteString("\n\nMessage: ")
	b.WriteString(description)
	b.WriteString("\n")
	if subject != "" {
		b.WriteString("Subject: ")
		b.WriteString(subject)
	}
	b.WriteString("\n\nRespond with just the category name.")
	return b.String()
}

// parseCategory accepts only one of the fixed labels.
func parseCategory(raw string) (model.TicketCategory, bool) {
	c := model.TicketCategory(strings.ToLower(strings.TrimSpace(raw)))
	if c.Valid() {
		return c, true
	}
	return model.CategoryGeneral, false
}
