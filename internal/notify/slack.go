// Package notify posts support desk alerts to Slack incoming webhooks.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	slackapi "github.com/slack-go/slack"

	"support-desk-backend/internal/model"
)

type webhookPoster func(ctx context.Context, url string, msg *slackapi.WebhookMessage) error

type Slack struct {
	post webhookPoster
}

func NewSlack() *Slack {
	return &Slack{post: slackapi.PostWebhookContext}
}

// SlackWebhooks returns the webhook URLs of connected Slack integrations.
func SlackWebhooks(integrations []model.Integration) []string {
	var urls []string
	for _, i := range integrations {
		if i.Type != model.IntegrationSlack || i.Status != model.IntegrationConnected {
			continue
		}
		if url := i.Config[model.WebhookURLKey]; url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// TicketAlert announces an urgent ticket. customer may be nil.
func (s *Slack) TicketAlert(ctx context.Context, webhooks []string, t model.Ticket, customer *model.Customer) error {
	from := t.CustomerID
	if customer != nil {
		from = fmt.Sprintf("%s <%s>", customer.Name, customer.Email)
	}
	msg := &slackapi.WebhookMessage{
		Text: fmt.Sprintf(":rotating_light: Urgent ticket %s: %s", t.ID, t.Subject),
		Attachments: []slackapi.Attachment{{
			Color: "danger",
			Text:  t.Description,
			Fields: []slackapi.AttachmentField{
				{Title: "Customer", Value: from, Short: true},
				{Title: "Category", Value: string(t.Category), Short: true},
				{Title: "Status", Value: string(t.Status), Short: true},
				{Title: "Assigned", Value: orNone(t.AssignedAgent), Short: true},
			},
		}},
	}
	return s.broadcast(ctx, webhooks, msg)
}

// Digest posts an analytics snapshot taken at at.
func (s *Slack) Digest(ctx context.Context, webhooks []string, a model.Analytics, at time.Time) error {
	msg := &slackapi.WebhookMessage{
		Text: "Support desk digest for " + at.Format("Mon Jan 2 15:04"),
		Attachments: []slackapi.Attachment{{
			Color: "good",
			Fields: []slackapi.AttachmentField{
				{Title: "Active tickets", Value: strconv.Itoa(a.ActiveTickets), Short: true},
				{Title: "Resolved today", Value: strconv.Itoa(a.ResolvedToday), Short: true},
				{Title: "Conversations", Value: strconv.Itoa(a.TotalConversations), Short: true},
				{Title: "Average rating", Value: strconv.FormatFloat(a.AverageRating, 'f', 1, 64), Short: true},
				{Title: "Response time", Value: a.ResponseTime, Short: true},
				{Title: "CSAT", Value: strconv.FormatFloat(a.CSAT, 'f', 1, 64), Short: true},
				{Title: "Successful workflows", Value: strconv.Itoa(a.SuccessfulWorkflows), Short: true},
				{Title: "Pending workflows", Value: strconv.Itoa(a.PendingWorkflows), Short: true},
			},
		}},
	}
	return s.broadcast(ctx, webhooks, msg)
}

// broadcast posts msg to every webhook and joins the failures.
func (s *Slack) broadcast(ctx context.Context, webhooks []string, msg *slackapi.WebhookMessage) error {
	var errs []error
	for _, url := range webhooks {
		if err := s.post(ctx, url, msg); err != nil {
			errs = append(errs, fmt.Errorf("notify: post slack webhook: %w", err))
		}
	}
	return errors.Join(errs...)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
