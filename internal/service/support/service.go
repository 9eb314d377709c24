// Package support implements the support desk operations on top of the
// store and the AI assistant. It publishes live events, sends Slack alerts
// and archives transcripts when those collaborators are configured.
package support

import (
	"context"
	"log"
	"time"

	"support-desk-backend/internal/archive"
	"support-desk-backend/internal/assist"
	"support-desk-backend/internal/model"
	"support-desk-backend/internal/store"
)

const (
	EventMessageCreated        = "message.created"
	EventConversationCreated   = "conversation.created"
	EventConversationUpdated   = "conversation.updated"
	EventConversationSentiment = "conversation.sentiment"
	EventTicketCreated         = "ticket.created"
	EventTicketUpdated         = "ticket.updated"
	EventIntegrationUpdated    = "integration.updated"
)

// Notifier delivers a live event to websocket rooms.
type Notifier interface {
	Notify(ctx context.Context, eventType string, data any, rooms ...string)
}

// Alerter posts to chat webhooks.
type Alerter interface {
	TicketAlert(ctx context.Context, webhooks []string, t model.Ticket, customer *model.Customer) error
	Digest(ctx context.Context, webhooks []string, a model.Analytics, at time.Time) error
}

// Background runs best-effort work after the request has been answered.
type Background interface {
	Submit(name string, fn func() error)
}

type Service struct {
	store      store.Store
	assistant  assist.Assistant
	archiver   archive.Archiver
	notifier   Notifier
	alerter    Alerter
	background Background
	rooms      Rooms
	now        func() time.Time
}

// Rooms maps events to websocket room names.
type Rooms struct {
	Dashboard    string
	Conversation func(conversationID string) string
}

type Option func(*Service)

func WithArchiver(a archive.Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

func WithNotifier(n Notifier, rooms Rooms) Option {
	return func(s *Service) {
		s.notifier = n
		s.rooms = rooms
	}
}

func WithAlerter(a Alerter) Option {
	return func(s *Service) { s.alerter = a }
}

// WithBackground sets where best-effort work runs. Without it that work
// runs inline before the call returns.
func WithBackground(b Background) Option {
	return func(s *Service) { s.background = b }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func New(st store.Store, assistant assist.Assistant, opts ...Option) *Service {
	s := &Service{
		store:     st,
		assistant: assistant,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Analytics() model.Analytics {
	return s.store.Analytics()
}

// runBackground detaches fn from the request context so it survives the
// response being written.
func (s *Service) runBackground(ctx context.Context, name string, fn func(ctx context.Context) error) {
	detached := context.WithoutCancel(ctx)
	if s.background == nil {
		if err := fn(detached); err != nil {
			log.Printf("support: %s: %v", name, err)
		}
		return
	}
	s.background.Submit(name, func() error { return fn(detached) })
}

func (s *Service) publish(ctx context.Context, eventType string, data any, conversationID string) {
	if s.notifier == nil {
		return
	}
	rooms := []string{s.rooms.Dashboard}
	if conversationID != "" && s.rooms.Conversation != nil {
		rooms = append(rooms, s.rooms.Conversation(conversationID))
	}
	s.notifier.Notify(ctx, eventType, data, rooms...)
}
