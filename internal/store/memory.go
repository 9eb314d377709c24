package store

import (
	"math"
	"time"

	"support-desk-backend/internal/model"
)

const (
	DefaultResponseTime = "2m 15s"
	DefaultCSAT         = 4.2
)

type MemoryStore struct {
	customers     *collection[model.Customer]
	conversations *collection[model.Conversation]
	messages      *messageLog
	workflows     *collection[model.Workflow]
	tickets       *collection[model.Ticket]
	integrations  *collection[model.Integration]

	now          func() time.Time
	newID        func(prefix string) string
	location     *time.Location
	responseTime string
	csat         float64
}

var _ Store = (*MemoryStore)(nil)

type Option func(*MemoryStore)

func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(fn func(prefix string) string) Option {
	return func(s *MemoryStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLocation sets the timezone that decides which tickets were resolved
// "today". Defaults to the process-local zone.
func WithLocation(loc *time.Location) Option {
	return func(s *MemoryStore) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithPlaceholderMetrics overrides the static response time and CSAT values
// reported by Analytics.
func WithPlaceholderMetrics(responseTime string, csat float64) Option {
	return func(s *MemoryStore) {
		if responseTime != "" {
			s.responseTime = responseTime
		}
		s.csat = csat
	}
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		customers:     newCollection(func(c model.Customer) string { return c.ID }, model.Customer.Clone),
		conversations: newCollection(func(c model.Conversation) string { return c.ID }, nil),
		messages:      newMessageLog(),
		workflows:     newCollection(func(w model.Workflow) string { return w.ID }, model.Workflow.Clone),
		tickets:       newCollection(func(t model.Ticket) string { return t.ID }, nil),
		integrations:  newCollection(func(i model.Integration) string { return i.ID }, model.Integration.Clone),
		now:           time.Now,
		newID:         randomID,
		location:      time.Local,
		responseTime:  DefaultResponseTime,
		csat:          DefaultCSAT,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) idFor(prefix string) func() string {
	return func() string { return s.newID(prefix) }
}

// Customers

func (s *MemoryStore) ListCustomers() []model.Customer {
	return s.customers.list()
}

func (s *MemoryStore) GetCustomer(id string) (model.Customer, bool) {
	return s.customers.get(id)
}

func (s *MemoryStore) CreateCustomer(c model.Customer) model.Customer {
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return s.customers.insert(c, s.idFor(prefixCustomer), func(c *model.Customer, id string) {
		c.ID = id
		c.CreatedAt = s.now()
	})
}

func (s *MemoryStore) UpdateCustomer(id string, p model.CustomerPatch) (model.Customer, bool) {
	return s.customers.update(id, func(c *model.Customer) {
		c.Apply(p)
	})
}

// Conversations

func (s *MemoryStore) ListConversations() []model.Conversation {
	return s.conversations.list()
}

func (s *MemoryStore) GetConversation(id string) (model.Conversation, bool) {
	return s.conversations.get(id)
}

func (s *MemoryStore) CreateConversation(c model.Conversation) model.Conversation {
	return s.conversations.insert(c, s.idFor(prefixConversation), func(c *model.Conversation, id string) {
		now := s.now()
		c.ID = id
		c.CreatedAt = now
		c.LastActivity = now
	})
}

// UpdateConversation merges p and always refreshes LastActivity, even for an
// empty patch.
func (s *MemoryStore) UpdateConversation(id string, p model.ConversationPatch) (model.Conversation, bool) {
	now := s.now()
	return s.conversations.update(id, func(c *model.Conversation) {
		c.Apply(p)
		c.LastActivity = latest(now, c.LastActivity)
	})
}

// Messages

func (s *MemoryStore) ListMessages(conversationID string) []model.Message {
	return s.messages.list(conversationID)
}

// CreateMessage appends m and refreshes the parent conversation's
// LastActivity so it is never earlier than the message timestamp. The
// conversation id is not checked for existence.
func (s *MemoryStore) CreateMessage(m model.Message) model.Message {
	created := s.messages.append(m, s.idFor(prefixMessage), s.now)
	s.conversations.update(created.ConversationID, func(c *model.Conversation) {
		c.LastActivity = latest(latest(s.now(), created.Timestamp), c.LastActivity)
	})
	return created
}

// Workflows

func (s *MemoryStore) ListWorkflows() []model.Workflow {
	return s.workflows.list()
}

func (s *MemoryStore) GetWorkflow(id string) (model.Workflow, bool) {
	return s.workflows.get(id)
}

func (s *MemoryStore) CreateWorkflow(w model.Workflow) model.Workflow {
	if w.Actions == nil {
		w.Actions = []string{}
	}
	return s.workflows.insert(w, s.idFor(prefixWorkflow), func(w *model.Workflow, id string) {
		w.ID = id
		w.SuccessRate = 0
		w.ExecutionCount = 0
		w.Successes = 0
		w.CreatedAt = s.now()
	})
}

func (s *MemoryStore) UpdateWorkflow(id string, p model.WorkflowPatch) (model.Workflow, bool) {
	return s.workflows.update(id, func(w *model.Workflow) {
		w.Apply(p)
	})
}

// RecordWorkflowExecution counts one run and recomputes SuccessRate as the
// running success percentage, rounded to one decimal.
func (s *MemoryStore) RecordWorkflowExecution(id string, succeeded bool) (model.Workflow, bool) {
	return s.workflows.update(id, func(w *model.Workflow) {
		w.ExecutionCount++
		if succeeded {
			w.Successes++
		}
		w.SuccessRate = roundTo(float64(w.Successes)/float64(w.ExecutionCount)*100, 1)
	})
}

// Tickets

func (s *MemoryStore) ListTickets() []model.Ticket {
	return s.tickets.list()
}

func (s *MemoryStore) GetTicket(id string) (model.Ticket, bool) {
	return s.tickets.get(id)
}

func (s *MemoryStore) CreateTicket(t model.Ticket) model.Ticket {
	return s.tickets.insert(t, s.idFor(prefixTicket), func(t *model.Ticket, id string) {
		now := s.now()
		t.ID = id
		t.CreatedAt = now
		t.UpdatedAt = now
	})
}

// UpdateTicket also returns the ticket as it was just before the patch, read
// under the same lock as the write.
func (s *MemoryStore) UpdateTicket(id string, p model.TicketPatch) (after, before model.Ticket, ok bool) {
	now := s.now()
	after, ok = s.tickets.update(id, func(t *model.Ticket) {
		before = *t
		t.Apply(p)
		t.UpdatedAt = now
	})
	return after, before, ok
}

// Integrations

func (s *MemoryStore) ListIntegrations() []model.Integration {
	return s.integrations.list()
}

func (s *MemoryStore) GetIntegration(id string) (model.Integration, bool) {
	return s.integrations.get(id)
}

func (s *MemoryStore) CreateIntegration(i model.Integration) model.Integration {
	if i.Config == nil {
		i.Config = map[string]string{}
	}
	return s.integrations.insert(i, s.idFor(prefixIntegration), func(i *model.Integration, id string) {
		i.ID = id
		i.CreatedAt = s.now()
	})
}

func (s *MemoryStore) UpdateIntegration(id string, p model.IntegrationPatch) (model.Integration, bool) {
	now := s.now()
	return s.integrations.update(id, func(i *model.Integration) {
		i.Apply(p, now)
	})
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
