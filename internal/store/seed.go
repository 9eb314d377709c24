package store

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"support-desk-backend/internal/model"
)

//go:embed seed/demo.yaml
var demoSeed []byte

// Seed is a dataset loaded into a store at startup. Timestamps are expressed
// as ages ("2h", "30m") relative to the moment the seed is applied.
type Seed struct {
	Customers     []seedCustomer     `yaml:"customers"`
	Conversations []seedConversation `yaml:"conversations"`
	Messages      []seedMessage      `yaml:"messages"`
	Workflows     []seedWorkflow     `yaml:"workflows"`
	Tickets       []seedTicket       `yaml:"tickets"`
	Integrations  []seedIntegration  `yaml:"integrations"`
}

type seedCustomer struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	Email              string   `yaml:"email"`
	Phone              string   `yaml:"phone"`
	SatisfactionRating *float64 `yaml:"satisfactionRating"`
	Tags               []string `yaml:"tags"`
	CreatedAgo         string   `yaml:"createdAgo"`
}

type seedConversation struct {
	ID              string `yaml:"id"`
	CustomerID      string `yaml:"customerId"`
	Subject         string `yaml:"subject"`
	Status          string `yaml:"status"`
	Channel         string `yaml:"channel"`
	Priority        string `yaml:"priority"`
	AssignedAgent   string `yaml:"assignedAgent"`
	LastActivityAgo string `yaml:"lastActivityAgo"`
	CreatedAgo      string `yaml:"createdAgo"`
}

type seedMessage struct {
	ID             string `yaml:"id"`
	ConversationID string `yaml:"conversationId"`
	Sender         string `yaml:"sender"`
	Content        string `yaml:"content"`
	IsRead         bool   `yaml:"isRead"`
	Ago            string `yaml:"ago"`
}

type seedWorkflow struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	Trigger        string   `yaml:"trigger"`
	Actions        []string `yaml:"actions"`
	IsActive       bool     `yaml:"isActive"`
	SuccessRate    float64  `yaml:"successRate"`
	ExecutionCount int      `yaml:"executionCount"`
	CreatedAgo     string   `yaml:"createdAgo"`
}

type seedTicket struct {
	ID            string `yaml:"id"`
	CustomerID    string `yaml:"customerId"`
	Subject       string `yaml:"subject"`
	Description   string `yaml:"description"`
	Category      string `yaml:"category"`
	Status        string `yaml:"status"`
	Priority      string `yaml:"priority"`
	AssignedAgent string `yaml:"assignedAgent"`
	Resolution    string `yaml:"resolution"`
	CreatedAgo    string `yaml:"createdAgo"`
	UpdatedAgo    string `yaml:"updatedAgo"`
}

type seedIntegration struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Type        string            `yaml:"type"`
	Status      string            `yaml:"status"`
	Config      map[string]string `yaml:"config"`
	LastSyncAgo string            `yaml:"lastSyncAgo"`
	CreatedAgo  string            `yaml:"createdAgo"`
}

// DemoSeed returns the bundled demo dataset.
func DemoSeed() (*Seed, error) {
	return ParseSeed(demoSeed)
}

// LoadSeed reads a seed file from path.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("seed: parse: %w", err)
	}
	if err := seed.validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// validate checks ids and ages up front so Apply cannot fail halfway.
func (s *Seed) validate() error {
	var errs []string
	check := func(kind, id string, ages ...string) {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, kind+": missing id")
		}
		for _, age := range ages {
			if _, err := parseAge(age); err != nil {
				errs = append(errs, fmt.Sprintf("%s %s: %v", kind, id, err))
			}
		}
	}
	for _, c := range s.Customers {
		check("customer", c.ID, c.CreatedAgo)
	}
	for _, c := range s.Conversations {
		check("conversation", c.ID, c.LastActivityAgo, c.CreatedAgo)
	}
	for _, m := range s.Messages {
		check("message", m.ID, m.Ago)
	}
	for _, w := range s.Workflows {
		check("workflow", w.ID, w.CreatedAgo)
	}
	for _, t := range s.Tickets {
		check("ticket", t.ID, t.CreatedAgo, t.UpdatedAgo)
	}
	for _, i := range s.Integrations {
		check("integration", i.ID, i.LastSyncAgo, i.CreatedAgo)
	}
	if len(errs) > 0 {
		return errors.New("seed: invalid: " + strings.Join(errs, "; "))
	}
	return nil
}

// Apply loads every record of the seed into st, keeping the seed ids.
func (s *Seed) Apply(st *MemoryStore) {
	now := st.now()
	at := func(age string) time.Time {
		d, _ := parseAge(age)
		return now.Add(-d)
	}

	for _, c := range s.Customers {
		tags := c.Tags
		if tags == nil {
			tags = []string{}
		}
		st.customers.put(model.Customer{
			ID:                 c.ID,
			Name:               c.Name,
			Email:              c.Email,
			Phone:              c.Phone,
			SatisfactionRating: c.SatisfactionRating,
			Tags:               tags,
			CreatedAt:          at(c.CreatedAgo),
		})
	}
	for _, c := range s.Conversations {
		st.conversations.put(model.Conversation{
			ID:            c.ID,
			CustomerID:    c.CustomerID,
			Subject:       c.Subject,
			Status:        model.ConversationStatus(c.Status),
			Channel:       model.Channel(c.Channel),
			Priority:      model.Priority(c.Priority),
			AssignedAgent: c.AssignedAgent,
			LastActivity:  at(c.LastActivityAgo),
			CreatedAt:     at(c.CreatedAgo),
		})
	}
	for _, m := range s.Messages {
		st.messages.put(model.Message{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			Sender:         model.Sender(m.Sender),
			Content:        m.Content,
			Timestamp:      at(m.Ago),
			IsRead:         m.IsRead,
		})
	}
	for _, w := range s.Workflows {
		actions := w.Actions
		if actions == nil {
			actions = []string{}
		}
		st.workflows.put(model.Workflow{
			ID:             w.ID,
			Name:           w.Name,
			Description:    w.Description,
			Trigger:        w.Trigger,
			Actions:        actions,
			IsActive:       w.IsActive,
			SuccessRate:    w.SuccessRate,
			ExecutionCount: w.ExecutionCount,
			Successes:      int(math.Round(w.SuccessRate / 100 * float64(w.ExecutionCount))),
			CreatedAt:      at(w.CreatedAgo),
		})
	}
	for _, t := range s.Tickets {
		st.tickets.put(model.Ticket{
			ID:            t.ID,
			CustomerID:    t.CustomerID,
			Subject:       t.Subject,
			Description:   t.Description,
			Category:      model.TicketCategory(t.Category),
			Status:        model.TicketStatus(t.Status),
			Priority:      model.Priority(t.Priority),
			AssignedAgent: t.AssignedAgent,
			Resolution:    t.Resolution,
			CreatedAt:     at(t.CreatedAgo),
			UpdatedAt:     at(t.UpdatedAgo),
		})
	}
	for _, i := range s.Integrations {
		config := i.Config
		if config == nil {
			config = map[string]string{}
		}
		var lastSync *time.Time
		if i.LastSyncAgo != "" {
			ts := at(i.LastSyncAgo)
			lastSync = &ts
		}
		st.integrations.put(model.Integration{
			ID:        i.ID,
			Name:      i.Name,
			Type:      model.IntegrationType(i.Type),
			Status:    model.IntegrationStatus(i.Status),
			Config:    config,
			LastSync:  lastSync,
			CreatedAt: at(i.CreatedAgo),
		})
	}
}

// parseAge accepts a Go duration; empty means zero.
func parseAge(age string) (time.Duration, error) {
	if age == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(age)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative age %q", age)
	}
	return d, nil
}
