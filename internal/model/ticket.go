package model

import "time"

type TicketCategory string

const (
	CategoryPayment     TicketCategory = "payment"
	CategoryTechnical   TicketCategory = "technical"
	CategoryAccount     TicketCategory = "account"
	CategoryAppointment TicketCategory = "appointment"
	CategoryOrder       TicketCategory = "order"
	CategoryGeneral     TicketCategory = "general"
)

// TicketCategories lists every category label in prompt order.
var TicketCategories = []TicketCategory{
	CategoryPayment,
	CategoryTechnical,
	CategoryAccount,
	CategoryAppointment,
	CategoryOrder,
	CategoryGeneral,
}

func (c TicketCategory) Valid() bool {
	for _, known := range TicketCategories {
		if c == known {
			return true
		}
	}
	return false
}

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

type Ticket struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customerId"`
	Subject       string         `json:"subject"`
	Description   string         `json:"description"`
	Category      TicketCategory `json:"category"`
	Status        TicketStatus   `json:"status"`
	Priority      Priority       `json:"priority"`
	AssignedAgent string         `json:"assignedAgent,omitempty"`
	Resolution    string         `json:"resolution,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type TicketPatch struct {
	CustomerID    *string
	Subject       *string
	Description   *string
	Category      *TicketCategory
	Status        *TicketStatus
	Priority      *Priority
	AssignedAgent *string
	Resolution    *string
}

func (t *Ticket) Apply(p TicketPatch) {
	if p.CustomerID != nil {
		t.CustomerID = *p.CustomerID
	}
	if p.Subject != nil {
		t.Subject = *p.Subject
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.AssignedAgent != nil {
		t.AssignedAgent = *p.AssignedAgent
	}
	if p.Resolution != nil {
		t.Resolution = *p.Resolution
	}
}
