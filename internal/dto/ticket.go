package dto

import "support-desk-backend/internal/model"

type CreateTicketRequest struct {
	CustomerID    string `json:"customerId" validate:"required"`
	Subject       string `json:"subject" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Category      string `json:"category,omitempty" validate:"omitempty,oneof=payment technical account appointment order general"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=open in-progress resolved closed"`
	Priority      string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	AssignedAgent string `json:"assignedAgent,omitempty"`
	Resolution    string `json:"resolution,omitempty"`
}

// ToModel leaves Category empty when the client did not choose one.
func (r CreateTicketRequest) ToModel() model.Ticket {
	return model.Ticket{
		CustomerID:    r.CustomerID,
		Subject:       r.Subject,
		Description:   r.Description,
		Category:      model.TicketCategory(r.Category),
		Status:        model.TicketStatus(orDefault(r.Status, string(model.TicketStatusOpen))),
		Priority:      model.Priority(orDefault(r.Priority, string(model.PriorityMedium))),
		AssignedAgent: r.AssignedAgent,
		Resolution:    r.Resolution,
	}
}

type UpdateTicketRequest struct {
	CustomerID    *string `json:"customerId,omitempty" validate:"omitempty,min=1"`
	Subject       *string `json:"subject,omitempty" validate:"omitempty,min=1"`
	Description   *string `json:"description,omitempty"`
	Category      *string `json:"category,omitempty" validate:"omitempty,oneof=payment technical account appointment order general"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=open in-progress resolved closed"`
	Priority      *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	AssignedAgent *string `json:"assignedAgent,omitempty"`
	Resolution    *string `json:"resolution,omitempty"`
}

func (r UpdateTicketRequest) ToPatch() model.TicketPatch {
	patch := model.TicketPatch{
		CustomerID:    r.CustomerID,
		Subject:       r.Subject,
		Description:   r.Description,
		AssignedAgent: r.AssignedAgent,
		Resolution:    r.Resolution,
	}
	if r.Category != nil {
		category := model.TicketCategory(*r.Category)
		patch.Category = &category
	}
	if r.Status != nil {
		status := model.TicketStatus(*r.Status)
		patch.Status = &status
	}
	if r.Priority != nil {
		priority := model.Priority(*r.Priority)
		patch.Priority = &priority
	}
	return patch
}
