package dto

import (
	"time"

	"support-desk-backend/internal/model"
)

type CreateIntegrationRequest struct {
	Name     string            `json:"name" validate:"required"`
	Type     string            `json:"type" validate:"required,oneof=stripe hubspot salesforce teams slack email sms"`
	Status   string            `json:"status,omitempty" validate:"omitempty,oneof=connected disconnected error"`
	Config   map[string]string `json:"config,omitempty"`
	LastSync *time.Time        `json:"lastSync,omitempty"`
}

func (r CreateIntegrationRequest) ToModel() model.Integration {
	config := r.Config
	if config == nil {
		config = map[string]string{}
	}
	return model.Integration{
		Name:     r.Name,
		Type:     model.IntegrationType(r.Type),
		Status:   model.IntegrationStatus(orDefault(r.Status, string(model.IntegrationDisconnected))),
		Config:   config,
		LastSync: r.LastSync,
	}
}

type UpdateIntegrationRequest struct {
	Name   *string           `json:"name,omitempty" validate:"omitempty,min=1"`
	Type   *string           `json:"type,omitempty" validate:"omitempty,oneof=stripe hubspot salesforce teams slack email sms"`
	Status *string           `json:"status,omitempty" validate:"omitempty,oneof=connected disconnected error"`
	Config map[string]string `json:"config,omitempty"`
}

func (r UpdateIntegrationRequest) ToPatch() model.IntegrationPatch {
	patch := model.IntegrationPatch{
		Name:   r.Name,
		Config: r.Config,
	}
	if r.Type != nil {
		kind := model.IntegrationType(*r.Type)
		patch.Type = &kind
	}
	if r.Status != nil {
		status := model.IntegrationStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}
