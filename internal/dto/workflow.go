package dto

import "support-desk-backend/internal/model"

type CreateWorkflowRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Trigger     string   `json:"trigger" validate:"required"`
	Actions     []string `json:"actions" validate:"required,dive,required"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// ToModel ignores any client-supplied counters; the store starts both at zero.
func (r CreateWorkflowRequest) ToModel() model.Workflow {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return model.Workflow{
		Name:        r.Name,
		Description: r.Description,
		Trigger:     r.Trigger,
		Actions:     r.Actions,
		IsActive:    active,
	}
}

type UpdateWorkflowRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Trigger     *string  `json:"trigger,omitempty" validate:"omitempty,min=1"`
	Actions     []string `json:"actions,omitempty" validate:"omitempty,dive,required"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

func (r UpdateWorkflowRequest) ToPatch() model.WorkflowPatch {
	return model.WorkflowPatch{
		Name:        r.Name,
		Description: r.Description,
		Trigger:     r.Trigger,
		Actions:     r.Actions,
		IsActive:    r.IsActive,
	}
}

type RecordExecutionRequest struct {
	Succeeded *bool `json:"succeeded" validate:"required"`
}
