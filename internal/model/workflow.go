package model

import "time"

// SuccessfulWorkflowThreshold is the success rate a workflow must exceed to
// count as successful in analytics.
const SuccessfulWorkflowThreshold = 80

type Workflow struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Trigger        string    `json:"trigger"`
	Actions        []string  `json:"actions"`
	IsActive       bool      `json:"isActive"`
	SuccessRate    float64   `json:"successRate"`
	ExecutionCount int       `json:"executionCount"`
	CreatedAt      time.Time `json:"createdAt"`

	// Successes is the exact count behind SuccessRate, which is rounded.
	Successes int `json:"-"`
}

// WorkflowPatch omits SuccessRate and ExecutionCount; those only move through
// recorded executions.
type WorkflowPatch struct {
	Name        *string
	Description *string
	Trigger     *string
	Actions     []string
	IsActive    *bool
}

func (w Workflow) Clone() Workflow {
	w.Actions = cloneStrings(w.Actions)
	return w
}

func (w *Workflow) Apply(p WorkflowPatch) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Trigger != nil {
		w.Trigger = *p.Trigger
	}
	if p.Actions != nil {
		w.Actions = cloneStrings(p.Actions)
	}
	if p.IsActive != nil {
		w.IsActive = *p.IsActive
	}
}
