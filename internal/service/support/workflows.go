package support

import (
	"context"

	"support-desk-backend/internal/dto"
	"support-desk-backend/internal/model"
)

func (s *Service) ListWorkflows() []model.Workflow {
	return s.store.ListWorkflows()
}

func (s *Service) GetWorkflow(id string) (model.Workflow, error) {
	w, ok := s.store.GetWorkflow(id)
	if !ok {
		return model.Workflow{}, notFound("workflow")
	}
	return w, nil
}

func (s *Service) CreateWorkflow(ctx context.Context, req dto.CreateWorkflowRequest) (model.Workflow, error) {
	if err := checkRequest(req); err != nil {
		return model.Workflow{}, err
	}
	return s.store.CreateWorkflow(req.ToModel()), nil
}

func (s *Service) UpdateWorkflow(ctx context.Context, id string, req dto.UpdateWorkflowRequest) (model.Workflow, error) {
	if err := checkRequest(req); err != nil {
		return model.Workflow{}, err
	}
	w, ok := s.store.UpdateWorkflow(id, req.ToPatch())
	if !ok {
		return model.Workflow{}, notFound("workflow")
	}
	return w, nil
}

func (s *Service) RecordWorkflowExecution(ctx context.Context, id string, req dto.RecordExecutionRequest) (model.Workflow, error) {
	if err := checkRequest(req); err != nil {
		return model.Workflow{}, err
	}
	w, ok := s.store.RecordWorkflowExecution(id, *req.Succeeded)
	if !ok {
		return model.Workflow{}, notFound("workflow")
	}
	return w, nil
}
