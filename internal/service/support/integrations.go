package support

import (
	"context"

	"support-desk-backend/internal/dto"
	"support-desk-backend/internal/model"
)

func (s *Service) ListIntegrations() []model.Integration {
	return s.store.ListIntegrations()
}

func (s *Service) GetIntegration(id string) (model.Integration, error) {
	i, ok := s.store.GetIntegration(id)
	if !ok {
		return model.Integration{}, notFound("integration")
	}
	return i, nil
}

func (s *Service) CreateIntegration(ctx context.Context, req dto.CreateIntegrationRequest) (model.Integration, error) {
	if err := checkRequest(req); err != nil {
		return model.Integration{}, err
	}
	i := s.store.CreateIntegration(req.ToModel())
	s.publish(ctx, EventIntegrationUpdated, i, "")
	return i, nil
}

// UpdateIntegration merges req; LastSync moves only when the status is set
// to connected.
func (s *Service) UpdateIntegration(ctx context.Context, id string, req dto.UpdateIntegrationRequest) (model.Integration, error) {
	if err := checkRequest(req); err != nil {
		return model.Integration{}, err
	}
	i, ok := s.store.UpdateIntegration(id, req.ToPatch())
	if !ok {
		return model.Integration{}, notFound("integration")
	}
	s.publish(ctx, EventIntegrationUpdated, i, "")
	return i, nil
}
