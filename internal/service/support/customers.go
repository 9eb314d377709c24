package support

import (
	"context"

	"support-desk-backend/internal/dto"
	"support-desk-backend/internal/model"
)

func (s *Service) ListCustomers() []model.Customer {
	return s.store.ListCustomers()
}

func (s *Service) GetCustomer(id string) (model.Customer, error) {
	c, ok := s.store.GetCustomer(id)
	if !ok {
		return model.Customer{}, notFound("customer")
	}
	return c, nil
}

func (s *Service) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (model.Customer, error) {
	if err := checkRequest(req); err != nil {
		return model.Customer{}, err
	}
	return s.store.CreateCustomer(req.ToModel()), nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, req dto.UpdateCustomerRequest) (model.Customer, error) {
	if err := checkRequest(req); err != nil {
		return model.Customer{}, err
	}
	c, ok := s.store.UpdateCustomer(id, req.ToPatch())
	if !ok {
		return model.Customer{}, notFound("customer")
	}
	return c, nil
}
