package dto

import "support-desk-backend/internal/model"

type CreateCustomerRequest struct {
	Name               string   `json:"name" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	Phone              string   `json:"phone,omitempty"`
	SatisfactionRating *float64 `json:"satisfactionRating,omitempty" validate:"omitempty,min=1,max=5"`
	Tags               []string `json:"tags,omitempty"`
}

func (r CreateCustomerRequest) ToModel() model.Customer {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.Customer{
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		SatisfactionRating: r.SatisfactionRating,
		Tags:               tags,
	}
}

type UpdateCustomerRequest struct {
	Name               *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Email              *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone              *string  `json:"phone,omitempty"`
	SatisfactionRating *float64 `json:"satisfactionRating,omitempty" validate:"omitempty,min=1,max=5"`
	Tags               []string `json:"tags,omitempty"`
}

func (r UpdateCustomerRequest) ToPatch() model.CustomerPatch {
	return model.CustomerPatch{
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		SatisfactionRating: r.SatisfactionRating,
		Tags:               r.Tags,
	}
}
