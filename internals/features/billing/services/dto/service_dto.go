package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"aptfee_backend/internals/features/billing/services/model"
	helper "aptfee_backend/internals/helpers"
)

type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,max=150"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Check covers what validator tags cannot express for decimals.
func (r *CreateServiceRequest) Check() error {
	if r.UnitPrice.IsNegative() {
		return helper.ErrInvalidKey.WithMessage("unit_price must be >= 0")
	}
	return nil
}

func (r *CreateServiceRequest) ToModel() *model.Service {
	return &model.Service{
		Name:        r.Name,
		Description: r.Description,
		UnitPrice:   r.UnitPrice.Round(2),
	}
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=150"`
	Description *string          `json:"description,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
}

func (r *UpdateServiceRequest) Check() error {
	if r.UnitPrice != nil && r.UnitPrice.IsNegative() {
		return helper.ErrInvalidKey.WithMessage("unit_price must be >= 0")
	}
	return nil
}

func (r *UpdateServiceRequest) Apply(m *model.Service) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.UnitPrice != nil {
		m.UnitPrice = r.UnitPrice.Round(2)
	}
}

type ServiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func FromModel(m *model.Service) ServiceResponse {
	return ServiceResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(rows []model.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
