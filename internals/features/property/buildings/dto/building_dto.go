package dto

import (
	"time"

	"github.com/google/uuid"

	"aptfee_backend/internals/features/property/buildings/model"
)

type CreateBuildingRequest struct {
	Name           string `json:"name" validate:"required,max=150"`
	Address        string `json:"address" validate:"omitempty,max=255"`
	ApartmentCount int    `json:"apartment_count" validate:"gte=0"`
}

func (r *CreateBuildingRequest) ToModel() *model.Building {
	return &model.Building{Name: r.Name, Address: r.Address, ApartmentCount: r.ApartmentCount}
}

type UpdateBuildingRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,max=150"`
	Address        *string `json:"address,omitempty" validate:"omitempty,max=255"`
	ApartmentCount *int    `json:"apartment_count,omitempty" validate:"omitempty,gte=0"`
}

func (r *UpdateBuildingRequest) Apply(m *model.Building) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
	if r.ApartmentCount != nil {
		m.ApartmentCount = *r.ApartmentCount
	}
}

type BuildingResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	ApartmentCount int       `json:"apartment_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromModel(m *model.Building) BuildingResponse {
	return BuildingResponse{
		ID:             m.ID,
		Name:           m.Name,
		Address:        m.Address,
		ApartmentCount: m.ApartmentCount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func FromModels(rows []model.Building) []BuildingResponse {
	out := make([]BuildingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
