package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"aptfee_backend/internals/features/property/apartments/model"
)

type CreateApartmentRequest struct {
	RoomNumber string     `json:"room_number" validate:"required,max=20"`
	Area       float64    `json:"area" validate:"gte=0"`
	BuildingID uuid.UUID  `json:"building_id" validate:"required"`
	ResidentID *uuid.UUID `json:"resident_id,omitempty"`
}

func (r *CreateApartmentRequest) ToModel() *model.Apartment {
	return &model.Apartment{
		RoomNumber: strings.TrimSpace(r.RoomNumber),
		Area:       r.Area,
		BuildingID: r.BuildingID,
		ResidentID: r.ResidentID,
	}
}

// UpdateApartmentRequest: ClearResident detaches the current occupant.
type UpdateApartmentRequest struct {
	RoomNumber    *string    `json:"room_number,omitempty" validate:"omitempty,max=20"`
	Area          *float64   `json:"area,omitempty" validate:"omitempty,gte=0"`
	BuildingID    *uuid.UUID `json:"building_id,omitempty"`
	ResidentID    *uuid.UUID `json:"resident_id,omitempty"`
	ClearResident bool       `json:"clear_resident,omitempty"`
}

func (r *UpdateApartmentRequest) Apply(m *model.Apartment) {
	if r.RoomNumber != nil {
		m.RoomNumber = strings.TrimSpace(*r.RoomNumber)
	}
	if r.Area != nil {
		m.Area = *r.Area
	}
	if r.BuildingID != nil {
		m.BuildingID = *r.BuildingID
	}
	if r.ResidentID != nil {
		m.ResidentID = r.ResidentID
	}
	if r.ClearResident {
		m.ResidentID = nil
	}
}

type ApartmentResponse struct {
	ID         uuid.UUID  `json:"id"`
	RoomNumber string     `json:"room_number"`
	Area       float64    `json:"area"`
	BuildingID uuid.UUID  `json:"building_id"`
	ResidentID *uuid.UUID `json:"resident_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromModel(m *model.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:         m.ID,
		RoomNumber: m.RoomNumber,
		Area:       m.Area,
		BuildingID: m.BuildingID,
		ResidentID: m.ResidentID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func FromModels(rows []model.Apartment) []ApartmentResponse {
	out := make([]ApartmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
