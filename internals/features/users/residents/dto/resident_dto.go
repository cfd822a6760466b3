package dto

import (
	"strings"
	"time"

	"aptfee_backend/internals/features/users/residents/model"

	"github.com/google/uuid"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateResidentRequest: public registration and admin create
type CreateResidentRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Password string `json:"password" validate:"required,password"`
}

func (r *CreateResidentRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

// ToModel leaves Password as given; the caller hashes it.
func (r *CreateResidentRequest) ToModel() *model.Resident {
	return &model.Resident{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

// UpdateResidentRequest is a partial update; Role is honoured only for admins.
type UpdateResidentRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Password *string `json:"password,omitempty" validate:"omitempty,password"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin resident"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type ResidentResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m *model.Resident) ResidentResponse {
	return ResidentResponse{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(rows []model.Resident) []ResidentResponse {
	out := make([]ResidentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
