package dto

import (
	"time"

	"github.com/google/uuid"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/property/contracts/model"
)

type CreateContractRequest struct {
	ResidentID uuid.UUID  `json:"resident_id" validate:"required"`
	Status     string     `json:"status" validate:"omitempty,oneof=draft active terminated"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
}

func (r *CreateContractRequest) ToModel() *model.Contract {
	status := r.Status
	if status == "" {
		status = constants.ContractStatusDraft
	}
	return &model.Contract{
		ResidentID: r.ResidentID,
		Status:     status,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}

type UpdateContractRequest struct {
	Status    *string    `json:"status,omitempty" validate:"omitempty,oneof=draft active terminated"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func (r *UpdateContractRequest) Apply(m *model.Contract) {
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.StartDate != nil {
		m.StartDate = r.StartDate
	}
	if r.EndDate != nil {
		m.EndDate = r.EndDate
	}
}

type ContractResponse struct {
	ID           uuid.UUID  `json:"id"`
	ResidentID   uuid.UUID  `json:"resident_id"`
	Status       string     `json:"status"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	DocumentPath string     `json:"document_path,omitempty"`
	DocumentURL  string     `json:"document_url,omitempty"`
	DocumentType string     `json:"document_type,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FromModel resolves the document URL through urlOf when storage is available.
func FromModel(m *model.Contract, urlOf func(string) string) ContractResponse {
	out := ContractResponse{
		ID:           m.ID,
		ResidentID:   m.ResidentID,
		Status:       m.Status,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		DocumentPath: m.DocumentPath,
		DocumentType: m.DocumentType,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if urlOf != nil && m.DocumentPath != "" {
		out.DocumentURL = urlOf(m.DocumentPath)
	}
	return out
}
