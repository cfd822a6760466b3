package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"aptfee_backend/internals/features/billing/invoices/model"
)

/* ====================== REQUESTS ====================== */

type CreateInvoiceDetailRequest struct {
	ApartmentID uuid.UUID `json:"apartment_id" validate:"required"`
	ServiceID   uuid.UUID `json:"service_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"gte=0,lte=1000000"`
}

// UpdateInvoiceDetailRequest replaces the quantity; ServiceID moves the line to another service.
type UpdateInvoiceDetailRequest struct {
	Quantity  int        `json:"quantity" validate:"gte=0,lte=1000000"`
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
}

/* ====================== RESPONSES ====================== */

type InvoiceDetailResponse struct {
	ID        uuid.UUID       `json:"id"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	ServiceID uuid.UUID       `json:"service_id"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type InvoiceResponse struct {
	ID          uuid.UUID               `json:"id"`
	ApartmentID uuid.UUID               `json:"apartment_id"`
	TotalAmount decimal.Decimal         `json:"total_amount"`
	DueDate     string                  `json:"due_date"`
	Status      string                  `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	Details     []InvoiceDetailResponse `json:"details,omitempty"`
}

func FromDetail(m *model.InvoiceDetail) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:        m.ID,
		InvoiceID: m.InvoiceID,
		ServiceID: m.ServiceID,
		Quantity:  m.Quantity,
		Total:     m.Total.Round(2),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromDetails(rows []model.InvoiceDetail) []InvoiceDetailResponse {
	out := make([]InvoiceDetailResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromDetail(&rows[i]))
	}
	return out
}

func FromInvoice(m *model.Invoice, details []model.InvoiceDetail) InvoiceResponse {
	resp := InvoiceResponse{
		ID:          m.ID,
		ApartmentID: m.ApartmentID,
		TotalAmount: m.TotalAmount.Round(2),
		DueDate:     m.DueDate.UTC().Format("2006-01-02"),
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if details != nil {
		resp.Details = FromDetails(details)
	}
	return resp
}

func FromInvoices(rows []model.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromInvoice(&rows[i], nil))
	}
	return out
}
