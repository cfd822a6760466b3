package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"aptfee_backend/internals/features/finance/payments/model"
)

type CreatePaymentRequest struct {
	InvoiceID   uuid.UUID       `json:"invoice_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status" validate:"omitempty,oneof=pending completed failed"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
}

type CheckoutRequest struct {
	InvoiceID uuid.UUID `json:"invoice_id" validate:"required"`
}

type CheckoutResponse struct {
	PaymentID   uuid.UUID       `json:"payment_id"`
	OrderID     string          `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	SnapToken   string          `json:"snap_token"`
	RedirectURL string          `json:"redirect_url"`
}

// MidtransNotification is the subset of the Snap HTTP notification the webhook reads.
type MidtransNotification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
}

type PaymentResponse struct {
	ID               uuid.UUID       `json:"id"`
	InvoiceID        uuid.UUID       `json:"invoice_id"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	PaymentDate      time.Time       `json:"payment_date"`
	OrderID          string          `json:"order_id"`
	GatewayReference *string         `json:"gateway_reference,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func FromModel(m *model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               m.ID,
		InvoiceID:        m.InvoiceID,
		Amount:           m.Amount.Round(2),
		Status:           m.Status,
		PaymentDate:      m.PaymentDate,
		OrderID:          m.OrderID,
		GatewayReference: m.GatewayReference,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromModels(rows []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
