package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	invoiceRepo "aptfee_backend/internals/features/billing/invoices/repository"
	"aptfee_backend/internals/features/finance/payments/dto"
	"aptfee_backend/internals/features/finance/payments/model"
	"aptfee_backend/internals/features/finance/payments/repository"
	apartmentRepo "aptfee_backend/internals/features/property/apartments/repository"
	residentRepo "aptfee_backend/internals/features/users/residents/repository"
	helper "aptfee_backend/internals/helpers"
)

type PaymentService struct {
	DB        *gorm.DB
	Gateway   SnapGateway
	ServerKey string
	Now       func() time.Time
}

func NewPaymentService(db *gorm.DB, gateway SnapGateway, serverKey string) *PaymentService {
	return &PaymentService{DB: db, Gateway: gateway, ServerKey: serverKey, Now: time.Now}
}

func (s *PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreatePayment records a payment. A completed payment settles the invoice in the same transaction.
func (s *PaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*model.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, helper.ErrInvalidKey.WithMessage("amount must be > 0")
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = constants.PaymentStatusPending
	}
	paidAt := s.now()
	if req.PaymentDate != nil && !req.PaymentDate.IsZero() {
		paidAt = *req.PaymentDate
	}

	p := &model.Payment{
		InvoiceID:   req.InvoiceID,
		Amount:      req.Amount.Round(2),
		Status:      status,
		PaymentDate: paidAt,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := invoiceRepo.FindInvoiceByID(ctx, tx, req.InvoiceID); err != nil {
			return err
		}
		if err := repository.Create(ctx, tx, p); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		if status == constants.PaymentStatusCompleted {
			return settleInvoice(ctx, tx, req.InvoiceID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// settleInvoice marks a pending invoice paid while holding the apartment row lock that
// ledger mutations take, so no line item lands on it between the last re-sum and settlement.
func settleInvoice(ctx context.Context, tx *gorm.DB, invoiceID uuid.UUID) error {
	inv, err := invoiceRepo.FindInvoiceByID(ctx, tx, invoiceID)
	if err != nil {
		return err
	}
	if _, err := apartmentRepo.LockByID(ctx, tx, inv.ApartmentID); err != nil {
		return err
	}
	// status may have moved while waiting for the lock
	inv, err = invoiceRepo.FindInvoiceByID(ctx, tx, invoiceID)
	if err != nil {
		return err
	}
	if inv.Status != constants.InvoiceStatusPending {
		return nil
	}
	return invoiceRepo.MarkPaid(ctx, tx, invoiceID)
}

func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return repository.FindByID(ctx, s.DB, id)
}

func (s *PaymentService) List(ctx context.Context, f repository.Filter, p helper.Paging) ([]model.Payment, int64, error) {
	return repository.List(ctx, s.DB, f, p)
}

// Checkout opens a Snap transaction for the invoice's current total. When ownerEmail is
// set the invoice must belong to an apartment occupied by that resident.
func (s *PaymentService) Checkout(ctx context.Context, invoiceID uuid.UUID, ownerEmail string) (*dto.CheckoutResponse, error) {
	if s.Gateway == nil {
		return nil, helper.ErrFeatureDisabled.WithMessage("Online payment is not configured")
	}

	inv, err := invoiceRepo.FindInvoiceByID(ctx, s.DB, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != constants.InvoiceStatusPending {
		return nil, helper.ErrInvoiceNotPending
	}
	if !inv.TotalAmount.IsPositive() {
		return nil, helper.ErrInvalidKey.WithMessage("Invoice total must be > 0")
	}

	var cust CustomerInput
	if ownerEmail != "" {
		r, err := residentRepo.FindByEmail(ctx, s.DB, ownerEmail)
		if err != nil {
			return nil, helper.ErrUnauthorized
		}
		apt, err := apartmentRepo.FindByID(ctx, s.DB, inv.ApartmentID)
		if err != nil {
			return nil, err
		}
		if apt.ResidentID == nil || *apt.ResidentID != r.ID {
			return nil, helper.ErrUnauthorized
		}
		cust = CustomerInput{FullName: r.FullName, Email: r.Email, Phone: r.Phone}
	}

	p := &model.Payment{
		ID:          uuid.New(),
		InvoiceID:   inv.ID,
		Amount:      inv.TotalAmount.Round(2),
		Status:      constants.PaymentStatusPending,
		PaymentDate: s.now(),
	}
	p.OrderID = p.ID.String()

	gross := inv.TotalAmount.Round(0).IntPart()
	resp, mErr := s.Gateway.CreateTransaction(buildSnapRequest(p.OrderID, gross, "Invoice "+inv.DueDate.Format("2006-01"), cust))
	if mErr != nil || resp == nil {
		log.Printf("[ERROR] midtrans create transaction order=%s: %v", p.OrderID, mErr)
		return nil, helper.ErrUncategorized.WithMessage("Payment gateway error")
	}

	if err := repository.Create(ctx, s.DB, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return &dto.CheckoutResponse{
		PaymentID:   p.ID,
		OrderID:     p.OrderID,
		Amount:      p.Amount,
		SnapToken:   resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// HandleNotification applies a gateway status callback. It returns the payment as updated;
// statuses that need no action leave the payment untouched.
func (s *PaymentService) HandleNotification(ctx context.Context, n dto.MidtransNotification, raw []byte) (*model.Payment, error) {
	want := strings.ToLower(strings.TrimSpace(n.SignatureKey))
	if s.ServerKey == "" || want == "" || want != NotificationSignature(n.OrderID, n.StatusCode, n.GrossAmount, s.ServerKey) {
		return nil, helper.ErrUnauthenticated.WithMessage("invalid signature")
	}

	var out *model.Payment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := repository.FindByOrderID(ctx, tx, n.OrderID)
		if err != nil {
			return err
		}

		if len(raw) > 0 && json.Valid(raw) {
			p.GatewayPayload = datatypes.JSON(raw)
		}
		if n.TransactionID != "" {
			ref := n.TransactionID
			p.GatewayReference = &ref
		}

		next := mapTransactionStatus(n.TransactionStatus, n.FraudStatus)
		settle := false
		// a settled payment never goes back
		if next != "" && p.Status != constants.PaymentStatusCompleted {
			p.Status = next
			if next == constants.PaymentStatusCompleted {
				p.PaymentDate = s.now()
				if amt, err := decimal.NewFromString(n.GrossAmount); err == nil && amt.IsPositive() {
					p.Amount = amt.Round(2)
				}
				settle = true
			}
		}
		if err := repository.Save(ctx, tx, p); err != nil {
			return fmt.Errorf("save payment: %w", err)
		}
		if settle {
			if err := settleInvoice(ctx, tx, p.InvoiceID); err != nil {
				return fmt.Errorf("mark invoice paid: %w", err)
			}
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// mapTransactionStatus returns "" for statuses that leave the payment as is.
func mapTransactionStatus(status, fraud string) string {
	switch strings.ToLower(status) {
	case "capture":
		if strings.EqualFold(fraud, "challenge") {
			return ""
		}
		return constants.PaymentStatusCompleted
	case "settlement":
		return constants.PaymentStatusCompleted
	case "expire", "cancel", "deny", "failure":
		return constants.PaymentStatusFailed
	default:
		return ""
	}
}
