package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is a catalogued failure kind rendered as {code, message} with an HTTP status.
// Values are compared by Code, so a wrapped or re-messaged copy still matches errors.Is.
type AppError struct {
	Code    int
	Message string
	Status  int
}

func (e *AppError) Error() string { return fmt.Sprintf("%d: %s", e.Code, e.Message) }

func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// WithMessage returns a copy of the kind carrying a more specific message.
func (e *AppError) WithMessage(msg string) *AppError {
	cp := *e
	cp.Message = msg
	return &cp
}

const CodeSuccess = 1000

var (
	ErrUncategorized         = &AppError{9999, "Uncategorized error", fiber.StatusInternalServerError}
	ErrInvalidKey            = &AppError{1001, "Invalid request", fiber.StatusBadRequest}
	ErrResidentExisted       = &AppError{1002, "Resident existed", fiber.StatusConflict}
	ErrEmailInvalid          = &AppError{1003, "Invalid email format", fiber.StatusBadRequest}
	ErrInvalidPassword       = &AppError{1004, "Password must be at least 8 characters long and include uppercase, lowercase, and digits", fiber.StatusBadRequest}
	ErrResidentNotExisted    = &AppError{1005, "Resident not existed", fiber.StatusNotFound}
	ErrUnauthenticated       = &AppError{1006, "Unauthenticated", fiber.StatusUnauthorized}
	ErrUnauthorized          = &AppError{1007, "You do not have permission", fiber.StatusForbidden}
	ErrTokenExpired          = &AppError{1008, "Token expired", fiber.StatusUnauthorized}
	ErrBuildingNotFound      = &AppError{1009, "Building not found", fiber.StatusNotFound}
	ErrBuildingNameExisted   = &AppError{10010, "Building name already existed", fiber.StatusConflict}
	ErrApartmentRoomExists   = &AppError{10012, "Apartment room number already exists", fiber.StatusConflict}
	ErrApartmentNotFound     = &AppError{10013, "Apartment not found", fiber.StatusNotFound}
	ErrServiceExisted        = &AppError{10014, "Service already existed", fiber.StatusConflict}
	ErrServiceNotExisted     = &AppError{10015, "Service not existed", fiber.StatusNotFound}
	ErrNotificationNotFound  = &AppError{10016, "Notification not found", fiber.StatusNotFound}
	ErrContractNotFound      = &AppError{10017, "Contract not found", fiber.StatusNotFound}
	ErrInvoiceNotFound       = &AppError{10018, "Invoice not found", fiber.StatusNotFound}
	ErrSubscriptionExisted   = &AppError{10019, "Subscription already existed", fiber.StatusConflict}
	ErrSubscriptionNotFound  = &AppError{10020, "Subscription not found", fiber.StatusNotFound}
	ErrPaymentNotFound       = &AppError{10021, "Payment not found", fiber.StatusNotFound}
	ErrInvoiceDetailNotFound = &AppError{10022, "Invoice detail not found", fiber.StatusNotFound}
	ErrFeatureDisabled       = &AppError{10023, "Feature is not configured", fiber.StatusServiceUnavailable}
	ErrInvoiceNotPending     = &AppError{10024, "Invoice is not pending", fiber.StatusConflict}
	ErrContractExisted       = &AppError{10025, "Resident already has a contract", fiber.StatusConflict}
)

// AsAppError unwraps err into a catalogued kind, falling back to ErrUncategorized.
func AsAppError(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return &AppError{Code: fe.Code, Message: fe.Message, Status: fe.Code}
	}
	return ErrUncategorized
}
