package database

import (
	"fmt"

	"gorm.io/gorm"

	invoiceModel "aptfee_backend/internals/features/billing/invoices/model"
	serviceModel "aptfee_backend/internals/features/billing/services/model"
	subscriptionModel "aptfee_backend/internals/features/billing/subscriptions/model"
	paymentModel "aptfee_backend/internals/features/finance/payments/model"
	notificationModel "aptfee_backend/internals/features/home/notifications/model"
	apartmentModel "aptfee_backend/internals/features/property/apartments/model"
	buildingModel "aptfee_backend/internals/features/property/buildings/model"
	contractModel "aptfee_backend/internals/features/property/contracts/model"
	authModel "aptfee_backend/internals/features/users/auth/model"
	residentModel "aptfee_backend/internals/features/users/residents/model"
)

// Indexes GORM tags cannot express
var extraIndexes = []string{
	// at most one pending invoice per apartment
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_invoices_pending_apartment ON invoices (apartment_id) WHERE status = 'pending'`,
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&residentModel.Resident{},
		&authModel.RevokedToken{},
		&buildingModel.Building{},
		&apartmentModel.Apartment{},
		&contractModel.Contract{},
		&serviceModel.Service{},
		&subscriptionModel.Subscription{},
		&invoiceModel.Invoice{},
		&invoiceModel.InvoiceDetail{},
		&paymentModel.Payment{},
		&notificationModel.Notification{},
		&notificationModel.NotificationResident{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	for _, stmt := range extraIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
