package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "aptfee_backend/internals/databases"
	"aptfee_backend/internals/features/billing/invoices/model"
	serviceModel "aptfee_backend/internals/features/billing/services/model"
	subscriptionModel "aptfee_backend/internals/features/billing/subscriptions/model"
	paymentModel "aptfee_backend/internals/features/finance/payments/model"
	apartmentModel "aptfee_backend/internals/features/property/apartments/model"
	buildingModel "aptfee_backend/internals/features/property/buildings/model"
	helper "aptfee_backend/internals/helpers"
	"aptfee_backend/internals/helpers/dbtime"
)

type ledgerFixture struct {
	db        *gorm.DB
	ledger    *LedgerService
	apartment uuid.UUID
	water     uuid.UUID
	parking   uuid.UUID
}

func newLedgerFixture(t *testing.T) ledgerFixture {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	b := &buildingModel.Building{Name: "Tower A"}
	require.NoError(t, db.Create(b).Error)
	a := &apartmentModel.Apartment{RoomNumber: "101", BuildingID: b.ID}
	require.NoError(t, db.Create(a).Error)
	water := &serviceModel.Service{Name: "Water", UnitPrice: decimal.RequireFromString("100.00")}
	require.NoError(t, db.Create(water).Error)
	parking := &serviceModel.Service{Name: "Parking", UnitPrice: decimal.RequireFromString("45.50")}
	require.NoError(t, db.Create(parking).Error)

	return ledgerFixture{db: db, ledger: NewLedgerService(db), apartment: a.ID, water: water.ID, parking: parking.ID}
}

func (f ledgerFixture) subscribe(t *testing.T, serviceID uuid.UUID, frequency string, next dbtime.Date) uuid.UUID {
	t.Helper()
	s := &subscriptionModel.Subscription{
		ApartmentID:     f.apartment,
		ServiceID:       serviceID,
		Frequency:       frequency,
		NextBillingDate: next,
		Status:          "active",
	}
	require.NoError(t, f.db.Create(s).Error)
	return s.ID
}

func (f ledgerFixture) nextBilling(t *testing.T, id uuid.UUID) string {
	t.Helper()
	var s subscriptionModel.Subscription
	require.NoError(t, f.db.First(&s, "id = ?", id).Error)
	return s.NextBillingDate.String()
}

func (f ledgerFixture) invoice(t *testing.T, id uuid.UUID) model.Invoice {
	t.Helper()
	var inv model.Invoice
	require.NoError(t, f.db.First(&inv, "id = ?", id).Error)
	return inv
}

func TestAddLineItemOpensInvoiceAndAdvancesSchedule(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	subID := f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.March, 1))

	d1, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 2)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("200.00").Equal(d1.Total))

	inv := f.invoice(t, d1.InvoiceID)
	assert.Equal(t, "pending", inv.Status)
	assert.True(t, decimal.RequireFromString("200.00").Equal(inv.TotalAmount))
	assert.Equal(t, "2024-03-01", inv.DueDate.UTC().Format("2006-01-02"))
	assert.Equal(t, "2024-04-01", f.nextBilling(t, subID))

	d2, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)
	assert.Equal(t, d1.InvoiceID, d2.InvoiceID, "second charge lands on the same pending invoice")

	inv = f.invoice(t, d1.InvoiceID)
	assert.True(t, decimal.RequireFromString("300.00").Equal(inv.TotalAmount))
	// due date is fixed when the invoice opens
	assert.Equal(t, "2024-03-01", inv.DueDate.UTC().Format("2006-01-02"))
	assert.Equal(t, "2024-05-01", f.nextBilling(t, subID))

	var pending int64
	require.NoError(t, f.db.Model(&model.Invoice{}).Where("apartment_id = ? AND status = ?", f.apartment, "pending").Count(&pending).Error)
	assert.EqualValues(t, 1, pending)
}

func TestAddLineItemWithoutSubscriptionCommitsNothing(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.AddLineItem(context.Background(), f.apartment, f.water, 1)
	assert.ErrorIs(t, err, helper.ErrSubscriptionNotFound)

	var invoices, details int64
	require.NoError(t, f.db.Model(&model.Invoice{}).Count(&invoices).Error)
	require.NoError(t, f.db.Model(&model.InvoiceDetail{}).Count(&details).Error)
	assert.Zero(t, invoices)
	assert.Zero(t, details)
}

func TestAddLineItemUnknownServiceRollsBack(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.March, 1))
	_, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)

	// a pending invoice exists, so the next failure is the service lookup
	_, err = f.ledger.AddLineItem(ctx, f.apartment, uuid.New(), 1)
	assert.ErrorIs(t, err, helper.ErrServiceNotExisted)

	_, err = f.ledger.AddLineItem(ctx, uuid.New(), f.water, 1)
	assert.ErrorIs(t, err, helper.ErrApartmentNotFound)

	var details int64
	require.NoError(t, f.db.Model(&model.InvoiceDetail{}).Count(&details).Error)
	assert.EqualValues(t, 1, details)
}

func TestAddLineItemSecondServiceNeedsOwnSubscription(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.March, 1))
	_, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)

	// the invoice is found, but advancing the schedule needs a parking subscription
	_, err = f.ledger.AddLineItem(ctx, f.apartment, f.parking, 1)
	assert.ErrorIs(t, err, helper.ErrSubscriptionNotFound)

	parkingSub := f.subscribe(t, f.parking, "yearly", dbtime.NewDate(2024, time.February, 29))
	d, err := f.ledger.AddLineItem(ctx, f.apartment, f.parking, 2)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("91.00").Equal(d.Total))
	assert.Equal(t, "2025-02-28", f.nextBilling(t, parkingSub))

	inv := f.invoice(t, d.InvoiceID)
	assert.True(t, decimal.RequireFromString("191.00").Equal(inv.TotalAmount))
}

func TestUpdateLineItemPricesFromNewService(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.January, 31))
	parkingSub := f.subscribe(t, f.parking, "quarterly", dbtime.NewDate(2024, time.November, 30))

	d, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 3)
	require.NoError(t, err)

	updated, err := f.ledger.UpdateLineItem(ctx, d.ID, 2, &f.parking)
	require.NoError(t, err)
	assert.Equal(t, f.parking, updated.ServiceID)
	assert.True(t, decimal.RequireFromString("91.00").Equal(updated.Total))

	inv := f.invoice(t, d.InvoiceID)
	assert.True(t, decimal.RequireFromString("91.00").Equal(inv.TotalAmount))
	// the new service's schedule moves
	assert.Equal(t, "2025-02-28", f.nextBilling(t, parkingSub))
}

func TestUpdateLineItemQuantityOnly(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	subID := f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.January, 31))

	d, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", f.nextBilling(t, subID))

	updated, err := f.ledger.UpdateLineItem(ctx, d.ID, 5, nil)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("500.00").Equal(updated.Total))
	assert.True(t, decimal.RequireFromString("500.00").Equal(f.invoice(t, d.InvoiceID).TotalAmount))
	assert.Equal(t, "2024-03-29", f.nextBilling(t, subID))

	_, err = f.ledger.UpdateLineItem(ctx, uuid.New(), 1, nil)
	assert.ErrorIs(t, err, helper.ErrInvoiceDetailNotFound)

	_, err = f.ledger.UpdateLineItem(ctx, d.ID, -1, nil)
	assert.ErrorIs(t, err, helper.ErrInvalidKey)
}

func TestDeleteLineItemResumsAndAdvances(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	subID := f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.March, 1))

	d1, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 2)
	require.NoError(t, err)
	_, err = f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", f.nextBilling(t, subID))

	require.NoError(t, f.ledger.DeleteLineItem(ctx, d1.ID))

	assert.True(t, decimal.RequireFromString("100.00").Equal(f.invoice(t, d1.InvoiceID).TotalAmount))
	assert.Equal(t, "2024-06-01", f.nextBilling(t, subID))

	assert.ErrorIs(t, f.ledger.DeleteLineItem(ctx, d1.ID), helper.ErrInvoiceDetailNotFound)
}

func TestUpdateAndDeleteWithoutSubscriptionCommitNothing(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	subID := f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.March, 1))

	d, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 2)
	require.NoError(t, err)
	require.NoError(t, f.db.Delete(&subscriptionModel.Subscription{}, "id = ?", subID).Error)

	_, err = f.ledger.UpdateLineItem(ctx, d.ID, 5, nil)
	assert.ErrorIs(t, err, helper.ErrSubscriptionNotFound)
	assert.ErrorIs(t, f.ledger.DeleteLineItem(ctx, d.ID), helper.ErrSubscriptionNotFound)

	kept, err := f.ledger.GetLineItem(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, kept.Quantity)
	assert.True(t, decimal.RequireFromString("200.00").Equal(kept.Total))
	assert.True(t, decimal.RequireFromString("200.00").Equal(f.invoice(t, d.InvoiceID).TotalAmount))
}

func TestOversizedAmountsAreRejected(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	subID := f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.March, 1))

	_, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 200_000_000)
	assert.ErrorIs(t, err, helper.ErrInvalidKey)

	// 6e9 fits one line, two of them overflow the invoice total
	d, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 60_000_000)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", f.nextBilling(t, subID))

	_, err = f.ledger.AddLineItem(ctx, f.apartment, f.water, 60_000_000)
	assert.ErrorIs(t, err, helper.ErrInvalidKey)

	var details int64
	require.NoError(t, f.db.Model(&model.InvoiceDetail{}).Count(&details).Error)
	assert.EqualValues(t, 1, details)
	assert.True(t, decimal.RequireFromString("6000000000.00").Equal(f.invoice(t, d.InvoiceID).TotalAmount))
	assert.Equal(t, "2024-04-01", f.nextBilling(t, subID))
}

func TestPaidInvoiceIsFrozen(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.March, 1))

	d, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)
	require.NoError(t, f.db.Model(&model.Invoice{}).Where("id = ?", d.InvoiceID).Update("status", "paid").Error)

	_, err = f.ledger.UpdateLineItem(ctx, d.ID, 4, nil)
	assert.ErrorIs(t, err, helper.ErrInvoiceNotPending)
	assert.ErrorIs(t, f.ledger.DeleteLineItem(ctx, d.ID), helper.ErrInvoiceNotPending)
	assert.ErrorIs(t, f.ledger.DeleteInvoice(ctx, d.InvoiceID), helper.ErrInvoiceNotPending)

	// the next charge opens a fresh invoice due on the advanced date
	d2, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)
	assert.NotEqual(t, d.InvoiceID, d2.InvoiceID)
	assert.Equal(t, "2024-04-01", f.invoice(t, d2.InvoiceID).DueDate.UTC().Format("2006-01-02"))
}

func TestDeleteInvoiceRemovesDetails(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.March, 1))

	d, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)

	require.NoError(t, f.ledger.DeleteInvoice(ctx, d.InvoiceID))

	_, _, err = f.ledger.GetInvoice(ctx, d.InvoiceID)
	assert.ErrorIs(t, err, helper.ErrInvoiceNotFound)
	_, err = f.ledger.GetLineItem(ctx, d.ID)
	assert.ErrorIs(t, err, helper.ErrInvoiceDetailNotFound)
}

func TestDeleteInvoiceDropsUnsettledPaymentsOnly(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.March, 1))

	d, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)
	pending := &paymentModel.Payment{InvoiceID: d.InvoiceID, Amount: decimal.RequireFromString("100.00"), Status: "pending", PaymentDate: time.Now()}
	require.NoError(t, f.db.Create(pending).Error)
	failed := &paymentModel.Payment{InvoiceID: d.InvoiceID, Amount: decimal.RequireFromString("100.00"), Status: "failed", PaymentDate: time.Now()}
	require.NoError(t, f.db.Create(failed).Error)

	require.NoError(t, f.ledger.DeleteInvoice(ctx, d.InvoiceID))
	var left int64
	require.NoError(t, f.db.Model(&paymentModel.Payment{}).Count(&left).Error)
	assert.Zero(t, left)

	// a completed payment keeps the invoice
	d2, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)
	done := &paymentModel.Payment{InvoiceID: d2.InvoiceID, Amount: decimal.RequireFromString("100.00"), Status: "completed", PaymentDate: time.Now()}
	require.NoError(t, f.db.Create(done).Error)

	assert.ErrorIs(t, f.ledger.DeleteInvoice(ctx, d2.InvoiceID), helper.ErrInvoiceNotPending)
	_, _, err = f.ledger.GetInvoice(ctx, d2.InvoiceID)
	assert.NoError(t, err)
}

func TestListInvoicesByApartment(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	f.subscribe(t, f.water, "monthly", dbtime.NewDate(2024, time.March, 1))

	d, err := f.ledger.AddLineItem(ctx, f.apartment, f.water, 1)
	require.NoError(t, err)
	_, err = f.ledger.AddLineItem(ctx, f.apartment, f.water, 4)
	require.NoError(t, err)

	p := helper.Paging{Page: 1, PerPage: 20, Limit: 20}
	rows, total, err := f.ledger.ListInvoicesByApartment(ctx, f.apartment, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, d.InvoiceID, rows[0].ID)

	details, total, err := f.ledger.ListLineItemsByInvoice(ctx, d.InvoiceID, p)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, details, 2)

	_, _, err = f.ledger.ListInvoicesByApartment(ctx, uuid.New(), p)
	assert.ErrorIs(t, err, helper.ErrApartmentNotFound)
	_, _, err = f.ledger.ListLineItemsByInvoice(ctx, uuid.New(), p)
	assert.ErrorIs(t, err, helper.ErrInvoiceNotFound)
}
