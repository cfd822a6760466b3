package constants

// Invoice statuses. Only pending invoices are opened and mutated by the ledger.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Subscription statuses
const (
	SubscriptionStatusActive = "active"
	SubscriptionStatusPaused = "paused"
)

// Billing frequencies
const (
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Contract statuses
const (
	ContractStatusDraft      = "draft"
	ContractStatusActive     = "active"
	ContractStatusTerminated = "terminated"
)
