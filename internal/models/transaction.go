package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the transaction_type column values.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is one row of the transactions table: a root (one-off or series) or an
// override of a single occurrence. DATE columns come back at midnight UTC.
type Transaction struct {
	TransactionID        string          `db:"transaction_id"`
	UserID               string          `db:"user_id"`
	TransactionType      TransactionType `db:"transaction_type"`
	Amount               decimal.Decimal `db:"amount"`
	Description          string          `db:"description"`
	Notes                *string         `db:"notes"`
	CategoryID           *string         `db:"category_id"`
	AccountID            *string         `db:"account_id"`
	DueDate              time.Time       `db:"due_date"`
	Status               string          `db:"status"`
	PaidAt               *time.Time      `db:"paid_at"`
	StartDate            *time.Time      `db:"start_date"`
	DayOfMonth           *int32          `db:"day_of_month"`
	IsFixed              bool            `db:"is_fixed"`
	Installments         *int32          `db:"installments"`
	EndDate              *time.Time      `db:"end_date"`
	CancelledOccurrences []string        `db:"cancelled_occurrences"`
	IsOverride           bool            `db:"is_override"`
	ParentTransactionID  *string         `db:"parent_transaction_id"`
	OverrideForDate      *time.Time      `db:"override_for_date"`
	AuditFields
}

// TransactionTag is one row of the transaction_tags side table.
type TransactionTag struct {
	TransactionID string `db:"transaction_id"`
	TagID         string `db:"tag_id"`
}
