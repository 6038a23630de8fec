package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Occurrence is one computed instance of a transaction as shown to callers. It is
// built fresh on every read and never persisted.
type Occurrence struct {
	ID                 string            `json:"id"` // Virtual id, or the real id when backed by a record
	RootID             string            `json:"rootID"`
	Type               TransactionType   `json:"type"`
	Amount             decimal.Decimal   `json:"amount"`
	Description        string            `json:"description"`
	Notes              *string           `json:"notes,omitempty"`
	CategoryID         *string           `json:"categoryID,omitempty"`
	AccountID          *string           `json:"accountID,omitempty"`
	DueDate            time.Time         `json:"dueDate"`
	Status             TransactionStatus `json:"status"`
	PaidAt             *time.Time        `json:"paidAt,omitempty"`
	IsFixed            bool              `json:"isFixed"`
	CurrentInstallment *int              `json:"currentInstallment,omitempty"`
	Installments       *int              `json:"installments,omitempty"`
	IsVirtual          bool              `json:"isVirtual"`
	IsOverride         bool              `json:"isOverride"`
	OverrideForDate    *time.Time        `json:"overrideForDate,omitempty"`
	TagIDs             []string          `json:"tagIDs"`
}

// InstallmentSummary aggregates an installment series into a single row.
type InstallmentSummary struct {
	Root         Transaction     `json:"root"`
	Total        int             `json:"total"`
	Paid         int             `json:"paid"`
	Cancelled    int             `json:"cancelled"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	NextDueDate  *time.Time      `json:"nextDueDate,omitempty"`
	FirstDueDate time.Time       `json:"firstDueDate"`
	LastDueDate  time.Time       `json:"lastDueDate"`
}
