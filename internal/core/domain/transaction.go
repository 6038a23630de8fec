package domain

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/money_planner/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money flows in or out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// TransactionStatus is the payment state of a transaction or occurrence.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "PENDING"
	StatusPaid    TransactionStatus = "PAID"
	StatusOverdue TransactionStatus = "OVERDUE"
)

// Valid reports whether s is a known status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// SeriesKind describes how a root transaction repeats.
type SeriesKind string

const (
	SeriesSingle      SeriesKind = "SINGLE"
	SeriesInstallment SeriesKind = "INSTALLMENT"
	SeriesFixed       SeriesKind = "FIXED"
)

var (
	ErrAmountNotPositive   = errors.New("amount must be positive")
	ErrFixedAndInstallment = errors.New("a transaction cannot be both fixed and split in installments")
	ErrInvalidInstallments = errors.New("installments must be at least 1")
	ErrInvalidDayOfMonth   = errors.New("dayOfMonth must be between 1 and 31")
	ErrInvalidType         = errors.New("type must be INCOME or EXPENSE")
	ErrInvalidStatus       = errors.New("status must be PENDING, PAID or OVERDUE")
	ErrEndBeforeStart      = errors.New("endDate must not be before startDate")
)

// Transaction is a persisted transaction record. A root describes a one-off
// transaction or a whole recurring/installment series; an override (IsOverride)
// replaces one occurrence of its parent series.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	UserID        string            `json:"userID"`        // Owner
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"` // Always positive; per occurrence for series
	Description   string            `json:"description"`
	Notes         *string           `json:"notes,omitempty"`
	CategoryID    *string           `json:"categoryID,omitempty"`
	AccountID     *string           `json:"accountID,omitempty"`
	DueDate       time.Time         `json:"dueDate"`
	Status        TransactionStatus `json:"status"`
	PaidAt        *time.Time        `json:"paidAt,omitempty"`

	// Series metadata, roots only.
	StartDate            *time.Time `json:"startDate,omitempty"`
	DayOfMonth           *int       `json:"dayOfMonth,omitempty"`
	IsFixed              bool       `json:"isFixed"`
	Installments         *int       `json:"installments,omitempty"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	CancelledOccurrences []string   `json:"cancelledOccurrences"` // "YYYY-MM" keys

	// Override linkage.
	IsOverride          bool       `json:"isOverride"`
	ParentTransactionID *string    `json:"parentTransactionID,omitempty"`
	OverrideForDate     *time.Time `json:"overrideForDate,omitempty"`

	TagIDs []string `json:"tagIDs"`
	AuditFields
}

// Kind returns the series kind of a root.
func (t *Transaction) Kind() SeriesKind {
	switch {
	case t.IsFixed:
		return SeriesFixed
	case t.Installments != nil && *t.Installments > 1:
		return SeriesInstallment
	default:
		return SeriesSingle
	}
}

// IsSeries reports whether the root generates more than one occurrence.
func (t *Transaction) IsSeries() bool {
	return t.Kind() != SeriesSingle
}

// SeriesStart returns StartDate, falling back to DueDate.
func (t *Transaction) SeriesStart() time.Time {
	if t.StartDate != nil {
		return *t.StartDate
	}
	return t.DueDate
}

// BillingDay returns DayOfMonth, falling back to the start date's day.
func (t *Transaction) BillingDay() int {
	if t.DayOfMonth != nil {
		return *t.DayOfMonth
	}
	return t.SeriesStart().Day()
}

// InstallmentCount returns the number of installments, 1 when unset.
func (t *Transaction) InstallmentCount() int {
	if t.Installments == nil || *t.Installments < 1 {
		return 1
	}
	return *t.Installments
}

// IsCancelled reports whether the month key is in CancelledOccurrences.
func (t *Transaction) IsCancelled(monthKey string) bool {
	return slices.Contains(t.CancelledOccurrences, monthKey)
}

// Cancel adds monthKey to CancelledOccurrences. It reports whether the set changed.
func (t *Transaction) Cancel(monthKey string) bool {
	if t.IsCancelled(monthKey) {
		return false
	}
	t.CancelledOccurrences = append(t.CancelledOccurrences, monthKey)
	slices.Sort(t.CancelledOccurrences)
	return true
}

// Restore removes monthKey from CancelledOccurrences. It reports whether the set changed.
func (t *Transaction) Restore(monthKey string) bool {
	idx := slices.Index(t.CancelledOccurrences, monthKey)
	if idx < 0 {
		return false
	}
	t.CancelledOccurrences = slices.Delete(t.CancelledOccurrences, idx, idx+1)
	return true
}

// Clone returns a deep copy, so planners can mutate a root without touching the
// caller's value.
func (t Transaction) Clone() Transaction {
	c := t
	c.Notes = clonePtr(t.Notes)
	c.CategoryID = clonePtr(t.CategoryID)
	c.AccountID = clonePtr(t.AccountID)
	c.PaidAt = clonePtr(t.PaidAt)
	c.StartDate = clonePtr(t.StartDate)
	c.DayOfMonth = clonePtr(t.DayOfMonth)
	c.Installments = clonePtr(t.Installments)
	c.EndDate = clonePtr(t.EndDate)
	c.ParentTransactionID = clonePtr(t.ParentTransactionID)
	c.OverrideForDate = clonePtr(t.OverrideForDate)
	c.CancelledOccurrences = slices.Clone(t.CancelledOccurrences)
	c.TagIDs = slices.Clone(t.TagIDs)
	return c
}

// Validate checks the invariants of a root transaction.
func (t *Transaction) Validate() error {
	if t.Type != Income && t.Type != Expense {
		return ErrInvalidType
	}
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if t.Status != "" && !t.Status.Valid() {
		return ErrInvalidStatus
	}
	if t.IsOverride {
		if t.ParentTransactionID == nil || t.OverrideForDate == nil {
			return errors.New("override requires parentTransactionID and overrideForDate")
		}
		return nil
	}
	if t.Installments != nil && *t.Installments < 1 {
		return ErrInvalidInstallments
	}
	if t.IsFixed && t.Installments != nil && *t.Installments > 1 {
		return ErrFixedAndInstallment
	}
	if t.DayOfMonth != nil && (*t.DayOfMonth < 1 || *t.DayOfMonth > 31) {
		return ErrInvalidDayOfMonth
	}
	if t.EndDate != nil && dates.BeforeDay(*t.EndDate, t.SeriesStart()) {
		return fmt.Errorf("%w: %s < %s", ErrEndBeforeStart, t.EndDate.Format(time.DateOnly), t.SeriesStart().Format(time.DateOnly))
	}
	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
