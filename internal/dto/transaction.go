package dto

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/SscSPs/money_planner/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a one-off, installment or
// fixed monthly transaction. Dates are ISO calendar dates (YYYY-MM-DD).
type CreateTransactionRequest struct {
	Type         domain.TransactionType    `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount       decimal.Decimal           `json:"amount"` // Per occurrence; must be positive
	Description  string                    `json:"description" binding:"required,max=255"`
	Notes        *string                   `json:"notes"`
	CategoryID   *string                   `json:"categoryId"`
	AccountID    *string                   `json:"accountId"`
	DueDate      string                    `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Status       *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID OVERDUE"`
	StartDate    *string                   `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	DayOfMonth   *int                      `json:"dayOfMonth" binding:"omitempty,min=1,max=31"`
	IsFixed      bool                      `json:"isFixed"`
	Installments *int                      `json:"installments" binding:"omitempty,min=1,max=600"`
	EndDate      *string                   `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	TagIDs       []string                  `json:"tagIds" binding:"omitempty,dive,required"`
}

// UpdateTransactionRequest defines the editable fields of a transaction or occurrence.
// Use pointers to distinguish between zero-value updates and fields not provided; an
// empty categoryID, accountID or notes clears the value.
type UpdateTransactionRequest struct {
	DueDate     *string                   `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Amount      *decimal.Decimal          `json:"amount"`
	Description *string                   `json:"description" binding:"omitempty,max=255"`
	Status      *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID OVERDUE"`
	CategoryID  *string                   `json:"categoryId"`
	AccountID   *string                   `json:"accountId"`
	Notes       *string                   `json:"notes"`
	TagIDs      *[]string                 `json:"tagIds" binding:"omitempty,dive,required"`
}

// ScopeParams carries the scope query parameter of update and delete requests.
type ScopeParams struct {
	Scope string `form:"scope" binding:"omitempty,txscope"`
}

// ListTransactionsParams defines query parameters for listing occurrences.
// Month ("YYYY-MM") is a shorthand for a window covering that calendar month and wins
// over StartDate/EndDate.
type ListTransactionsParams struct {
	StartDate         string  `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate           string  `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Month             string  `form:"month" binding:"omitempty,yearmonth"`
	Type              string  `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	CategoryID        *string `form:"categoryId"`
	AccountID         *string `form:"accountId"`
	IsFixed           *bool   `form:"isFixed"`
	GroupInstallments bool    `form:"groupInstallments"`
	Limit             int     `form:"limit,default=100" binding:"min=0,max=1000"`
	NextToken         *string `form:"nextToken"`
}

// TransactionResponse is a persisted root transaction.
type TransactionResponse struct {
	TransactionID        string                   `json:"transactionId"`
	Type                 domain.TransactionType   `json:"type"`
	Amount               decimal.Decimal          `json:"amount"`
	Description          string                   `json:"description"`
	Notes                *string                  `json:"notes,omitempty"`
	CategoryID           *string                  `json:"categoryId,omitempty"`
	AccountID            *string                  `json:"accountId,omitempty"`
	DueDate              string                   `json:"dueDate"`
	Status               domain.TransactionStatus `json:"status"`
	PaidAt               *time.Time               `json:"paidAt,omitempty"`
	Kind                 domain.SeriesKind        `json:"kind"`
	StartDate            *string                  `json:"startDate,omitempty"`
	DayOfMonth           *int                     `json:"dayOfMonth,omitempty"`
	IsFixed              bool                     `json:"isFixed"`
	Installments         *int                     `json:"installments,omitempty"`
	EndDate              *string                  `json:"endDate,omitempty"`
	CancelledOccurrences []string                 `json:"cancelledOccurrences"`
	TagIDs               []string                 `json:"tagIds"`
	CreatedAt            time.Time                `json:"createdAt"`
	CreatedBy            string                   `json:"createdBy"`
	LastUpdatedAt        time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy        string                   `json:"lastUpdatedBy"`
}

// OccurrenceResponse is one computed occurrence. ID is a virtual id
// ("{rootID}::YYYY-MM") unless the occurrence is backed by a record.
type OccurrenceResponse struct {
	ID                 string                   `json:"id"`
	RootID             string                   `json:"rootId"`
	Type               domain.TransactionType   `json:"type"`
	Amount             decimal.Decimal          `json:"amount"`
	Description        string                   `json:"description"`
	Notes              *string                  `json:"notes,omitempty"`
	CategoryID         *string                  `json:"categoryId,omitempty"`
	AccountID          *string                  `json:"accountId,omitempty"`
	DueDate            string                   `json:"dueDate"`
	Status             domain.TransactionStatus `json:"status"`
	PaidAt             *time.Time               `json:"paidAt,omitempty"`
	IsFixed            bool                     `json:"isFixed"`
	CurrentInstallment *int                     `json:"currentInstallment,omitempty"`
	Installments       *int                     `json:"installments,omitempty"`
	IsVirtual          bool                     `json:"isVirtual"`
	IsOverride         bool                     `json:"isOverride"`
	OverrideForDate    *string                  `json:"overrideForDate,omitempty"`
	TagIDs             []string                 `json:"tagIds"`
}

// InstallmentGroupResponse collapses an installment series into one row of a grouped list.
type InstallmentGroupResponse struct {
	RootID       string                 `json:"rootId"`
	Type         domain.TransactionType `json:"type"`
	Description  string                 `json:"description"`
	CategoryID   *string                `json:"categoryId,omitempty"`
	AccountID    *string                `json:"accountId,omitempty"`
	Total        int                    `json:"total"`
	Paid         int                    `json:"paid"`
	Cancelled    int                    `json:"cancelled"`
	TotalAmount  decimal.Decimal        `json:"totalAmount"`
	PaidAmount   decimal.Decimal        `json:"paidAmount"`
	NextDueDate  *string                `json:"nextDueDate,omitempty"`
	FirstDueDate string                 `json:"firstDueDate"`
	LastDueDate  string                 `json:"lastDueDate"`
}

// ListTransactionsResponse wraps a page of occurrences. Installments is only set when
// grouping was requested; the grouped series are then absent from Transactions.
type ListTransactionsResponse struct {
	Transactions []OccurrenceResponse       `json:"transactions"`
	Installments []InstallmentGroupResponse `json:"installments,omitempty"`
	NextToken    *string                    `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	cancelled := txn.CancelledOccurrences
	if cancelled == nil {
		cancelled = []string{}
	}
	return TransactionResponse{
		TransactionID:        txn.TransactionID,
		Type:                 txn.Type,
		Amount:               txn.Amount,
		Description:          txn.Description,
		Notes:                txn.Notes,
		CategoryID:           txn.CategoryID,
		AccountID:            txn.AccountID,
		DueDate:              formatDate(txn.DueDate),
		Status:               txn.Status,
		PaidAt:               txn.PaidAt,
		Kind:                 txn.Kind(),
		StartDate:            formatDatePtr(txn.StartDate),
		DayOfMonth:           txn.DayOfMonth,
		IsFixed:              txn.IsFixed,
		Installments:         txn.Installments,
		EndDate:              formatDatePtr(txn.EndDate),
		CancelledOccurrences: cancelled,
		TagIDs:               nonNilStrings(txn.TagIDs),
		CreatedAt:            txn.CreatedAt,
		CreatedBy:            txn.CreatedBy,
		LastUpdatedAt:        txn.LastUpdatedAt,
		LastUpdatedBy:        txn.LastUpdatedBy,
	}
}

// ToOccurrenceResponse converts a domain.Occurrence to OccurrenceResponse DTO.
func ToOccurrenceResponse(occ *domain.Occurrence) OccurrenceResponse {
	return OccurrenceResponse{
		ID:                 occ.ID,
		RootID:             occ.RootID,
		Type:               occ.Type,
		Amount:             occ.Amount,
		Description:        occ.Description,
		Notes:              occ.Notes,
		CategoryID:         occ.CategoryID,
		AccountID:          occ.AccountID,
		DueDate:            formatDate(occ.DueDate),
		Status:             occ.Status,
		PaidAt:             occ.PaidAt,
		IsFixed:            occ.IsFixed,
		CurrentInstallment: occ.CurrentInstallment,
		Installments:       occ.Installments,
		IsVirtual:          occ.IsVirtual,
		IsOverride:         occ.IsOverride,
		OverrideForDate:    formatDatePtr(occ.OverrideForDate),
		TagIDs:             nonNilStrings(occ.TagIDs),
	}
}

// ToOccurrenceResponses converts a slice of domain.Occurrence to []OccurrenceResponse.
func ToOccurrenceResponses(occs []domain.Occurrence) []OccurrenceResponse {
	res := make([]OccurrenceResponse, len(occs))
	for i := range occs {
		res[i] = ToOccurrenceResponse(&occs[i])
	}
	return res
}

// ToInstallmentGroupResponse converts an installment summary to its list row.
func ToInstallmentGroupResponse(s *domain.InstallmentSummary) InstallmentGroupResponse {
	return InstallmentGroupResponse{
		RootID:       s.Root.TransactionID,
		Type:         s.Root.Type,
		Description:  s.Root.Description,
		CategoryID:   s.Root.CategoryID,
		AccountID:    s.Root.AccountID,
		Total:        s.Total,
		Paid:         s.Paid,
		Cancelled:    s.Cancelled,
		TotalAmount:  s.TotalAmount,
		PaidAmount:   s.PaidAmount,
		NextDueDate:  formatDatePtr(s.NextDueDate),
		FirstDueDate: formatDate(s.FirstDueDate),
		LastDueDate:  formatDate(s.LastDueDate),
	}
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := dates.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ToEditFields converts the request into planner edit fields.
func (r UpdateTransactionRequest) ToEditFields() (recurrence.EditFields, error) {
	due, err := parseDatePtr(r.DueDate)
	if err != nil {
		return recurrence.EditFields{}, err
	}
	return recurrence.EditFields{
		DueDate:     due,
		Amount:      r.Amount,
		Description: r.Description,
		Status:      r.Status,
		CategoryID:  r.CategoryID,
		AccountID:   r.AccountID,
		Notes:       r.Notes,
		TagIDs:      r.TagIDs,
	}, nil
}

// ParsedDates returns the due, start and end dates of the request at noon UTC.
func (r CreateTransactionRequest) ParsedDates() (due time.Time, start, end *time.Time, err error) {
	due, err = dates.ParseDate(r.DueDate)
	if err != nil {
		return time.Time{}, nil, nil, err
	}
	if start, err = parseDatePtr(r.StartDate); err != nil {
		return time.Time{}, nil, nil, err
	}
	if end, err = parseDatePtr(r.EndDate); err != nil {
		return time.Time{}, nil, nil, err
	}
	return due, start, end, nil
}

// Window returns the requested date range; open bounds stay zero.
func (p ListTransactionsParams) Window() (recurrence.Window, error) {
	if p.Month != "" {
		y, m, err := dates.ParseMonthKey(p.Month)
		if err != nil {
			return recurrence.Window{}, err
		}
		return recurrence.Window{
			Start: dates.ClampedDate(y, m, 1),
			End:   dates.ClampedDate(y, m, dates.LastDayOfMonth(y, m)),
		}, nil
	}

	var w recurrence.Window
	var err error
	if p.StartDate != "" {
		if w.Start, err = dates.ParseDate(p.StartDate); err != nil {
			return recurrence.Window{}, err
		}
	}
	if p.EndDate != "" {
		if w.End, err = dates.ParseDate(p.EndDate); err != nil {
			return recurrence.Window{}, err
		}
	}
	return w, nil
}
