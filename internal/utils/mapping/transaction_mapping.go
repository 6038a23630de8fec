package mapping

import (
	"slices"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/dates"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Tags live in the side table and are not part of the row.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	cancelled := d.CancelledOccurrences
	if cancelled == nil {
		cancelled = []string{}
	}
	return models.Transaction{
		TransactionID:        d.TransactionID,
		UserID:               d.UserID,
		TransactionType:      models.TransactionType(d.Type),
		Amount:               d.Amount,
		Description:          d.Description,
		Notes:                d.Notes,
		CategoryID:           d.CategoryID,
		AccountID:            d.AccountID,
		DueDate:              d.DueDate,
		Status:               string(d.Status),
		PaidAt:               d.PaidAt,
		StartDate:            d.StartDate,
		DayOfMonth:           toInt32Ptr(d.DayOfMonth),
		IsFixed:              d.IsFixed,
		Installments:         toInt32Ptr(d.Installments),
		EndDate:              d.EndDate,
		CancelledOccurrences: cancelled,
		IsOverride:           d.IsOverride,
		ParentTransactionID:  d.ParentTransactionID,
		OverrideForDate:      d.OverrideForDate,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction and its tag ids to a domain
// Transaction. DATE columns are normalised to noon UTC.
func ToDomainTransaction(m models.Transaction, tagIDs []string) domain.Transaction {
	if tagIDs == nil {
		tagIDs = []string{}
	}
	cancelled := slices.Clone(m.CancelledOccurrences)
	slices.Sort(cancelled)
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		UserID:               m.UserID,
		Type:                 domain.TransactionType(m.TransactionType),
		Amount:               m.Amount,
		Description:          m.Description,
		Notes:                m.Notes,
		CategoryID:           m.CategoryID,
		AccountID:            m.AccountID,
		DueDate:              dates.DateOnly(m.DueDate),
		Status:               domain.TransactionStatus(m.Status),
		PaidAt:               m.PaidAt,
		StartDate:            dateOnlyPtr(m.StartDate),
		DayOfMonth:           toIntPtr(m.DayOfMonth),
		IsFixed:              m.IsFixed,
		Installments:         toIntPtr(m.Installments),
		EndDate:              dateOnlyPtr(m.EndDate),
		CancelledOccurrences: cancelled,
		IsOverride:           m.IsOverride,
		ParentTransactionID:  m.ParentTransactionID,
		OverrideForDate:      dateOnlyPtr(m.OverrideForDate),
		TagIDs:               tagIDs,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dates.DateOnly(*t)
	return &d
}

func toInt32Ptr(p *int) *int32 {
	if p == nil {
		return nil
	}
	v := int32(*p)
	return &v
}

func toIntPtr(p *int32) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}
