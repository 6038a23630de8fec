package recurrence

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// Summarize aggregates every installment of root into one summary row, regardless of
// any query window. Cancelled installments count towards Cancelled only.
func Summarize(root domain.Transaction, overrides []domain.Transaction, now time.Time) domain.InstallmentSummary {
	count := root.InstallmentCount()
	summary := domain.InstallmentSummary{
		Root:         root,
		Total:        count,
		TotalAmount:  decimal.Zero,
		PaidAmount:   decimal.Zero,
		FirstDueDate: OccurrenceDate(&root, 0),
		LastDueDate:  OccurrenceDate(&root, count-1),
	}

	byMonth := indexOverrides(overrides)
	for i := 0; i < count; i++ {
		occ, ok := occurrenceAt(&root, byMonth, i, now)
		if !ok {
			summary.Cancelled++
			continue
		}
		summary.TotalAmount = summary.TotalAmount.Add(occ.Amount)
		if occ.Status == domain.StatusPaid {
			summary.Paid++
			summary.PaidAmount = summary.PaidAmount.Add(occ.Amount)
			continue
		}
		if summary.NextDueDate == nil || dates.BeforeDay(occ.DueDate, *summary.NextDueDate) {
			due := occ.DueDate
			summary.NextDueDate = &due
		}
	}
	return summary
}
