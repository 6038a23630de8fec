package recurrence

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/utils/dates"
)

// DeriveStatus returns PAID when explicitly paid, otherwise OVERDUE when the due date
// is before today's date and PENDING when it is today or later. Time of day is ignored.
func DeriveStatus(explicit domain.TransactionStatus, dueDate, now time.Time) domain.TransactionStatus {
	if explicit == domain.StatusPaid {
		return domain.StatusPaid
	}
	if dates.BeforeDay(dueDate, now) {
		return domain.StatusOverdue
	}
	return domain.StatusPending
}
