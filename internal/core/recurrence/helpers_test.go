package recurrence_test

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/shopspring/decimal"
)

var testNow = day(2025, time.June, 15)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// installmentRoot is "TV, n installments of 200" starting 2025-01-15.
func installmentRoot(n int) domain.Transaction {
	start := day(2025, time.January, 15)
	end := day(2025, time.January, 15).AddDate(0, n-1, 0)
	return domain.Transaction{
		TransactionID: "root-tv",
		UserID:        "user-1",
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(200),
		Description:   "TV",
		DueDate:       start,
		Status:        domain.StatusPending,
		StartDate:     &start,
		DayOfMonth:    ptr(15),
		Installments:  ptr(n),
		EndDate:       &end,
	}
}

// rentRoot is "rent, 1500 every month on the 31st" starting 2025-01-31.
func rentRoot() domain.Transaction {
	start := day(2025, time.January, 31)
	return domain.Transaction{
		TransactionID: "root-rent",
		UserID:        "user-1",
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(1500),
		Description:   "Rent",
		DueDate:       start,
		Status:        domain.StatusPending,
		StartDate:     &start,
		DayOfMonth:    ptr(31),
		IsFixed:       true,
	}
}

func override(root domain.Transaction, id string, forDate time.Time, amount int64) domain.Transaction {
	parent := root.TransactionID
	return domain.Transaction{
		TransactionID:       id,
		UserID:              root.UserID,
		Type:                root.Type,
		Amount:              decimal.NewFromInt(amount),
		Description:         root.Description,
		DueDate:             forDate,
		Status:              domain.StatusPending,
		IsOverride:          true,
		ParentTransactionID: &parent,
		OverrideForDate:     &forDate,
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ov-%d", n)
	}
}

func newTestPlanner() *recurrence.Planner {
	return recurrence.NewPlanner(
		recurrence.WithPlannerClock(recurrence.FixedClock(testNow)),
		recurrence.WithIDGenerator(sequentialIDs()),
	)
}

// applyPlan mimics what the repository does with a plan. ok is false when the root is gone.
func applyPlan(root domain.Transaction, overrides []domain.Transaction, plan recurrence.Plan) (domain.Transaction, []domain.Transaction, bool) {
	if plan.DeleteRoot {
		return domain.Transaction{}, nil, false
	}
	if plan.RootChanged {
		root = plan.Root
	}
	var out []domain.Transaction
	for _, ov := range overrides {
		if slices.Contains(plan.DeleteOverrideIDs, ov.TransactionID) {
			continue
		}
		if i := slices.IndexFunc(plan.UpdateOverrides, func(u domain.Transaction) bool {
			return u.TransactionID == ov.TransactionID
		}); i >= 0 {
			ov = plan.UpdateOverrides[i]
		}
		out = append(out, ov)
	}
	out = append(out, plan.CreateOverrides...)
	return root, out, true
}

func expandYear(root domain.Transaction, overrides []domain.Transaction, year int) []domain.Occurrence {
	return recurrence.Collect(recurrence.Expand(root, overrides, day(year, time.January, 1), day(year, time.December, 31), testNow))
}

func months(occs []domain.Occurrence) []time.Month {
	out := make([]time.Month, 0, len(occs))
	for _, o := range occs {
		out = append(out, o.DueDate.Month())
	}
	return out
}
