// Package recurrence expands root transactions into their monthly occurrences and
// plans the scoped (single / future / all) edits and deletes of a series.
//
// Everything here is pure: functions take the root, its overrides and the current
// time and return values. Loading and persisting is the caller's job.
package recurrence

import (
	"iter"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/utils/dates"
	"github.com/SscSPs/money_planner/internal/utils/virtualid"
)

// Default query window used when the caller leaves a bound open.
const (
	DefaultStartYear = 2000
	DefaultEndYear   = 2100
)

// Window is an inclusive date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// DefaultWindow spans January 1st of startYear to December 31st of endYear.
func DefaultWindow(startYear, endYear int) Window {
	return Window{
		Start: dates.ClampedDate(startYear, time.January, 1),
		End:   dates.ClampedDate(endYear, time.December, 31),
	}
}

// Bounded fills open bounds from def and normalises both to calendar dates.
func (w Window) Bounded(def Window) Window {
	if w.Start.IsZero() {
		w.Start = def.Start
	}
	if w.End.IsZero() {
		w.End = def.End
	}
	return Window{Start: dates.DateOnly(w.Start), End: dates.DateOnly(w.End)}
}

// Contains reports whether t's calendar date lies in the window.
func (w Window) Contains(t time.Time) bool {
	return !dates.BeforeDay(t, w.Start) && !dates.BeforeDay(w.End, t)
}

// OccurrenceDate returns the canonical date of the i-th (0-based) occurrence of a series.
func OccurrenceDate(root *domain.Transaction, i int) time.Time {
	start := root.SeriesStart()
	y, m := dates.AddMonths(start.Year(), start.Month(), i)
	return dates.ClampedDate(y, m, root.BillingDay())
}

// LastIndex returns the index of the final occurrence of a series. ok is false for an
// open-ended fixed series.
func LastIndex(root *domain.Transaction) (last int, ok bool) {
	switch root.Kind() {
	case domain.SeriesInstallment:
		return root.InstallmentCount() - 1, true
	case domain.SeriesFixed:
		if root.EndDate == nil {
			return 0, false
		}
		last = dates.MonthsBetween(root.SeriesStart(), *root.EndDate)
		if last >= 0 && dates.BeforeDay(*root.EndDate, OccurrenceDate(root, last)) {
			last--
		}
		return last, true
	default:
		return 0, true
	}
}

// IndexOf returns the occurrence index that falls in (year, month). ok is false when
// that month is not part of the series.
func IndexOf(root *domain.Transaction, year int, month time.Month) (int, bool) {
	if !root.IsSeries() {
		due := root.DueDate
		return 0, due.Year() == year && due.Month() == month
	}
	idx := dates.MonthsBetween(root.SeriesStart(), time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	if idx < 0 {
		return idx, false
	}
	if last, bounded := LastIndex(root); bounded && idx > last {
		return idx, false
	}
	return idx, true
}

// overrideIndex maps "YYYY-MM" of each override's OverrideForDate to the override.
type overrideIndex map[string]*domain.Transaction

func indexOverrides(overrides []domain.Transaction) overrideIndex {
	idx := make(overrideIndex, len(overrides))
	for i := range overrides {
		if overrides[i].OverrideForDate == nil {
			continue
		}
		idx[dates.MonthKey(*overrides[i].OverrideForDate)] = &overrides[i]
	}
	return idx
}

// Expand lazily produces the occurrences of root that fall in [rangeStart, rangeEnd].
// A zero bound falls back to DefaultWindow. Order is ascending by canonical date, but
// callers that mix several roots sort the combined result themselves.
func Expand(root domain.Transaction, overrides []domain.Transaction, rangeStart, rangeEnd, now time.Time) iter.Seq[domain.Occurrence] {
	w := Window{Start: rangeStart, End: rangeEnd}.Bounded(DefaultWindow(DefaultStartYear, DefaultEndYear))
	return ExpandWindow(root, overrides, w, now)
}

// ExpandWindow is Expand over an already bounded window. The window is matched against
// each occurrence's canonical month date, so an override whose DueDate was moved into
// another month is still emitted for the month it replaces.
func ExpandWindow(root domain.Transaction, overrides []domain.Transaction, w Window, now time.Time) iter.Seq[domain.Occurrence] {
	return func(yield func(domain.Occurrence) bool) {
		if dates.BeforeDay(w.End, w.Start) {
			return
		}
		if !root.IsSeries() {
			if w.Contains(root.DueDate) {
				yield(singleOccurrence(&root, now))
			}
			return
		}

		byMonth := indexOverrides(overrides)
		start := root.SeriesStart()

		// Occurrence i always lands in month start+i, so the first month of the window
		// gives the first index worth generating.
		first := max(0, dates.MonthsBetween(start, w.Start))
		last := dates.MonthsBetween(start, w.End)
		if seriesLast, bounded := LastIndex(&root); bounded && seriesLast < last {
			last = seriesLast
		}

		for i := first; i <= last; i++ {
			if !w.Contains(OccurrenceDate(&root, i)) {
				continue
			}
			occ, ok := occurrenceAt(&root, byMonth, i, now)
			if !ok {
				continue
			}
			if !yield(occ) {
				return
			}
		}
	}
}

// Collect drains an occurrence sequence into a slice.
func Collect(seq iter.Seq[domain.Occurrence]) []domain.Occurrence {
	var out []domain.Occurrence
	for occ := range seq {
		out = append(out, occ)
	}
	return out
}

// Resolve returns the occurrence of root in (year, month). ok is false when the month
// is outside the series or has been cancelled.
func Resolve(root domain.Transaction, overrides []domain.Transaction, year int, month time.Month, now time.Time) (domain.Occurrence, bool) {
	idx, ok := IndexOf(&root, year, month)
	if !ok {
		return domain.Occurrence{}, false
	}
	if !root.IsSeries() {
		return singleOccurrence(&root, now), true
	}
	return occurrenceAt(&root, indexOverrides(overrides), idx, now)
}

// occurrenceAt builds occurrence i, preferring an override for its month. ok is false
// when the month is cancelled.
func occurrenceAt(root *domain.Transaction, byMonth overrideIndex, i int, now time.Time) (domain.Occurrence, bool) {
	date := OccurrenceDate(root, i)
	key := dates.MonthKey(date)
	if root.IsCancelled(key) {
		return domain.Occurrence{}, false
	}

	var current *int
	if root.Kind() == domain.SeriesInstallment {
		n := i + 1
		current = &n
	}

	if ov, found := byMonth[key]; found {
		return domain.Occurrence{
			ID:                 ov.TransactionID,
			RootID:             root.TransactionID,
			Type:               ov.Type,
			Amount:             ov.Amount,
			Description:        ov.Description,
			Notes:              ov.Notes,
			CategoryID:         ov.CategoryID,
			AccountID:          ov.AccountID,
			DueDate:            ov.DueDate,
			Status:             DeriveStatus(ov.Status, ov.DueDate, now),
			PaidAt:             paidAtFor(ov.Status, ov.PaidAt),
			IsFixed:            root.IsFixed,
			CurrentInstallment: current,
			Installments:       root.Installments,
			IsVirtual:          false,
			IsOverride:         true,
			OverrideForDate:    ov.OverrideForDate,
			TagIDs:             ov.TagIDs,
		}, true
	}

	// The root's own status and payment only describe occurrence zero.
	var explicit domain.TransactionStatus
	var paidAt *time.Time
	if i == 0 {
		explicit = root.Status
		paidAt = paidAtFor(root.Status, root.PaidAt)
	}

	return domain.Occurrence{
		ID:                 virtualid.Encode(root.TransactionID, date.Year(), date.Month()),
		RootID:             root.TransactionID,
		Type:               root.Type,
		Amount:             root.Amount,
		Description:        root.Description,
		Notes:              root.Notes,
		CategoryID:         root.CategoryID,
		AccountID:          root.AccountID,
		DueDate:            date,
		Status:             DeriveStatus(explicit, date, now),
		PaidAt:             paidAt,
		IsFixed:            root.IsFixed,
		CurrentInstallment: current,
		Installments:       root.Installments,
		IsVirtual:          true,
		TagIDs:             root.TagIDs,
	}, true
}

func singleOccurrence(root *domain.Transaction, now time.Time) domain.Occurrence {
	return domain.Occurrence{
		ID:          root.TransactionID,
		RootID:      root.TransactionID,
		Type:        root.Type,
		Amount:      root.Amount,
		Description: root.Description,
		Notes:       root.Notes,
		CategoryID:  root.CategoryID,
		AccountID:   root.AccountID,
		DueDate:     root.DueDate,
		Status:      DeriveStatus(root.Status, root.DueDate, now),
		PaidAt:      paidAtFor(root.Status, root.PaidAt),
		TagIDs:      root.TagIDs,
	}
}

func paidAtFor(status domain.TransactionStatus, paidAt *time.Time) *time.Time {
	if status != domain.StatusPaid {
		return nil
	}
	return paidAt
}
