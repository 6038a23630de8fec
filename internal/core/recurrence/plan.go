package recurrence

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/utils/dates"
	"github.com/SscSPs/money_planner/internal/utils/virtualid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scope selects how much of a series an edit or delete touches.
type Scope string

const (
	ScopeSingle Scope = "single"
	ScopeFuture Scope = "future"
	ScopeAll    Scope = "all"
)

// Valid reports whether s is one of the known scopes.
func (s Scope) Valid() bool {
	switch s {
	case ScopeSingle, ScopeFuture, ScopeAll:
		return true
	}
	return false
}

// ParseScope maps the request value to a Scope; an empty value means single.
func ParseScope(s string) (Scope, error) {
	if s == "" {
		return ScopeSingle, nil
	}
	scope := Scope(s)
	if !scope.Valid() {
		return "", invalidScope(scope)
	}
	return scope, nil
}

func invalidScope(s Scope) error {
	return fmt.Errorf("%w: scope must be single, future or all, got %q", apperrors.ErrValidation, string(s))
}

// EditFields carries the edited values of a mutation. A nil field is left untouched.
// An empty CategoryID, AccountID or Notes clears the reference.
type EditFields struct {
	DueDate     *time.Time
	Amount      *decimal.Decimal
	Description *string
	Status      *domain.TransactionStatus
	CategoryID  *string
	AccountID   *string
	Notes       *string
	TagIDs      *[]string
}

// IsEmpty reports whether no field is set.
func (f EditFields) IsEmpty() bool {
	return f.DueDate == nil && f.Amount == nil && f.Description == nil && f.Status == nil &&
		f.CategoryID == nil && f.AccountID == nil && f.Notes == nil && f.TagIDs == nil
}

func (f EditFields) applyCommon(t *domain.Transaction, now time.Time) {
	if f.Amount != nil {
		t.Amount = *f.Amount
	}
	if f.Description != nil {
		t.Description = *f.Description
	}
	if f.Notes != nil {
		t.Notes = emptyToNil(*f.Notes)
	}
	if f.CategoryID != nil {
		t.CategoryID = emptyToNil(*f.CategoryID)
	}
	if f.AccountID != nil {
		t.AccountID = emptyToNil(*f.AccountID)
	}
	if f.TagIDs != nil {
		t.TagIDs = slices.Clone(*f.TagIDs)
	}
	if f.Status != nil {
		setStatus(t, *f.Status, now)
	}
}

// applyToOverride edits one occurrence. A new due date moves the displayed date only;
// OverrideForDate stays the matching key.
func (f EditFields) applyToOverride(ov *domain.Transaction, now time.Time) {
	f.applyCommon(ov, now)
	if f.DueDate != nil {
		ov.DueDate = dates.DateOnly(*f.DueDate)
	}
}

// applyToRoot edits series-wide values. A new due date changes the billing day of
// the series; its month is ignored.
func (f EditFields) applyToRoot(root *domain.Transaction, now time.Time) {
	f.applyCommon(root, now)
	if f.DueDate == nil {
		return
	}
	due := dates.DateOnly(*f.DueDate)
	if !root.IsSeries() {
		day := due.Day()
		root.DueDate = due
		root.StartDate = &due
		root.DayOfMonth = &day
		return
	}
	rebaseDay(root, due.Day())
}

// rebaseDay moves every occurrence of the series to day, keeping its months.
func rebaseDay(root *domain.Transaction, day int) {
	root.DayOfMonth = &day
	first := OccurrenceDate(root, 0)
	root.DueDate = first
	root.StartDate = &first
	switch root.Kind() {
	case domain.SeriesInstallment:
		end := OccurrenceDate(root, root.InstallmentCount()-1)
		root.EndDate = &end
	case domain.SeriesFixed:
		if root.EndDate != nil {
			end := dates.ClampedDate(root.EndDate.Year(), root.EndDate.Month(), day)
			root.EndDate = &end
		}
	}
}

func setStatus(t *domain.Transaction, status domain.TransactionStatus, now time.Time) {
	t.Status = status
	if status != domain.StatusPaid {
		t.PaidAt = nil
		return
	}
	if t.PaidAt == nil {
		paidAt := now
		t.PaidAt = &paidAt
	}
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Target is the occurrence a mutation is aimed at.
type Target struct {
	Index    int
	Date     time.Time // canonical occurrence date
	Override *domain.Transaction
}

// MonthKey is the cancellation marker of the target's month.
func (t Target) MonthKey() string {
	return dates.MonthKey(t.Date)
}

// ResolveTarget locates the occurrence of root in (year, month). It fails with
// ErrNotFound when the month is not part of the series.
func ResolveTarget(root *domain.Transaction, overrides []domain.Transaction, year int, month time.Month) (Target, error) {
	idx, ok := IndexOf(root, year, month)
	if !ok {
		return Target{}, apperrors.NewNotFoundError("occurrence", virtualid.Encode(root.TransactionID, year, month))
	}
	if !root.IsSeries() {
		return Target{Index: 0, Date: root.DueDate}, nil
	}
	t := Target{Index: idx, Date: OccurrenceDate(root, idx)}
	if ov, found := indexOverrides(overrides)[t.MonthKey()]; found {
		t.Override = ov
	}
	return t, nil
}

// Plan is the set of writes that carries out one mutation. It is applied atomically.
type Plan struct {
	Root              domain.Transaction
	RootChanged       bool
	DeleteRoot        bool
	CreateOverrides   []domain.Transaction
	UpdateOverrides   []domain.Transaction
	DeleteOverrideIDs []string
}

// IsNoop reports whether applying the plan would write nothing.
func (p Plan) IsNoop() bool {
	return !p.RootChanged && !p.DeleteRoot && len(p.CreateOverrides) == 0 &&
		len(p.UpdateOverrides) == 0 && len(p.DeleteOverrideIDs) == 0
}

func (p Plan) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("root_id", p.Root.TransactionID),
		slog.Bool("root_changed", p.RootChanged),
		slog.Bool("delete_root", p.DeleteRoot),
		slog.Int("create_overrides", len(p.CreateOverrides)),
		slog.Int("update_overrides", len(p.UpdateOverrides)),
		slog.Int("delete_overrides", len(p.DeleteOverrideIDs)),
	)
}

// Planner computes mutation plans for a root and its overrides.
type Planner struct {
	clock Clock
	newID func() string
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithPlannerClock sets the clock used for statuses and audit stamps.
func WithPlannerClock(c Clock) PlannerOption {
	return func(p *Planner) {
		p.clock = c
	}
}

// WithIDGenerator sets the id source for new overrides.
func WithIDGenerator(f func() string) PlannerOption {
	return func(p *Planner) {
		p.newID = f
	}
}

// NewPlanner creates a Planner using the system clock and random UUIDs by default.
func NewPlanner(opts ...PlannerOption) *Planner {
	p := &Planner{
		clock: SystemClock,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Edit plans an edit of target with the given scope.
//
//   - single rewrites (or creates) the override of that one occurrence.
//   - future freezes every earlier, untouched occurrence in a preserving override,
//     applies the edit to the root and drops overrides from the target month on.
//     From the first occurrence it is the same as all.
//   - all applies the edit to the root and drops every override.
//
// A one-off transaction is always edited in place. On a series, status only describes
// one occurrence, so a status change with scope future or all is rejected.
func (p *Planner) Edit(root domain.Transaction, overrides []domain.Transaction, target Target, scope Scope, fields EditFields) (Plan, error) {
	if !scope.Valid() {
		return Plan{}, invalidScope(scope)
	}
	now := p.clock.Now()
	if !root.IsSeries() {
		return p.editRoot(root, nil, fields, now)
	}
	if fields.Status != nil && scope != ScopeSingle {
		return Plan{}, fmt.Errorf("%w: status can only be changed with scope single", apperrors.ErrValidation)
	}

	switch scope {
	case ScopeSingle:
		return p.editSingle(root, target, fields, now)
	case ScopeFuture:
		if target.Index <= 0 {
			return p.editRoot(root, overrides, fields, now)
		}
		return p.editFuture(root, overrides, target, fields, now)
	default:
		return p.editRoot(root, overrides, fields, now)
	}
}

func (p *Planner) editSingle(root domain.Transaction, target Target, fields EditFields, now time.Time) (Plan, error) {
	if root.IsCancelled(target.MonthKey()) {
		return Plan{}, apperrors.NewNotFoundError("occurrence", virtualid.Encode(root.TransactionID, target.Date.Year(), target.Date.Month()))
	}

	plan := Plan{Root: root}
	if target.Override != nil {
		ov := target.Override.Clone()
		fields.applyToOverride(&ov, now)
		ov.Touch(root.UserID, now)
		if err := validate(&ov); err != nil {
			return Plan{}, err
		}
		plan.UpdateOverrides = []domain.Transaction{ov}
		return plan, nil
	}

	ov := p.newOverride(&root, target.Index, now)
	fields.applyToOverride(&ov, now)
	if err := validate(&ov); err != nil {
		return Plan{}, err
	}
	plan.CreateOverrides = []domain.Transaction{ov}
	return plan, nil
}

func (p *Planner) editFuture(root domain.Transaction, overrides []domain.Transaction, target Target, fields EditFields, now time.Time) (Plan, error) {
	byMonth := indexOverrides(overrides)

	var preserved []domain.Transaction
	for i := 0; i < target.Index; i++ {
		key := dates.MonthKey(OccurrenceDate(&root, i))
		if root.IsCancelled(key) {
			continue
		}
		if _, found := byMonth[key]; found {
			continue
		}
		preserved = append(preserved, p.newOverride(&root, i, now))
	}

	plan, err := p.editRoot(root, nil, fields, now)
	if err != nil {
		return Plan{}, err
	}
	plan.CreateOverrides = preserved
	plan.DeleteOverrideIDs = overridesFrom(&root, overrides, target.Index)
	return plan, nil
}

// editRoot applies fields to the root and deletes the given overrides.
func (p *Planner) editRoot(root domain.Transaction, drop []domain.Transaction, fields EditFields, now time.Time) (Plan, error) {
	next := root.Clone()
	fields.applyToRoot(&next, now)
	next.Touch(root.UserID, now)
	if err := validate(&next); err != nil {
		return Plan{}, err
	}
	plan := Plan{Root: next, RootChanged: true}
	for _, ov := range drop {
		plan.DeleteOverrideIDs = append(plan.DeleteOverrideIDs, ov.TransactionID)
	}
	return plan, nil
}

// Delete plans a delete of target with the given scope.
//
//   - single drops the occurrence's override and cancels its month.
//   - future truncates the series before the target month; from the first
//     occurrence it is the same as all.
//   - all deletes the root and every override.
//
// A one-off transaction is always deleted outright.
func (p *Planner) Delete(root domain.Transaction, overrides []domain.Transaction, target Target, scope Scope) (Plan, error) {
	if !scope.Valid() {
		return Plan{}, invalidScope(scope)
	}
	if !root.IsSeries() {
		return deleteAll(root, overrides), nil
	}
	now := p.clock.Now()

	switch scope {
	case ScopeSingle:
		return deleteSingle(root, target, now), nil
	case ScopeFuture:
		if target.Index <= 0 {
			return deleteAll(root, overrides), nil
		}
		return deleteFuture(root, overrides, target, now), nil
	default:
		return deleteAll(root, overrides), nil
	}
}

func deleteSingle(root domain.Transaction, target Target, now time.Time) Plan {
	plan := Plan{Root: root.Clone()}
	if target.Override != nil {
		plan.DeleteOverrideIDs = []string{target.Override.TransactionID}
	}
	if plan.Root.Cancel(target.MonthKey()) {
		plan.Root.Touch(root.UserID, now)
		plan.RootChanged = true
	}
	return plan
}

func deleteFuture(root domain.Transaction, overrides []domain.Transaction, target Target, now time.Time) Plan {
	next := root.Clone()
	next.CancelledOccurrences = slices.DeleteFunc(next.CancelledOccurrences, func(key string) bool {
		y, m, err := dates.ParseMonthKey(key)
		return err == nil && dates.MonthsBetween(root.SeriesStart(), time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)) >= target.Index
	})
	plan := Plan{DeleteOverrideIDs: overridesFrom(&root, overrides, target.Index)}

	switch root.Kind() {
	case domain.SeriesInstallment:
		if target.Index == 1 {
			// Only the first installment survives: the root becomes a one-off.
			firstKey := dates.MonthKey(OccurrenceDate(&root, 0))
			if root.IsCancelled(firstKey) {
				return deleteAll(root, overrides)
			}
			one := 1
			next.Installments = &one
			next.EndDate = nil
			next.CancelledOccurrences = nil
			if ov, found := indexOverrides(overrides)[firstKey]; found {
				foldOverride(&next, ov)
				plan.DeleteOverrideIDs = append(plan.DeleteOverrideIDs, ov.TransactionID)
			}
			break
		}
		n := target.Index
		next.Installments = &n
		end := OccurrenceDate(&next, n-1)
		next.EndDate = &end
	case domain.SeriesFixed:
		end := OccurrenceDate(&root, target.Index-1)
		next.EndDate = &end
	}

	next.Touch(root.UserID, now)
	plan.Root = next
	plan.RootChanged = true
	return plan
}

func deleteAll(root domain.Transaction, overrides []domain.Transaction) Plan {
	plan := Plan{Root: root, DeleteRoot: true}
	for _, ov := range overrides {
		plan.DeleteOverrideIDs = append(plan.DeleteOverrideIDs, ov.TransactionID)
	}
	return plan
}

// Restore plans the removal of target's month from the cancelled set. Restoring a
// month that is not cancelled yields a no-op plan.
func (p *Planner) Restore(root domain.Transaction, target Target) (Plan, error) {
	if !root.IsSeries() {
		return Plan{}, fmt.Errorf("%w: only recurring transactions have cancelled occurrences", apperrors.ErrValidation)
	}
	plan := Plan{Root: root.Clone()}
	if plan.Root.Restore(target.MonthKey()) {
		plan.Root.Touch(root.UserID, p.clock.Now())
		plan.RootChanged = true
	}
	return plan, nil
}

// newOverride copies root's current values into an override for occurrence i.
func (p *Planner) newOverride(root *domain.Transaction, i int, now time.Time) domain.Transaction {
	date := OccurrenceDate(root, i)
	parentID := root.TransactionID

	ov := root.Clone()
	ov.TransactionID = p.newID()
	ov.IsOverride = true
	ov.ParentTransactionID = &parentID
	ov.OverrideForDate = &date
	ov.DueDate = date
	ov.StartDate = nil
	ov.DayOfMonth = nil
	ov.IsFixed = false
	ov.Installments = nil
	ov.EndDate = nil
	ov.CancelledOccurrences = nil
	ov.AuditFields = domain.NewAuditFields(root.UserID, now)

	var explicit domain.TransactionStatus
	var paidAt *time.Time
	if i == 0 {
		explicit = root.Status
		paidAt = root.PaidAt
	}
	ov.Status = DeriveStatus(explicit, date, now)
	ov.PaidAt = paidAtFor(ov.Status, paidAt)
	return ov
}

// foldOverride copies an override's per-occurrence values onto root.
func foldOverride(root *domain.Transaction, ov *domain.Transaction) {
	root.Amount = ov.Amount
	root.Description = ov.Description
	root.Notes = ov.Notes
	root.CategoryID = ov.CategoryID
	root.AccountID = ov.AccountID
	root.DueDate = ov.DueDate
	root.Status = ov.Status
	root.PaidAt = ov.PaidAt
	root.TagIDs = slices.Clone(ov.TagIDs)
}

// overridesFrom returns the ids of overrides whose occurrence index is >= from.
func overridesFrom(root *domain.Transaction, overrides []domain.Transaction, from int) []string {
	var ids []string
	start := root.SeriesStart()
	for _, ov := range overrides {
		if ov.OverrideForDate == nil {
			continue
		}
		if dates.MonthsBetween(start, *ov.OverrideForDate) >= from {
			ids = append(ids, ov.TransactionID)
		}
	}
	return ids
}

func validate(t *domain.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
