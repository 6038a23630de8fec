package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/SscSPs/money_planner/internal/dto"
	"github.com/SscSPs/money_planner/internal/utils/dates"
	"github.com/SscSPs/money_planner/internal/utils/pagination"
	"github.com/SscSPs/money_planner/internal/utils/virtualid"
)

// transactionService expands root transactions into occurrences and runs the scoped
// mutations of a series.
type transactionService struct {
	BaseService
	txnRepo       portsrepo.TransactionRepositoryWithTx
	accountRepo   portsrepo.AccountReader
	categoryRepo  portsrepo.CategoryReader
	tagRepo       portsrepo.TagReader
	clock         recurrence.Clock
	planner       *recurrence.Planner
	defaultWindow recurrence.Window
	newID         func() string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithClock sets the clock used for derived statuses and audit stamps.
func WithClock(c recurrence.Clock) TransactionServiceOption {
	return func(s *transactionService) {
		s.clock = c
	}
}

// WithPlanner replaces the mutation planner. By default one is built on the service clock.
func WithPlanner(p *recurrence.Planner) TransactionServiceOption {
	return func(s *transactionService) {
		s.planner = p
	}
}

// WithDefaultWindow sets the range used for open list bounds.
func WithDefaultWindow(w recurrence.Window) TransactionServiceOption {
	return func(s *transactionService) {
		s.defaultWindow = w
	}
}

// WithTransactionIDGenerator sets the id source for new roots.
func WithTransactionIDGenerator(f func() string) TransactionServiceOption {
	return func(s *transactionService) {
		s.newID = f
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryWithTx,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryReader,
	tagRepo portsrepo.TagReader,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:       txnRepo,
		accountRepo:   accountRepo,
		categoryRepo:  categoryRepo,
		tagRepo:       tagRepo,
		clock:         recurrence.SystemClock,
		defaultWindow: recurrence.DefaultWindow(recurrence.DefaultStartYear, recurrence.DefaultEndYear),
		newID:         uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.planner == nil {
		svc.planner = recurrence.NewPlanner(recurrence.WithPlannerClock(svc.clock))
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	due, start, end, err := req.ParsedDates()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := s.clock.Now()
	txn := domain.Transaction{
		TransactionID: s.newID(),
		UserID:        userID,
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   strings.TrimSpace(req.Description),
		Notes:         trimToNil(req.Notes),
		CategoryID:    trimToNil(req.CategoryID),
		AccountID:     trimToNil(req.AccountID),
		DueDate:       due,
		Status:        domain.StatusPending,
		IsFixed:       req.IsFixed,
		Installments:  req.Installments,
		TagIDs:        uniqueStrings(req.TagIDs),
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if req.Status != nil {
		txn.Status = *req.Status
	}
	if txn.Status == domain.StatusPaid {
		paidAt := now
		txn.PaidAt = &paidAt
	}

	if start == nil {
		start = &due
	}
	txn.StartDate = start
	day := start.Day()
	if req.DayOfMonth != nil {
		day = *req.DayOfMonth
	}
	txn.DayOfMonth = &day

	switch txn.Kind() {
	case domain.SeriesInstallment:
		txn.DueDate = recurrence.OccurrenceDate(&txn, 0)
		last := recurrence.OccurrenceDate(&txn, txn.InstallmentCount()-1)
		txn.EndDate = &last
	case domain.SeriesFixed:
		txn.DueDate = recurrence.OccurrenceDate(&txn, 0)
		txn.EndDate = end
	default:
		// A one-off lives on its due date alone.
		txn.StartDate = &due
		dueDay := due.Day()
		txn.DayOfMonth = &dueDay
	}

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.validateReferences(ctx, userID, txn.Type, txn.CategoryID, txn.AccountID, &txn.TagIDs); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind())))
	return &txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID string, id string) (*domain.Occurrence, error) {
	ref, err := s.locate(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	root := ref.root
	if root == nil {
		root, err = s.txnRepo.FindTransactionByID(ctx, userID, ref.rootID)
		if err != nil {
			return nil, s.notFoundOr(ctx, err, id)
		}
		if root.IsOverride {
			return nil, apperrors.NewNotFoundError("transaction", id)
		}
	}

	var overrides []domain.Transaction
	if root.IsSeries() {
		byRoot, err := s.txnRepo.FindOverridesByRootIDs(ctx, []string{root.TransactionID})
		if err != nil {
			s.LogError(ctx, err, "Failed to load overrides", slog.String("root_id", root.TransactionID))
			return nil, err
		}
		overrides = byRoot[root.TransactionID]
	}

	occ, ok := recurrence.Resolve(*root, overrides, ref.year, ref.month, s.clock.Now())
	if !ok {
		return nil, apperrors.NewNotFoundError("occurrence", id)
	}
	return &occ, nil
}

func (s *transactionService) GetRootTransaction(ctx context.Context, userID string, id string) (*domain.Transaction, error) {
	ref, err := s.locate(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if ref.root != nil {
		return ref.root, nil
	}
	root, err := s.txnRepo.FindTransactionByID(ctx, userID, ref.rootID)
	if err != nil {
		return nil, s.notFoundOr(ctx, err, id)
	}
	if root.IsOverride {
		return nil, apperrors.NewNotFoundError("transaction", id)
	}
	return root, nil
}

// ListTransactions loads the roots matching the filters, expands them over the window
// and pages the result by (due date, id). With grouping, installment series are
// summarised on the first page instead of being expanded.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	requested, err := params.Window()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	window := requested.Bounded(s.defaultWindow)
	if window.End.Before(window.Start) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", apperrors.ErrValidation)
	}

	filter := portsrepo.TransactionFilter{
		UserID:     userID,
		CategoryID: params.CategoryID,
		AccountID:  params.AccountID,
		IsFixed:    params.IsFixed,
		From:       &window.Start,
		To:         &window.End,
	}
	if params.Type != "" {
		txType := domain.TransactionType(params.Type)
		filter.Type = &txType
	}

	roots, err := s.txnRepo.ListRootTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list root transactions")
		return nil, err
	}

	seriesIDs := make([]string, 0, len(roots))
	for i := range roots {
		if roots[i].IsSeries() {
			seriesIDs = append(seriesIDs, roots[i].TransactionID)
		}
	}
	overridesByRoot, err := s.txnRepo.FindOverridesByRootIDs(ctx, seriesIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load overrides", slog.Int("roots", len(seriesIDs)))
		return nil, err
	}

	now := s.clock.Now()
	firstPage := params.NextToken == nil || *params.NextToken == ""
	var occurrences []domain.Occurrence
	var groups []domain.InstallmentSummary
	for _, root := range roots {
		overrides := overridesByRoot[root.TransactionID]
		if params.GroupInstallments && root.Kind() == domain.SeriesInstallment {
			if firstPage && intersects(root, overrides, window, now) {
				groups = append(groups, recurrence.Summarize(root, overrides, now))
			}
			continue
		}
		for occ := range recurrence.ExpandWindow(root, overrides, window, now) {
			occurrences = append(occurrences, occ)
		}
	}

	slices.SortFunc(occurrences, func(a, b domain.Occurrence) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	page, nextToken, err := pagination.Page(occurrences, occurrenceKey, params.Limit, params.NextToken)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}

	resp := &dto.ListTransactionsResponse{
		Transactions: dto.ToOccurrenceResponses(page),
		NextToken:    nextToken,
	}
	if params.GroupInstallments {
		slices.SortFunc(groups, func(a, b domain.InstallmentSummary) int {
			if c := a.FirstDueDate.Compare(b.FirstDueDate); c != 0 {
				return c
			}
			return strings.Compare(a.Root.TransactionID, b.Root.TransactionID)
		})
		resp.Installments = make([]dto.InstallmentGroupResponse, len(groups))
		for i := range groups {
			resp.Installments[i] = dto.ToInstallmentGroupResponse(&groups[i])
		}
	}

	s.LogDebug(ctx, "Transactions listed",
		slog.Int("roots", len(roots)),
		slog.Int("occurrences", len(occurrences)),
		slog.Int("page", len(page)),
		slog.Int("groups", len(groups)))
	return resp, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, id string, scope recurrence.Scope, req dto.UpdateTransactionRequest) (*domain.Occurrence, error) {
	fields, err := req.ToEditFields()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if fields.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", apperrors.ErrValidation)
	}
	if fields.TagIDs != nil {
		tags := uniqueStrings(*fields.TagIDs)
		fields.TagIDs = &tags
	}

	occ, err := s.mutate(ctx, userID, id, "edit", func(root domain.Transaction, overrides []domain.Transaction, target recurrence.Target) (recurrence.Plan, error) {
		if err := s.validateReferences(ctx, userID, root.Type, nonEmpty(fields.CategoryID), nonEmpty(fields.AccountID), fields.TagIDs); err != nil {
			return recurrence.Plan{}, err
		}
		return s.planner.Edit(root, overrides, target, scope, fields)
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transaction updated", slog.String("id", id), slog.String("scope", string(scope)))
	return occ, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, id string, scope recurrence.Scope) error {
	_, err := s.mutate(ctx, userID, id, "delete", func(root domain.Transaction, overrides []domain.Transaction, target recurrence.Target) (recurrence.Plan, error) {
		return s.planner.Delete(root, overrides, target, scope)
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("id", id), slog.String("scope", string(scope)))
	return nil
}

func (s *transactionService) SetPaid(ctx context.Context, userID string, id string, paid bool) (*domain.Occurrence, error) {
	status := domain.StatusPending
	if paid {
		status = domain.StatusPaid
	}
	fields := recurrence.EditFields{Status: &status}
	return s.mutate(ctx, userID, id, "set_paid", func(root domain.Transaction, overrides []domain.Transaction, target recurrence.Target) (recurrence.Plan, error) {
		return s.planner.Edit(root, overrides, target, recurrence.ScopeSingle, fields)
	})
}

func (s *transactionService) RestoreOccurrence(ctx context.Context, userID string, id string) (*domain.Occurrence, error) {
	return s.mutate(ctx, userID, id, "restore", func(root domain.Transaction, _ []domain.Transaction, target recurrence.Target) (recurrence.Plan, error) {
		return s.planner.Restore(root, target)
	})
}

// occurrenceRef names one occurrence of a root. root is set when locating already
// loaded it.
type occurrenceRef struct {
	rootID string
	year   int
	month  time.Month
	root   *domain.Transaction
}

// locate maps a real or virtual id onto its root and month. A series root's own id
// names its first occurrence; an override's id names the month it replaces.
func (s *transactionService) locate(ctx context.Context, userID string, id string) (occurrenceRef, error) {
	if v, ok := virtualid.Decode(id); ok {
		return occurrenceRef{rootID: v.RootID, year: v.Year, month: v.Month}, nil
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, id)
	if err != nil {
		return occurrenceRef{}, s.notFoundOr(ctx, err, id)
	}
	switch {
	case txn.IsOverride:
		if txn.ParentTransactionID == nil || txn.OverrideForDate == nil {
			return occurrenceRef{}, apperrors.NewNotFoundError("transaction", id)
		}
		return occurrenceRef{rootID: *txn.ParentTransactionID, year: txn.OverrideForDate.Year(), month: txn.OverrideForDate.Month()}, nil
	case txn.IsSeries():
		first := recurrence.OccurrenceDate(txn, 0)
		return occurrenceRef{rootID: txn.TransactionID, year: first.Year(), month: first.Month(), root: txn}, nil
	default:
		return occurrenceRef{rootID: txn.TransactionID, year: txn.DueDate.Year(), month: txn.DueDate.Month(), root: txn}, nil
	}
}

type planFunc func(root domain.Transaction, overrides []domain.Transaction, target recurrence.Target) (recurrence.Plan, error)

// mutate runs one scoped mutation inside a database transaction: the root row is locked,
// the plan is computed from the locked state and written, and the targeted occurrence is
// read back before commit. The returned occurrence is nil when it no longer exists.
func (s *transactionService) mutate(ctx context.Context, userID string, id string, op string, plan planFunc) (*domain.Occurrence, error) {
	ref, err := s.locate(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction", slog.String("op", op))
		return nil, err
	}
	defer func() {
		if rbErr := s.txnRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back transaction", slog.String("op", op))
		}
	}()

	root, err := s.txnRepo.FindRootForUpdate(ctx, tx, userID, ref.rootID)
	if err != nil {
		return nil, s.notFoundOr(ctx, err, id)
	}
	overrides, err := s.txnRepo.FindOverridesByRootIDInTx(ctx, tx, root.TransactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load overrides", slog.String("root_id", root.TransactionID))
		return nil, err
	}

	target, err := recurrence.ResolveTarget(root, overrides, ref.year, ref.month)
	if err != nil {
		return nil, err
	}
	p, err := plan(*root, overrides, target)
	if err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Applying mutation plan", slog.String("op", op), slog.Any("plan", p))
	if !p.IsNoop() {
		if err := s.txnRepo.ApplyPlanInTx(ctx, tx, p); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return nil, fmt.Errorf("%w: occurrence of %s was changed by another request", apperrors.ErrConflict, root.TransactionID)
			}
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			s.LogError(ctx, err, "Failed to apply mutation plan", slog.String("op", op), slog.Any("plan", p))
			return nil, err
		}
	}

	var occ *domain.Occurrence
	if !p.DeleteRoot {
		occ, err = s.readBack(ctx, tx, userID, root.TransactionID, target)
		if err != nil {
			return nil, err
		}
	}

	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transaction", slog.String("op", op))
		return nil, err
	}
	return occ, nil
}

// readBack resolves the targeted occurrence from the state written by the plan.
func (s *transactionService) readBack(ctx context.Context, tx pgx.Tx, userID, rootID string, target recurrence.Target) (*domain.Occurrence, error) {
	root, err := s.txnRepo.FindRootForUpdate(ctx, tx, userID, rootID)
	if err != nil {
		return nil, err
	}
	overrides, err := s.txnRepo.FindOverridesByRootIDInTx(ctx, tx, rootID)
	if err != nil {
		return nil, err
	}

	date := root.DueDate
	if root.IsSeries() {
		date = recurrence.OccurrenceDate(root, target.Index)
	}
	occ, ok := recurrence.Resolve(*root, overrides, date.Year(), date.Month(), s.clock.Now())
	if !ok {
		return nil, nil
	}
	return &occ, nil
}

// validateReferences checks that the category, account and tags exist and belong to
// userID. Foreign or unknown references are validation failures.
func (s *transactionService) validateReferences(ctx context.Context, userID string, txType domain.TransactionType, categoryID, accountID *string, tagIDs *[]string) error {
	if categoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *categoryID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if err != nil || category.UserID != userID {
			return fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, *categoryID)
		}
		if category.Type != txType {
			return fmt.Errorf("%w: category %s is for %s transactions", apperrors.ErrValidation, *categoryID, category.Type)
		}
	}

	if accountID != nil {
		account, err := s.accountRepo.FindAccountByID(ctx, *accountID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if err != nil || account.UserID != userID {
			return fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, *accountID)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, *accountID)
		}
	}

	if tagIDs != nil && len(*tagIDs) > 0 {
		tags, err := s.tagRepo.FindTagsByIDs(ctx, *tagIDs)
		if err != nil {
			return err
		}
		for _, tagID := range *tagIDs {
			if tag, ok := tags[tagID]; !ok || tag.UserID != userID {
				return fmt.Errorf("%w: tag %s not found", apperrors.ErrValidation, tagID)
			}
		}
	}
	return nil
}

// notFoundOr logs unexpected repository errors and turns ErrNotFound into a NotFound
// AppError naming id.
func (s *transactionService) notFoundOr(ctx context.Context, err error, id string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("transaction", id)
	}
	s.LogError(ctx, err, "Failed to load transaction", slog.String("id", id))
	return err
}

// intersects reports whether any occurrence of root falls in the window.
func intersects(root domain.Transaction, overrides []domain.Transaction, w recurrence.Window, now time.Time) bool {
	for range recurrence.ExpandWindow(root, overrides, w, now) {
		return true
	}
	return false
}

func occurrenceKey(o domain.Occurrence) pagination.Key {
	return pagination.Key{DueDate: dates.DateOnly(o.DueDate), ID: o.ID}
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// nonEmpty drops references that clear a value; there is nothing to validate for them.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
