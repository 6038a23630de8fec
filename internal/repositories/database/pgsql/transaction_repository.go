package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const transactionColumns = `
	transaction_id, user_id, transaction_type, amount, description, notes, category_id, account_id,
	due_date, status, paid_at, start_date, day_of_month, is_fixed, installments, end_date,
	cancelled_occurrences, is_override, parent_transaction_id, override_for_date,
	created_at, created_by, last_updated_at, last_updated_by`

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);`

const updateTransactionQuery = `
	UPDATE transactions
	SET transaction_type = $2, amount = $3, description = $4, notes = $5, category_id = $6, account_id = $7,
		due_date = $8, status = $9, paid_at = $10, start_date = $11, day_of_month = $12, is_fixed = $13,
		installments = $14, end_date = $15, cancelled_occurrences = $16,
		last_updated_at = $17, last_updated_by = $18
	WHERE transaction_id = $1;`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for roots, overrides and their tags.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// FindTransactionByID retrieves a root or an override owned by userID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return r.withTags(ctx, r.Pool, m)
}

// ListRootTransactions retrieves the roots matching the filter, ordered by due date.
func (r *PgxTransactionRepository) ListRootTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	conds := []string{"user_id = $1", "NOT is_override"}
	args := []any{filter.UserID}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Type != nil {
		add("transaction_type = $%d", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		add("category_id = $%d", *filter.CategoryID)
	}
	if filter.AccountID != nil {
		add("account_id = $%d", *filter.AccountID)
	}
	if filter.IsFixed != nil {
		add("is_fixed = $%d", *filter.IsFixed)
	}
	if filter.To != nil {
		// A series starts at start_date; a one-off lives on its due date.
		add(`(CASE WHEN is_fixed OR COALESCE(installments, 1) > 1
			THEN COALESCE(start_date, due_date) ELSE due_date END) <= $%d`, *filter.To)
	}
	if filter.From != nil {
		add(`((end_date IS NULL AND (is_fixed OR COALESCE(installments, 1) > 1))
			OR COALESCE(end_date, due_date) >= $%d)`, *filter.From)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY due_date, transaction_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query root transactions for user %s: %w", filter.UserID, err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	return r.withTagsSlice(ctx, r.Pool, ms)
}

// FindOverridesByRootIDs retrieves the overrides of the given roots, grouped by root id.
func (r *PgxTransactionRepository) FindOverridesByRootIDs(ctx context.Context, rootIDs []string) (map[string][]domain.Transaction, error) {
	result := make(map[string][]domain.Transaction)
	if len(rootIDs) == 0 {
		return result, nil
	}
	overrides, err := r.findOverrides(ctx, r.Pool, rootIDs)
	if err != nil {
		return nil, err
	}
	for _, ov := range overrides {
		parent := *ov.ParentTransactionID
		result[parent] = append(result[parent], ov)
	}
	return result, nil
}

// SaveTransaction inserts a new root and its tag associations in one transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if err := insertTransactions(ctx, tx, []domain.Transaction{txn}); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindRootForUpdate selects a root owned by userID and locks its row until tx ends.
func (r *PgxTransactionRepository) FindRootForUpdate(ctx context.Context, tx pgx.Tx, userID, rootID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2 AND NOT is_override
		FOR UPDATE;`
	m, err := scanTransaction(tx.QueryRow(ctx, query, rootID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock root transaction %s: %w", rootID, err)
	}
	return r.withTags(ctx, tx, m)
}

// FindOverridesByRootIDInTx retrieves the overrides of a root inside tx.
func (r *PgxTransactionRepository) FindOverridesByRootIDInTx(ctx context.Context, tx pgx.Tx, rootID string) ([]domain.Transaction, error) {
	return r.findOverrides(ctx, tx, []string{rootID})
}

// ApplyPlanInTx writes a mutation plan. Deletes run first so that re-created overrides
// never collide with the ones they replace.
func (r *PgxTransactionRepository) ApplyPlanInTx(ctx context.Context, tx pgx.Tx, plan recurrence.Plan) error {
	if plan.DeleteRoot {
		return deleteSeries(ctx, tx, plan.Root.TransactionID)
	}

	if len(plan.DeleteOverrideIDs) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM transaction_tags WHERE transaction_id = ANY($1);`, plan.DeleteOverrideIDs); err != nil {
			return fmt.Errorf("failed to delete override tags: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = ANY($1) AND is_override;`, plan.DeleteOverrideIDs); err != nil {
			return fmt.Errorf("failed to delete overrides: %w", err)
		}
	}

	if plan.RootChanged {
		if err := updateTransaction(ctx, tx, plan.Root); err != nil {
			return err
		}
	}
	for _, ov := range plan.UpdateOverrides {
		if err := updateTransaction(ctx, tx, ov); err != nil {
			return err
		}
	}
	return insertTransactions(ctx, tx, plan.CreateOverrides)
}

// deleteSeries removes a root, its overrides and every tag association of both.
func deleteSeries(ctx context.Context, tx pgx.Tx, rootID string) error {
	tagQuery := `
		DELETE FROM transaction_tags
		WHERE transaction_id = $1
		   OR transaction_id IN (SELECT transaction_id FROM transactions WHERE parent_transaction_id = $1);`
	if _, err := tx.Exec(ctx, tagQuery, rootID); err != nil {
		return fmt.Errorf("failed to delete tags of series %s: %w", rootID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE parent_transaction_id = $1;`, rootID); err != nil {
		return fmt.Errorf("failed to delete overrides of series %s: %w", rootID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, rootID)
	if err != nil {
		return fmt.Errorf("failed to delete root transaction %s: %w", rootID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func updateTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	tag, err := tx.Exec(ctx, updateTransactionQuery,
		m.TransactionID,
		m.TransactionType,
		m.Amount,
		m.Description,
		m.Notes,
		m.CategoryID,
		m.AccountID,
		m.DueDate,
		m.Status,
		m.PaidAt,
		m.StartDate,
		m.DayOfMonth,
		m.IsFixed,
		m.Installments,
		m.EndDate,
		m.CancelledOccurrences,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
	}
	return replaceTags(ctx, tx, txn.TransactionID, txn.TagIDs)
}

// insertTransactions queues every row and its tags in one batch.
func insertTransactions(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(insertTransactionQuery,
			m.TransactionID,
			m.UserID,
			m.TransactionType,
			m.Amount,
			m.Description,
			m.Notes,
			m.CategoryID,
			m.AccountID,
			m.DueDate,
			m.Status,
			m.PaidAt,
			m.StartDate,
			m.DayOfMonth,
			m.IsFixed,
			m.Installments,
			m.EndDate,
			m.CancelledOccurrences,
			m.IsOverride,
			m.ParentTransactionID,
			m.OverrideForDate,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		for _, tagID := range txn.TagIDs {
			batch.Queue(`INSERT INTO transaction_tags (transaction_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`, txn.TransactionID, tagID)
		}
	}

	br := tx.SendBatch(ctx, batch)
	err := br.Close() // Close reports the first failing statement
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.Detail)
		}
		return fmt.Errorf("failed to insert transactions: %w", err)
	}
	return nil
}

func replaceTags(ctx context.Context, tx pgx.Tx, transactionID string, tagIDs []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM transaction_tags WHERE transaction_id = $1;`, transactionID); err != nil {
		return fmt.Errorf("failed to clear tags of %s: %w", transactionID, err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO transaction_tags (transaction_id, tag_id)
		SELECT $1, unnest($2::text[])
		ON CONFLICT DO NOTHING;`
	if _, err := tx.Exec(ctx, query, transactionID, tagIDs); err != nil {
		return fmt.Errorf("failed to write tags of %s: %w", transactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) findOverrides(ctx context.Context, q querier, rootIDs []string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE parent_transaction_id = ANY($1) AND is_override
		ORDER BY override_for_date, transaction_id;`
	rows, err := q.Query(ctx, query, rootIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	return r.withTagsSlice(ctx, q, ms)
}

func (r *PgxTransactionRepository) withTags(ctx context.Context, q querier, m models.Transaction) (*domain.Transaction, error) {
	tags, err := loadTagIDs(ctx, q, []string{m.TransactionID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransaction(m, tags[m.TransactionID])
	return &d, nil
}

func (r *PgxTransactionRepository) withTagsSlice(ctx context.Context, q querier, ms []models.Transaction) ([]domain.Transaction, error) {
	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.TransactionID
	}
	tags, err := loadTagIDs(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainTransaction(m, tags[m.TransactionID])
	}
	return out, nil
}

func loadTagIDs(ctx context.Context, q querier, transactionIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(transactionIDs))
	if len(transactionIDs) == 0 {
		return result, nil
	}
	rows, err := q.Query(ctx, `
		SELECT transaction_id, tag_id
		FROM transaction_tags
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, tag_id;`, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var link models.TransactionTag
		if err := rows.Scan(&link.TransactionID, &link.TagID); err != nil {
			return nil, fmt.Errorf("failed to scan transaction tag row: %w", err)
		}
		result[link.TransactionID] = append(result[link.TransactionID], link.TagID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction tag rows: %w", err)
	}
	return result, nil
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.TransactionType,
		&m.Amount,
		&m.Description,
		&m.Notes,
		&m.CategoryID,
		&m.AccountID,
		&m.DueDate,
		&m.Status,
		&m.PaidAt,
		&m.StartDate,
		&m.DayOfMonth,
		&m.IsFixed,
		&m.Installments,
		&m.EndDate,
		&m.CancelledOccurrences,
		&m.IsOverride,
		&m.ParentTransactionID,
		&m.OverrideForDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()
	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return ms, nil
}
