package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/jackc/pgx/v5"
)

// TransactionFilter narrows the roots loaded for expansion. Nil fields are ignored.
// From/To drop roots whose whole series lies outside the window.
type TransactionFilter struct {
	UserID     string
	Type       *domain.TransactionType
	CategoryID *string
	AccountID  *string
	IsFixed    *bool
	From       *time.Time
	To         *time.Time
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a root or override owned by userID.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListRootTransactions retrieves every root matching the filter.
	ListRootTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// FindOverridesByRootIDs retrieves the overrides of the given roots, grouped by root id.
	FindOverridesByRootIDs(ctx context.Context, rootIDs []string) (map[string][]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new root together with its tag associations.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionSeriesSupport defines the operations a scoped mutation runs inside one
// database transaction.
type TransactionSeriesSupport interface {
	// FindRootForUpdate selects a root owned by userID and locks its row.
	FindRootForUpdate(ctx context.Context, tx pgx.Tx, userID, rootID string) (*domain.Transaction, error)

	// FindOverridesByRootIDInTx retrieves the overrides of a locked root.
	FindOverridesByRootIDInTx(ctx context.Context, tx pgx.Tx, rootID string) ([]domain.Transaction, error)

	// ApplyPlanInTx writes a mutation plan, tags included.
	ApplyPlanInTx(ctx context.Context, tx pgx.Tx, plan recurrence.Plan) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionSeriesSupport
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
