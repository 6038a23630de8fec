package services

import (
	"context"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/SscSPs/money_planner/internal/dto"
)

// TransactionReaderSvc defines read operations over transactions and their occurrences.
type TransactionReaderSvc interface {
	// GetTransaction resolves a real or virtual id to the occurrence it names.
	GetTransaction(ctx context.Context, userID string, id string) (*domain.Occurrence, error)

	// GetRootTransaction returns the root record behind a real or virtual id.
	GetRootTransaction(ctx context.Context, userID string, id string) (*domain.Transaction, error)

	// ListTransactions expands every matching root over the requested window.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines the mutations of transactions and their occurrences.
// id may be a real id (root or override) or a virtual id.
type TransactionWriterSvc interface {
	// CreateTransaction persists a new one-off, installment or fixed root.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction edits the occurrence named by id with the given scope. It returns
	// the occurrence as it reads after the edit.
	UpdateTransaction(ctx context.Context, userID string, id string, scope recurrence.Scope, req dto.UpdateTransactionRequest) (*domain.Occurrence, error)

	// DeleteTransaction deletes the occurrence named by id with the given scope.
	DeleteTransaction(ctx context.Context, userID string, id string, scope recurrence.Scope) error

	// SetPaid marks a single occurrence paid or unpaid.
	SetPaid(ctx context.Context, userID string, id string, paid bool) (*domain.Occurrence, error)

	// RestoreOccurrence undoes a single-scope delete of the occurrence named by id.
	RestoreOccurrence(ctx context.Context, userID string, id string) (*domain.Occurrence, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
