package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/SscSPs/money_planner/internal/dto"
)

// DefaultCurrencyCode is used for accounts created without a currency.
const DefaultCurrencyCode = "USD"

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	clock       recurrence.Clock
}

// ServiceOption is a functional option for configuring the reference-data services
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	clock recurrence.Clock
}

// WithServiceClock sets the clock used for audit stamps.
func WithServiceClock(c recurrence.Clock) ServiceOption {
	return func(o *serviceOptions) {
		o.clock = c
	}
}

func applyServiceOptions(options []ServiceOption) serviceOptions {
	o := serviceOptions{clock: recurrence.SystemClock}
	for _, option := range options {
		option(&o)
	}
	return o
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	o := applyServiceOptions(options)
	return &accountService{
		accountRepo: repo,
		clock:       o.clock,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	currency := strings.ToUpper(req.CurrencyCode)
	if currency == "" {
		currency = DefaultCurrencyCode
	}

	account := domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		AccountType:  req.AccountType,
		CurrencyCode: currency,
		Description:  req.Description,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(userID, s.clock.Now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err // Propagate error (including NotFound)
	}

	// Accounts of other users are reported as missing.
	if account.UserID != userID {
		s.LogDebug(ctx, "Account requested by another user",
			slog.String("account_id", accountID),
			slog.String("user_id", userID))
		return nil, apperrors.NewNotFoundError("account", accountID)
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of active accounts.
func (s *accountService) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// DeactivateAccount marks an account as inactive.
func (s *accountService) DeactivateAccount(ctx context.Context, userID string, accountID string) error {
	if _, err := s.GetAccountByID(ctx, userID, accountID); err != nil {
		return err
	}

	err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, s.clock.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to deactivate account",
				slog.String("account_id", accountID))
		}
		// Propagate known errors (NotFound, Validation[already inactive]) and unexpected ones
		return err
	}

	s.LogInfo(ctx, "Account deactivated successfully",
		slog.String("account_id", accountID))
	return nil
}
