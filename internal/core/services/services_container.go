package services

import (
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/SscSPs/money_planner/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Tag = NewTagService(repos.TagRepo)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.AccountRepo,
		repos.CategoryRepo,
		repos.TagRepo,
		WithDefaultWindow(recurrence.DefaultWindow(cfg.DefaultRangeStartYear, cfg.DefaultRangeEndYear)),
	)

	return container
}
