package services

import (
	"context"
	"errors"
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

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	clock        recurrence.Clock
}

// NewCategoryService creates a new category service with the provided options
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, options ...ServiceOption) portssvc.CategorySvcFacade {
	o := applyServiceOptions(options)
	return &categoryService{categoryRepo: repo, clock: o.clock}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		Color:       req.Color,
		Icon:        req.Icon,
		AuditFields: domain.NewAuditFields(userID, s.clock.Now()),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Category created successfully", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	if category.UserID != userID {
		return nil, apperrors.NewNotFoundError("category", categoryID)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string, txType *domain.TransactionType) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, userID, txType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	return categories, nil
}

// DeleteCategory removes a category. Transactions using it keep existing without one.
func (s *categoryService) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	if _, err := s.GetCategoryByID(ctx, userID, categoryID); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		}
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
