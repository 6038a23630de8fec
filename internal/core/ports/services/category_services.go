package services

import (
	"context"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/dto"
)

// CategorySvcFacade manages the categories of a user.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string, txType *domain.TransactionType) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, userID string, categoryID string) error
}

// TagSvcFacade manages the tags of a user.
type TagSvcFacade interface {
	CreateTag(ctx context.Context, userID string, req dto.CreateTagRequest) (*domain.Tag, error)
	GetTagByID(ctx context.Context, userID string, tagID string) (*domain.Tag, error)
	ListTags(ctx context.Context, userID string) ([]domain.Tag, error)
	DeleteTag(ctx context.Context, userID string, tagID string) error
}
