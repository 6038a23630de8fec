package repositories

import (
	"context"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories lists the categories of userID, optionally of one transaction type.
	ListCategories(ctx context.Context, userID string, txType *domain.TransactionType) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes the category; transactions referencing it keep a NULL category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

// TagReader defines read operations for tag data
type TagReader interface {
	FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error)
	FindTagsByIDs(ctx context.Context, tagIDs []string) (map[string]domain.Tag, error)
	ListTags(ctx context.Context, userID string) ([]domain.Tag, error)
}

// TagWriter defines write operations for tag data
type TagWriter interface {
	SaveTag(ctx context.Context, tag domain.Tag) error

	// DeleteTag removes the tag and its transaction associations.
	DeleteTag(ctx context.Context, tagID string) error
}

// TagRepositoryFacade combines all tag-related repository interfaces
type TagRepositoryFacade interface {
	TagReader
	TagWriter
}
