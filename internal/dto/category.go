package dto

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string                 `json:"name" binding:"required,max=100"`
	Type  domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Color string                 `json:"color" binding:"omitempty,hexcolor"`
	Icon  string                 `json:"icon" binding:"omitempty,max=64"`
}

// ListCategoriesParams filters the category list.
type ListCategoriesParams struct {
	Type string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

type CategoryResponse struct {
	CategoryID    string                 `json:"categoryId"`
	Name          string                 `json:"name"`
	Type          domain.TransactionType `json:"type"`
	Color         string                 `json:"color"`
	Icon          string                 `json:"icon"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CreateTagRequest defines the data needed to create a tag.
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

type TagResponse struct {
	TagID     string    `json:"tagId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListTagsResponse struct {
	Tags []TagResponse `json:"tags"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    c.CategoryID,
		Name:          c.Name,
		Type:          c.Type,
		Color:         c.Color,
		Icon:          c.Icon,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	res := ListCategoriesResponse{Categories: make([]CategoryResponse, len(categories))}
	for i := range categories {
		res.Categories[i] = ToCategoryResponse(&categories[i])
	}
	return res
}

func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		TagID:     t.TagID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}

func ToListTagsResponse(tags []domain.Tag) ListTagsResponse {
	res := ListTagsResponse{Tags: make([]TagResponse, len(tags))}
	for i := range tags {
		res.Tags[i] = ToTagResponse(&tags[i])
	}
	return res
}
