package mapping

import (
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:      d.CategoryID,
		UserID:          d.UserID,
		Name:            d.Name,
		TransactionType: models.TransactionType(d.Type),
		Color:           d.Color,
		Icon:            d.Icon,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		UserID:      m.UserID,
		Name:        m.Name,
		Type:        domain.TransactionType(m.TransactionType),
		Color:       m.Color,
		Icon:        m.Icon,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTag converts a domain Tag to a model Tag
func ToModelTag(d domain.Tag) models.Tag {
	return models.Tag{
		TagID:       d.TagID,
		UserID:      d.UserID,
		Name:        d.Name,
		Color:       d.Color,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTag converts a model Tag to a domain Tag
func ToDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{
		TagID:       m.TagID,
		UserID:      m.UserID,
		Name:        m.Name,
		Color:       m.Color,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
