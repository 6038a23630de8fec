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

type tagService struct {
	BaseService
	tagRepo portsrepo.TagRepositoryFacade
	clock   recurrence.Clock
}

// NewTagService creates a new tag service with the provided options
func NewTagService(repo portsrepo.TagRepositoryFacade, options ...ServiceOption) portssvc.TagSvcFacade {
	o := applyServiceOptions(options)
	return &tagService{tagRepo: repo, clock: o.clock}
}

var _ portssvc.TagSvcFacade = (*tagService)(nil)

func (s *tagService) CreateTag(ctx context.Context, userID string, req dto.CreateTagRequest) (*domain.Tag, error) {
	tag := domain.Tag{
		TagID:       uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Color:       req.Color,
		AuditFields: domain.NewAuditFields(userID, s.clock.Now()),
	}
	if err := s.tagRepo.SaveTag(ctx, tag); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save tag", slog.String("tag_id", tag.TagID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Tag created successfully", slog.String("tag_id", tag.TagID))
	return &tag, nil
}

func (s *tagService) GetTagByID(ctx context.Context, userID string, tagID string) (*domain.Tag, error) {
	tag, err := s.tagRepo.FindTagByID(ctx, tagID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tag by ID", slog.String("tag_id", tagID))
		}
		return nil, err
	}
	if tag.UserID != userID {
		return nil, apperrors.NewNotFoundError("tag", tagID)
	}
	return tag, nil
}

func (s *tagService) ListTags(ctx context.Context, userID string) ([]domain.Tag, error) {
	tags, err := s.tagRepo.ListTags(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tags")
		return nil, err
	}
	return tags, nil
}

// DeleteTag removes a tag and detaches it from every transaction.
func (s *tagService) DeleteTag(ctx context.Context, userID string, tagID string) error {
	if _, err := s.GetTagByID(ctx, userID, tagID); err != nil {
		return err
	}
	if err := s.tagRepo.DeleteTag(ctx, tagID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete tag", slog.String("tag_id", tagID))
		}
		return err
	}
	s.LogInfo(ctx, "Tag deleted", slog.String("tag_id", tagID))
	return nil
}
