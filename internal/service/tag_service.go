package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "msgboard/internal/errors"
	"msgboard/internal/model"
	"msgboard/internal/repository"
)

// TagService handles tags and their message associations.
type TagService interface {
	ListTags(ctx context.Context) ([]repository.TagSummary, error)
	CreateTag(ctx context.Context, name string) (*model.Tag, error)
	DeleteTag(ctx context.Context, id uint) error
	AttachTag(ctx context.Context, userID, messageID uint, name string) (*model.Tag, error)
	DetachTag(ctx context.Context, userID, messageID, tagID uint) error
}

type tagService struct {
	tagRepo     repository.TagRepository
	messageRepo repository.MessageRepository
}

// NewTagService creates a new tag service.
func NewTagService(tagRepo repository.TagRepository, messageRepo repository.MessageRepository) TagService {
	return &tagService{
		tagRepo:     tagRepo,
		messageRepo: messageRepo,
	}
}

func (s *tagService) ListTags(ctx context.Context) ([]repository.TagSummary, error) {
	tags, err := s.tagRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (s *tagService) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", apperrors.ErrInvalidInput)
	}
	tag := &model.Tag{Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTagNameTaken
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

// DeleteTag removes the tag and its associations; messages are kept.
func (s *tagService) DeleteTag(ctx context.Context, id uint) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTagNotFound
		}
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

// AttachTag tags one of the user's messages, creating the tag by name if
// needed. Attaching a tag the message already has changes nothing.
func (s *tagService) AttachTag(ctx context.Context, userID, messageID uint, name string) (*model.Tag, error) {
	if err := s.checkMessage(ctx, userID, messageID); err != nil {
		return nil, err
	}

	tag, err := s.findOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.tagRepo.Attach(ctx, messageID, tag.ID); err != nil {
		return nil, fmt.Errorf("attach tag: %w", err)
	}
	return tag, nil
}

// DetachTag removes a tag from one of the user's messages. An unknown tag,
// or one the message does not carry, is reported as ErrTagNotFound.
func (s *tagService) DetachTag(ctx context.Context, userID, messageID, tagID uint) error {
	if err := s.checkMessage(ctx, userID, messageID); err != nil {
		return err
	}
	if _, err := s.tagRepo.FindByID(ctx, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTagNotFound
		}
		return fmt.Errorf("find tag: %w", err)
	}
	if err := s.tagRepo.Detach(ctx, messageID, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTagNotFound
		}
		return fmt.Errorf("detach tag: %w", err)
	}
	return nil
}

func (s *tagService) checkMessage(ctx context.Context, userID, messageID uint) error {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return fmt.Errorf("find message: %w", err)
	}
	if message.UserID != userID {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

func (s *tagService) findOrCreate(ctx context.Context, name string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	tag, err := s.tagRepo.FindByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find tag: %w", err)
	}

	tag, err = s.CreateTag(ctx, name)
	if errors.Is(err, apperrors.ErrTagNameTaken) {
		return s.tagRepo.FindByName(ctx, name)
	}
	return tag, err
}
