package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "msgboard/internal/errors"
	"msgboard/internal/model"
	"msgboard/internal/repository"
)

// CreateMessageInput carries a validated message form.
type CreateMessageInput struct {
	Author  string
	Content string
}

// MessageService handles a user's messages.
type MessageService interface {
	ListForUser(ctx context.Context, userID uint) (*model.User, []model.Message, error)
	Create(ctx context.Context, userID uint, in CreateMessageInput) (*model.Message, error)
	Delete(ctx context.Context, userID, messageID uint) (*model.Message, error)
}

type messageService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
}

// NewMessageService creates a new message service.
func NewMessageService(userRepo repository.UserRepository, messageRepo repository.MessageRepository) MessageService {
	return &messageService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
	}
}

func (s *messageService) owner(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// ListForUser returns the user and all of their messages.
func (s *messageService) ListForUser(ctx context.Context, userID uint) (*model.User, []model.Message, error) {
	user, err := s.owner(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	messages, err := s.messageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list messages: %w", err)
	}
	return user, messages, nil
}

// Create stores a message on the user's board.
func (s *messageService) Create(ctx context.Context, userID uint, in CreateMessageInput) (*model.Message, error) {
	if _, err := s.owner(ctx, userID); err != nil {
		return nil, err
	}

	message := &model.Message{
		Author:  in.Author,
		Content: in.Content,
		UserID:  userID,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		// The user was deleted between the check and the insert.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

// Delete removes one of the user's messages and returns it.
func (s *messageService) Delete(ctx context.Context, userID, messageID uint) (*model.Message, error) {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	if message.UserID != userID {
		return nil, apperrors.ErrMessageNotFound
	}

	if err := s.messageRepo.Delete(ctx, message); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("delete message: %w", err)
	}
	return message, nil
}
