package repository

import (
	"context"

	"gorm.io/gorm"

	"msgboard/internal/model"
)

// MessageRepository defines message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id uint) (*model.Message, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Message, error)
	Delete(ctx context.Context, message *model.Message) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create creates a new message.
func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// FindByID finds a message by ID with its tags.
func (r *messageRepository) FindByID(ctx context.Context, id uint) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).Preload("Tags").First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListByUser lists a user's messages, oldest first, with their tags.
func (r *messageRepository) ListByUser(ctx context.Context, userID uint) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }).
		Where("user_id = ?", userID).
		Order("id").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Delete removes a message and its tag associations in one transaction.
func (r *messageRepository) Delete(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", message.ID).Delete(&model.MessageTag{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Message{}, message.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
