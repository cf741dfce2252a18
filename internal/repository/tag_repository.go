package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"msgboard/internal/model"
)

// TagRepository defines tag persistence operations.
type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	FindByID(ctx context.Context, id uint) (*model.Tag, error)
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	ListWithCounts(ctx context.Context) ([]TagSummary, error)
	Delete(ctx context.Context, id uint) error
	Attach(ctx context.Context, messageID, tagID uint) error
	Detach(ctx context.Context, messageID, tagID uint) error
}

// TagSummary is a tag with the number of messages carrying it.
type TagSummary struct {
	model.Tag
	MessageCount int64
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) FindByID(ctx context.Context, id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListWithCounts returns all tags ordered by name, each with its message count.
func (r *tagRepository) ListWithCounts(ctx context.Context) ([]TagSummary, error) {
	var tags []TagSummary
	err := r.db.WithContext(ctx).
		Model(&model.Tag{}).
		Select("tags.id, tags.name, COUNT(message_tags.tag_id) AS message_count").
		Joins("LEFT JOIN message_tags ON message_tags.tag_id = tags.id").
		Group("tags.id, tags.name").
		Order("tags.name").
		Scan(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Delete removes the tag and its join rows. Messages are left untouched.
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&model.MessageTag{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Tag{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Attach links a tag to a message. Attaching an existing pair is a no-op.
func (r *tagRepository) Attach(ctx context.Context, messageID, tagID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.MessageTag{MessageID: messageID, TagID: tagID}).Error
}

// Detach unlinks a tag from a message. It returns gorm.ErrRecordNotFound
// when the pair was not linked.
func (r *tagRepository) Detach(ctx context.Context, messageID, tagID uint) error {
	res := r.db.WithContext(ctx).
		Where("message_id = ? AND tag_id = ?", messageID, tagID).
		Delete(&model.MessageTag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
