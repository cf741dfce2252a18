package model

import "time"

// Tag is a unique label that can be attached to any number of messages.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Messages []Message `json:"messages,omitempty" gorm:"many2many:message_tags;"`
}

// MessageTag is the join row between a message and a tag.
type MessageTag struct {
	MessageID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName pins the join table name shared with the many2many tags.
func (MessageTag) TableName() string {
	return "message_tags"
}
