package model

import "time"

// MaxContentLength is the longest message body accepted from the form, in characters.
const MaxContentLength = 60

// Message is a short note posted on a user's board.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Author    string    `json:"author" gorm:"type:text"`
	Content   string    `json:"content" gorm:"type:text"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User  `json:"-" gorm:"foreignKey:UserID"`
	Tags []Tag `json:"tags,omitempty" gorm:"many2many:message_tags;"`
}
