package model

import "time"

// User is a registered member of the board.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"type:text"`
	LastName     string    `json:"last_name" gorm:"type:text"`
	PictureURL   string    `json:"picture_url" gorm:"type:text"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// DisplayName returns the full name, falling back to the username.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Username
}
