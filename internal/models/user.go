// Package models contains the domain entities and error types shared by
// every layer of the application.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered identity. Username and Email are unique
// across all users; Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	Interests StringList     `gorm:"type:text" json:"interests"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// Profile is the public projection of a user, safe to return to any caller.
type Profile struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Bio       string     `json:"bio"`
	Avatar    string     `json:"avatar"`
	Interests StringList `json:"interests"`
	CreatedAt time.Time  `json:"created_at"`
}

// Profile returns the public projection of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		Interests: u.Interests,
		CreatedAt: u.CreatedAt,
	}
}
