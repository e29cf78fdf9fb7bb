package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxPostContentLen bounds post content length in characters.
const MaxPostContentLen = 280

// Post represents a post in the feed. The owner is immutable after creation
// and there is no edit operation; likes and comments mutate it in place.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Like is one entry in a post's like-set. The (UserID, PostID) pair is
// unique; membership means "liked".
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Like) TableName() string {
	return "likes"
}
