package models

import "time"

// Follow is a directed edge asserting FollowerID follows FollowingID.
// The pair is unique and self-loops are rejected before creation.
type Follow struct {
	FollowerID  uint      `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FollowingID uint      `gorm:"primaryKey;autoIncrement:false" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
