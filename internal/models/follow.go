package models

import "time"

// Follow is a directed edge meaning "follower follows followee".
// The ordered pair is the primary key, so at most one edge can exist per
// direction between two users.
type Follow struct {
	FolloweeID uint      `gorm:"primaryKey;column:user_being_followed_id" json:"user_being_followed_id"`
	FollowerID uint      `gorm:"primaryKey;column:user_following_id" json:"user_following_id"`
	CreatedAt  time.Time `json:"created_at"`

	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
