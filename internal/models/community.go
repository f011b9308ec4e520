package models

import (
	"time"

	"github.com/google/uuid"
)

// CommunityPost is a denormalized snapshot of a goal taken at share time.
// GoalID is a back-reference, not an ownership edge; consistency with the
// source goal is maintained by the services, not by the database.
//
// Posts are deleted for real, never soft-deleted: a removed row must free
// the (user_id, intention) unique index so the same goal can be shared again
// after the user returns to public.
type CommunityPost struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_posts_user_intention" json:"user_id"`
	UserName   string    `gorm:"size:20;not null" json:"user_name"`
	GoalID     uuid.UUID `gorm:"type:uuid;not null;index" json:"goal_id"`
	Intention  string    `gorm:"size:150;not null;uniqueIndex:idx_posts_user_intention" json:"intention"`
	Specific   string    `gorm:"size:150;not null" json:"specific"`
	Measurable string    `gorm:"size:150;not null" json:"measurable"`
	Achievable string    `gorm:"size:150;not null" json:"achievable"`
	Relevant   string    `gorm:"size:150;not null" json:"relevant"`
	Timebound  string    `gorm:"size:150;not null" json:"timebound"`
	Likes      int       `gorm:"default:0" json:"likes"`
	Comments   []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Comment lives in its own table keyed by its own id, with a back-reference
// to the post that holds it. Deleting by comment id is a direct keyed lookup.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	UserName  string    `gorm:"size:20;not null" json:"user_name"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
