package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is an intention plus its five SMART sub-fields. Each text field is
// constrained to 20-150 characters at the service layer. A user may hold at
// most 3 goals with Completed == false, and no two goals with the same
// intention text.
type Goal struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_goals_user_intention" json:"user_id"`
	Intention  string         `gorm:"size:150;not null;uniqueIndex:idx_goals_user_intention" json:"intention"`
	Specific   string         `gorm:"size:150;not null" json:"specific"`
	Measurable string         `gorm:"size:150;not null" json:"measurable"`
	Achievable string         `gorm:"size:150;not null" json:"achievable"`
	Relevant   string         `gorm:"size:150;not null" json:"relevant"`
	Timebound  string         `gorm:"size:150;not null" json:"timebound"`
	Completed  bool           `gorm:"default:false" json:"completed"`
	IsPublic   bool           `gorm:"default:false" json:"is_public"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
