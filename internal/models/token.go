package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken stores the SHA-256 hash of an opaque bearer token. The raw
// token is only ever returned to the client at issue time; resolution is a
// single equality lookup on the hash.
type AccessToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}
