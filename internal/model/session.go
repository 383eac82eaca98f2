package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record backing the opaque session cookie.
// A row with ExpiresAt in the past is never valid; lookups delete it lazily
// and the sweep removes whatever lookups missed.
type Session struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Token        string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt    time.Time `gorm:"not null;index"`
	LastUsedAt   time.Time `gorm:"not null"`
	CreatedAt    time.Time

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
}
