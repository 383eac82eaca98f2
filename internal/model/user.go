package model

import (
	"time"

	"github.com/google/uuid"
)

// User attributes batch entries to a person within a restaurant.
// Provisioned lazily — one demo user per restaurant until real accounts exist.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"not null"`
	Email        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
