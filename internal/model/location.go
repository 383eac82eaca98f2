package model

import (
	"time"

	"github.com/google/uuid"
)

// Location is a tenant-scoped storage place (fridge, pantry, freezer).
type Location struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_locations_tenant_name"`
	Name         string    `gorm:"not null;uniqueIndex:idx_locations_tenant_name"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Location) TableName() string { return "locations" }
