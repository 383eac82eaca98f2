package model

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is one tenant's isolated data partition.
// Name stays nil until onboarding completes; PIN is the shared login secret,
// always stored normalized to six digits. TenantCode carries the legacy
// single-letter id used by the old plaintext cookie.
type Restaurant struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantCode            *string   `gorm:"type:varchar(2);uniqueIndex"`
	Name                  *string
	PIN                   string `gorm:"column:pin;type:varchar(6);uniqueIndex;not null"`
	AlertDaysBeforeExpiry int    `gorm:"not null;default:3"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Categories []Category `gorm:"foreignKey:RestaurantID"`
	Locations  []Location `gorm:"foreignKey:RestaurantID"`
}

func (Restaurant) TableName() string { return "restaurants" }
