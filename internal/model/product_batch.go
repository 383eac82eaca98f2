package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductBatch status values.
const (
	BatchActive = "ACTIVE"
	BatchUsed   = "USED"
)

// ProductBatch is a tracked quantity of one product with its own expiry date.
// Quantity never goes below zero; when it reaches zero the batch flips to
// USED, and a later increase flips it back to ACTIVE.
type ProductBatch struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null"`
	Name          string          `gorm:"index;not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Unit          string          `gorm:"not null;default:'un'"`
	ExpiryDate    time.Time       `gorm:"not null;index"`
	Tipo          string          `gorm:"type:varchar(20);not null;default:'mp'"`
	Status        string          `gorm:"type:varchar(10);not null;default:'ACTIVE'"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	LocationID    *uuid.UUID      `gorm:"type:uuid;index"`
	PackagingType *string
	Size          *decimal.Decimal `gorm:"type:decimal(10,3)"`
	SizeUnit      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
	Location *Location `gorm:"foreignKey:LocationID"`
}

func (ProductBatch) TableName() string { return "product_batches" }
