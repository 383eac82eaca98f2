package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockEvent types.
const (
	EventEntry = "ENTRY"
	EventWaste = "WASTE"
)

// StockEvent is an append-only audit record of stock movement.
// Rows are only ever inserted — there is no update path anywhere.
type StockEvent struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type         string          `gorm:"type:varchar(10);not null"` // "ENTRY" | "WASTE"
	ProductName  string          `gorm:"not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Unit         string          `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"index"`
}

func (StockEvent) TableName() string { return "stock_events" }
