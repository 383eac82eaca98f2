package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────
// Batch forms arrive loosely typed: quantities and sizes are strings that the
// service coerces, mirroring the HTML form fields they come from.

type CreateBatchRequest struct {
	Name          string `json:"name"        validate:"required"`
	Quantity      string `json:"quantity"    validate:"required"`
	Unit          string `json:"unit"`
	ExpiryDate    string `json:"expiry_date" validate:"required"`
	Tipo          string `json:"tipo"`
	CategoryID    string `json:"category_id"`
	LocationID    string `json:"location_id"`
	PackagingType string `json:"packaging_type"`
	Size          string `json:"size"`
	SizeUnit      string `json:"size_unit"`
}

type UpdateBatchRequest = CreateBatchRequest

type AdjustQuantityRequest struct {
	// Signed delta: negative consumes/wastes, positive restocks.
	Adjustment string `json:"adjustment" validate:"required"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

// Expiry status labels, in priority order.
const (
	StatusExpired = "EXPIRED"
	StatusUrgent  = "URGENT"
	StatusWarning = "WARNING"
	StatusOK      = "OK"
)

type BatchResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Quantity      decimal.Decimal  `json:"quantity"`
	Unit          string           `json:"unit"`
	ExpiryDate    string           `json:"expiry_date"`
	Tipo          string           `json:"tipo"`
	Status        string           `json:"status"` // ACTIVE | USED
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	CategoryName  *string          `json:"category_name,omitempty"`
	LocationID    *uuid.UUID       `json:"location_id,omitempty"`
	LocationName  *string          `json:"location_name,omitempty"`
	PackagingType *string          `json:"packaging_type,omitempty"`
	Size          *decimal.Decimal `json:"size,omitempty"`
	SizeUnit      *string          `json:"size_unit,omitempty"`
	DaysToExpiry  int              `json:"days_to_expiry"`
	ExpiryStatus  string           `json:"expiry_status"` // EXPIRED | URGENT | WARNING | OK
}
