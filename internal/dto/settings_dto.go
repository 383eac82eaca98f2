package dto

import "github.com/google/uuid"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type UpdateSettingsRequest struct {
	// Default urgent threshold; missing or non-positive falls back to 3.
	AlertDays *int `json:"alert_days"`
}

type UpdateNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Tipo string `json:"tipo"` // anything but "transformado" coerces to "mp"
}

type UpdateCategoryAlertRequest struct {
	// Negative or missing values clear the override (fall back to defaults).
	WarningDays *int `json:"warning_days"`
	AlertDays   *int `json:"alert_days"`
}

type CreateLocationRequest struct {
	Name string `json:"name" validate:"required"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Tipo        string    `json:"tipo"`
	AlertDays   *int      `json:"alert_days,omitempty"`
	WarningDays *int      `json:"warning_days,omitempty"`
}

type LocationResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SettingsResponse struct {
	Restaurant RestaurantInfo     `json:"restaurant"`
	AlertDays  int                `json:"alert_days"`
	Categories []CategoryResponse `json:"categories"`
	Locations  []LocationResponse `json:"locations"`
}
