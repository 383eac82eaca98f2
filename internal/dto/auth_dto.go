package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type LoginRequest struct {
	PIN string `json:"pin" validate:"required,min=4,max=6"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type RestaurantInfo struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
	PIN  string  `json:"pin"`
}

type LoginResponse struct {
	Success         bool           `json:"success"`
	Restaurant      RestaurantInfo `json:"restaurant"`
	NeedsOnboarding bool           `json:"needs_onboarding"`
}

// SessionInfo backs GET /v1/auth/session (the client-side auth guard).
type SessionInfo struct {
	Authenticated   bool           `json:"authenticated"`
	Restaurant      RestaurantInfo `json:"restaurant"`
	NeedsOnboarding bool           `json:"needs_onboarding"`
}
