package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type ParseTextRequest struct {
	Text string `json:"text" validate:"required"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type VoiceParseResponse struct {
	Name       string `json:"name,omitempty"`
	Quantity   string `json:"quantity,omitempty"`
	Unit       string `json:"unit,omitempty"`
	ExpiryDays *int   `json:"expiry_days,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"` // YYYY-MM-DD
	Category   string `json:"category,omitempty"`
	Homemade   bool   `json:"homemade,omitempty"`
}

type OCRDateResponse struct {
	Found bool   `json:"found"`
	Date  string `json:"date,omitempty"` // YYYY-MM-DD
}

type TranscriptionResponse struct {
	Text string `json:"text"`
}
