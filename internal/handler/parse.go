package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/parse"
)

// ParseHandler exposes the pure text extractors: voice commands and OCR
// expiry dates. No persistence — the client decides what to do with the
// extracted fields.
type ParseHandler struct{}

func NewParseHandler() *ParseHandler { return &ParseHandler{} }

func (h *ParseHandler) VoiceCommand(c *gin.Context) {
	var req dto.ParseTextRequest
	if !bindAndValidate(c, &req) {
		return
	}

	cmd := parse.ParseVoiceCommand(req.Text)
	c.JSON(http.StatusOK, dto.VoiceParseResponse{
		Name:       cmd.Name,
		Quantity:   cmd.Quantity,
		Unit:       cmd.Unit,
		ExpiryDays: cmd.ExpiryDays,
		ExpiryDate: cmd.ExpiryDate,
		Category:   cmd.Category,
		Homemade:   cmd.Homemade,
	})
}

func (h *ParseHandler) OCRDate(c *gin.Context) {
	var req dto.ParseTextRequest
	if !bindAndValidate(c, &req) {
		return
	}

	date, found := parse.ExtractExpiryDate(req.Text)
	resp := dto.OCRDateResponse{Found: found}
	if found {
		resp.Date = date.Format("2006-01-02")
	}
	c.JSON(http.StatusOK, resp)
}
