package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ClearStock/clearstock/internal/apierror"
	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/infra"
)

// Audio uploads larger than this are rejected before touching the upstream.
const maxAudioBytes = 10 << 20 // 10 MiB

// SpeechHandler proxies audio uploads to the transcription API. The server
// holds the API key; clients never see it.
type SpeechHandler struct {
	transcriber *infra.Transcriber
	cb          *infra.CircuitBreaker
}

func NewSpeechHandler(transcriber *infra.Transcriber, cb *infra.CircuitBreaker) *SpeechHandler {
	return &SpeechHandler{transcriber: transcriber, cb: cb}
}

func (h *SpeechHandler) Transcribe(c *gin.Context) {
	if !h.transcriber.Configured() {
		c.JSON(http.StatusServiceUnavailable, apierror.New("Transcrição de voz não está configurada."))
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ficheiro de áudio em falta."))
		return
	}
	if fileHeader.Size > maxAudioBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("Ficheiro de áudio demasiado grande."))
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "audio/") && contentType != "video/webm" {
		c.JSON(http.StatusBadRequest, apierror.New("Formato de áudio não suportado."))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Não foi possível ler o ficheiro de áudio."))
		return
	}
	defer file.Close()

	var text string
	cbErr := h.cb.Execute(func() error {
		var innerErr error
		text, innerErr = h.transcriber.Transcribe(c.Request.Context(), fileHeader.Filename, contentType, file)
		return innerErr
	})
	if cbErr != nil {
		if errors.Is(cbErr, infra.ErrCircuitOpen) {
			c.JSON(http.StatusServiceUnavailable, apierror.New("Serviço de transcrição temporariamente indisponível."))
			return
		}
		log.Error().Err(cbErr).Msg("transcription request failed")
		c.JSON(http.StatusBadGateway, apierror.New("Falha na transcrição de voz."))
		return
	}

	c.JSON(http.StatusOK, dto.TranscriptionResponse{Text: text})
}
