package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrNoAPIKey is returned when the transcription API key is not configured.
var ErrNoAPIKey = errors.New("transcriber: API key not configured")

// Transcriber is an HTTP client for the ElevenLabs speech-to-text API.
// The API's response shape has varied across versions, so the text is
// extracted from any of the shapes observed in the wild.
type Transcriber struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewTranscriber(baseURL, apiKey string) *Transcriber {
	return &Transcriber{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an API key is set.
func (t *Transcriber) Configured() bool { return t.apiKey != "" }

// Transcribe sends an audio file for transcription and returns the
// recognized Portuguese text.
func (t *Transcriber) Transcribe(ctx context.Context, filename, contentType string, audio io.Reader) (string, error) {
	if t.apiKey == "" {
		return "", ErrNoAPIKey
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("transcriber: create form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("transcriber: copy audio: %w", err)
	}
	if err := mw.WriteField("language_code", "pt-PT"); err != nil {
		return "", fmt.Errorf("transcriber: write field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("transcriber: close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/v1/speech-to-text", &body)
	if err != nil {
		return "", fmt.Errorf("transcriber: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("xi-api-key", t.apiKey)
	_ = contentType // the upstream API infers the codec from the file itself

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcriber: API unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcriber: API returned %d", resp.StatusCode)
	}

	var raw struct {
		Text          string `json:"text"`
		Transcription string `json:"transcription"`
		Result        struct {
			Text string `json:"text"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("transcriber: decode response: %w", err)
	}

	switch {
	case raw.Text != "":
		return raw.Text, nil
	case raw.Transcription != "":
		return raw.Transcription, nil
	case raw.Result.Text != "":
		return raw.Result.Text, nil
	}
	return "", errors.New("transcriber: no transcription in response")
}
