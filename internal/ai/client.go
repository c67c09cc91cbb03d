package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/novakb/novakb/backend/go-services/pkg/logger"
)

// ErrGenerationFailed is the fixed user-facing failure. The underlying cause
// is logged, never surfaced; the client treats every generation failure as
// transient and retryable.
var ErrGenerationFailed = errors.New("failed to generate content, please try again")

// Generator produces text for a composed prompt. The HTTP Gemini client and
// test doubles both implement it; callers receive it injected, nothing is
// held in package state.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiOptions configures a GeminiClient. Zero values pick defaults.
type GeminiOptions struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// GeminiClient calls the Gemini generateContent endpoint.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiClient(opts GeminiOptions) *GeminiClient {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gemini-2.0-flash"
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &GeminiClient{baseURL: baseURL, apiKey: opts.APIKey, model: model, httpClient: httpClient}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		logger.Error("gemini api key is not configured")
		return "", ErrGenerationFailed
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Errorf("gemini request failed: %v", err)
		return "", ErrGenerationFailed
	}
	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		logger.Errorf("gemini response read failed: %v", readErr)
		return "", ErrGenerationFailed
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Errorf("gemini returned status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
		return "", ErrGenerationFailed
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		logger.Errorf("gemini response decode failed: %v", err)
		return "", ErrGenerationFailed
	}
	if len(parsed.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
