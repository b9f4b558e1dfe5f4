// Package gemini is a small client for the Google Gemini generateContent
// endpoint. The API key comes from the GEMINI_API_KEY environment variable
// unless supplied explicitly.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// EnvAPIKey is the environment variable the API key is read from.
	EnvAPIKey = "GEMINI_API_KEY"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-1.5-flash"

	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/"
	defaultTimeout = 60 * time.Second
)

// Config configures a Client. Zero values fall back to defaults; BaseURL
// exists for tests.
type Config struct {
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  *log.Logger
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	model      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a Client. It returns a *CredentialsError when no API
// key is configured and the environment variable is unset.
func NewClient(cfg Config) (*Client, error) {
	key := cfg.APIKey
	if key == "" {
		key = os.Getenv(EnvAPIKey)
	}
	if key == "" {
		return nil, &CredentialsError{Reason: fmt.Sprintf("environment variable %s is not set", EnvAPIKey)}
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Client{
		model:      model,
		apiKey:     key,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Request carries one prompt plus the optional generation knobs.
type Request struct {
	Prompt            string
	SystemInstruction string
	GenerationConfig  map[string]any

	// ForceJSON sets responseMimeType to application/json in the
	// generation config.
	ForceJSON bool
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents          []content      `json:"contents"`
	SystemInstruction *content       `json:"systemInstruction,omitempty"`
	GenerationConfig  map[string]any `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt to the model and returns the text of the first
// part of the first candidate, trimmed of surrounding whitespace.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", errors.New("prompt must not be empty")
	}

	body := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: req.Prompt}}}},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.SystemInstruction}}}
	}
	if len(req.GenerationConfig) > 0 || req.ForceJSON {
		cfg := make(map[string]any, len(req.GenerationConfig)+1)
		for k, v := range req.GenerationConfig {
			cfg[k] = v
		}
		if req.ForceJSON {
			cfg["responseMimeType"] = "application/json"
		}
		body.GenerationConfig = cfg
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Transport errors echo the full URL; keep the key out of them.
		return "", &NetworkError{Err: errors.New(strings.ReplaceAll(err.Error(), c.apiKey, "REDACTED"))}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &CredentialsError{Reason: fmt.Sprintf("API key rejected (HTTP %d)", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return "", &ResponseError{StatusCode: resp.StatusCode, Reason: "unexpected status", Body: string(raw)}
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ResponseError{Reason: "response is not valid JSON", Body: string(raw)}
	}
	if len(parsed.Candidates) == 0 {
		return "", &ResponseError{Reason: "response has no candidates", Body: string(raw)}
	}
	parts := parsed.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", &ResponseError{Reason: "first candidate has no content parts", Body: string(raw)}
	}
	return strings.TrimSpace(parts[0].Text), nil
}

// Model returns the model identifier the client targets.
func (c *Client) Model() string {
	return c.model
}
