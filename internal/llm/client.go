// Package llm calls an OpenAI-compatible chat-completions endpoint (Groq by
// default) to generate text.
package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"marketai/internal/logging"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.3-70b-versatile"
	DefaultTimeout = 60 * time.Second
)

// GenerationError reports a failed model call. StatusCode is zero when the
// request never produced an HTTP response.
type GenerationError struct {
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsGenerationError reports whether err is or wraps a *GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client sends one chat completion per Generate call. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client; zero Config fields take defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Generate returns the model's reply to systemPrompt and userPrompt.
// Every failure is returned as a *GenerationError.
func (c *Client) Generate(ctx context.Context, apiKey, modelName, systemPrompt, userPrompt string) (string, error) {
	if apiKey == "" {
		return "", &GenerationError{Err: errors.New("API key not configured")}
	}

	start := time.Now()
	body, err := json.Marshal(chatRequest{
		Model: modelName,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", &GenerationError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &GenerationError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GenerationError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var parsed chatResponse
	parseErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(raw))
		if parseErr == nil && parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &GenerationError{StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}
	if parseErr != nil {
		return "", &GenerationError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", parseErr)}
	}
	if parsed.Error != nil {
		return "", &GenerationError{StatusCode: resp.StatusCode, Err: fmt.Errorf("API error: %s", parsed.Error.Message)}
	}
	if len(parsed.Choices) == 0 {
		return "", &GenerationError{StatusCode: resp.StatusCode, Err: errors.New("no completion returned")}
	}

	text := parsed.Choices[0].Message.Content
	logging.Debug().
		Str("model", modelName).
		Dur("elapsed", time.Since(start)).
		Int("response_len", len(text)).
		Msg("chat completion finished")
	return text, nil
}
