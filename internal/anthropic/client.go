// Package anthropic provides a minimal client for the Anthropic messages API.
// The injury analyzer uses it as a single-turn text-completion oracle.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	defaultBaseURL = "https://api.anthropic.com/v1"
	apiVersion     = "2023-06-01"

	// The model call gets a conservative bound so a stalled upstream never
	// blocks a request indefinitely.
	completionTimeout = 60 * time.Second

	maxTokens     = 4096
	retryAttempts = 3
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Usage   struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the messages endpoint with retries and a circuit breaker.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates a client for the given API key and model.
func NewClient(apiKey, model string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "anthropic-api",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("anthropic circuit breaker state changed",
				"circuit", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: completionTimeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
		breaker:    cb,
		logger:     logger,
	}
}

// Complete sends a single user message and returns the text of the reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	request := messagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  []Message{{Role: "user", Content: prompt}},
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.makeRequest(ctx, request)
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	resp := result.(*messagesResponse)
	c.logger.Debug("anthropic completion",
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("anthropic response had no content blocks")
	}
	return strings.TrimSpace(resp.Content[0].Text), nil
}

// makeRequest performs the HTTP call with exponential-backoff retries.
// Auth and validation errors are terminal; transport and 5xx errors retry.
func (c *Client) makeRequest(ctx context.Context, request messagesRequest) (*messagesResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/messages", bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("anthropic-version", apiVersion)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("read response: %w", readErr)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			var mr messagesResponse
			if err := json.Unmarshal(respBody, &mr); err != nil {
				return nil, fmt.Errorf("decode response: %w", err)
			}
			return &mr, nil
		}

		var apiErr errorResponse
		_ = json.Unmarshal(respBody, &apiErr)
		msg := apiErr.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}

		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("invalid API credentials: %s", msg)
		case http.StatusBadRequest:
			return nil, fmt.Errorf("bad request: %s", msg)
		default:
			lastErr = fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, msg)
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", retryAttempts, lastErr)
}

// Healthy reports whether the circuit breaker is closed.
func (c *Client) Healthy() bool {
	return c.breaker.State() == gobreaker.StateClosed
}
