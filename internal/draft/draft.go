// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package draft generates personalized outreach messages for sourced
// candidates through the Anthropic Messages API.
package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/a9austin/sdr-sourcer/internal/httputil"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// claudeAPIBase is the Anthropic Messages endpoint. Declared as a var so
// tests can substitute an httptest server.
var claudeAPIBase = "https://api.anthropic.com/v1/messages"

const (
	anthropicVersion = "2023-06-01"
	defaultModel     = "claude-sonnet-4-5"
	maxTokens        = 1024
)

// Backend produces an outreach draft for one candidate. Tests supply a
// mock; production uses ClaudeBackend.
type Backend interface {
	Draft(ctx context.Context, c *types.Candidate) (string, error)
}

// ClaudeBackend calls the Anthropic Messages API.
type ClaudeBackend struct {
	Client     *http.Client
	APIKey     string
	Model      string
	MaxRetries int
}

// NewClaudeBackend builds a backend from config, filling in the default
// model when none is configured.
func NewClaudeBackend(client *http.Client, cfg types.DraftConfig) (*ClaudeBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no Anthropic API key configured: set the anthropic-api-key secret")
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &ClaudeBackend{
		Client:     client,
		APIKey:     cfg.APIKey,
		Model:      model,
		MaxRetries: cfg.MaxRetries,
	}, nil
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Draft asks the model for a short outreach message tailored to the
// candidate's headline and role fit.
func (b *ClaudeBackend) Draft(ctx context.Context, c *types.Candidate) (string, error) {
	body, err := json.Marshal(messagesRequest{
		Model:     b.Model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: Prompt(c)}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, claudeAPIBase, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", b.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, b.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("Anthropic API request: %w", err)
	}
	defer resp.Body.Close()

	var mr messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return "", fmt.Errorf("parsing Anthropic response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if mr.Error != nil {
			return "", fmt.Errorf("Anthropic API error (%s): %s", mr.Error.Type, mr.Error.Message)
		}
		return "", fmt.Errorf("Anthropic API returned HTTP %d", resp.StatusCode)
	}

	var text strings.Builder
	for _, block := range mr.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	out := strings.TrimSpace(text.String())
	if out == "" {
		return "", fmt.Errorf("Anthropic response contained no text")
	}
	return out, nil
}
