package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/imehub/maritime-assistant-web/internal/models"
)

// ChatBackend is the maritime AI endpoint the session controller talks to.
// The HTTP client below targets the remote service; internal/engine provides
// an in-process implementation of the same contract.
type ChatBackend interface {
	Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error)
	Status(ctx context.Context) (*models.StatusResponse, error)
}

type HTTPBackend struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPBackend(baseURL string) *HTTPBackend {
	return &HTTPBackend{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// Chat posts one message round-trip to /api/chat. No retry, no timeout: the
// caller holds the pending flag until this returns.
func (b *HTTPBackend) Chat(ctx context.Context, chatReq *models.ChatRequest) (*models.ChatResponse, error) {
	jsonData, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+"/api/chat", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading chat response: %w", err)
	}

	var chatResp models.ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("parsing chat response: %w", err)
	}
	return &chatResp, nil
}

// Status fetches /api/status once at session start.
func (b *HTTPBackend) Status(ctx context.Context) (*models.StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.BaseURL+"/api/status", nil)
	if err != nil {
		return nil, fmt.Errorf("building status request: %w", err)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending status request: %w", err)
	}
	defer resp.Body.Close()

	var statusResp models.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&statusResp); err != nil {
		return nil, fmt.Errorf("parsing status response: %w", err)
	}
	return &statusResp, nil
}
