// Package api is a typed HTTP+JSON client for the residential-access API.
// It knows the endpoint paths, the bearer-auth convention and the error body
// shape; everything above it works with domain types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"resipass/internal/logging"
)

// Client talks to one deployment of the residential-access API.
//
// Every failure is terminal: there are no retries and no backoff anywhere in
// this client. A transport-level failure comes back wrapped in
// ErrUnavailable; a non-2xx response comes back as *APIError.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	log logging.Logger
}

// New creates a Client for baseURL. The timeout is the single transport
// ceiling applied to every call.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		log:        log.With("component", "api"),
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// do performs one round trip. A non-empty token becomes the bearer header.
// in (if non-nil) is marshalled as the JSON body; out (if non-nil) receives
// the decoded 2xx response body.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseAPIError(resp.StatusCode, respBody)
		c.log.Debug(ctx, "api error", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Login authenticates the resident. No bearer header is sent.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	req := LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/Account/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateInvitation registers a new guest invitation and returns it,
// including the server-issued QR payload.
func (c *Client) CreateInvitation(ctx context.Context, token string, req InvitationRequest) (*InvitationResponse, error) {
	var resp InvitationResponse
	if err := c.do(ctx, http.MethodPost, "/api/Invitado/create", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyInvitations lists the invitations owned by the authenticated resident.
func (c *Client) MyInvitations(ctx context.Context, token string) ([]InvitationResponse, error) {
	var resp []InvitationResponse
	if err := c.do(ctx, http.MethodGet, "/api/Invitado/my-invitations", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CancelInvitation marks an invitation cancelled. The invitation stays in
// the list with its new status.
func (c *Client) CancelInvitation(ctx context.Context, token string, id int) (*CancelResponse, error) {
	var resp CancelResponse
	path := fmt.Sprintf("/api/Invitado/cancel/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteInvitation removes an invitation entirely.
func (c *Client) DeleteInvitation(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/Invitado/%d", id), token, nil, nil)
}

// UpdateInvitation replaces the editable fields of an invitation.
func (c *Client) UpdateInvitation(ctx context.Context, token string, id int, req InvitationRequest) (*InvitationResponse, error) {
	var resp InvitationResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/Invitado/%d", id), token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AccessHistory queries the resident-scoped audit log.
func (c *Client) AccessHistory(ctx context.Context, token string, req AccessHistoryRequest) (*AccessHistoryResponse, error) {
	var resp AccessHistoryResponse
	if err := c.do(ctx, http.MethodPost, "/api/Acceso/history", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
