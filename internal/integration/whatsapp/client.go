// Package whatsapp wraps the WhatsApp gateway API behind an explicit
// interface: connecting transitions a session status, sending returns a
// delivery receipt. Callers never observe gateway internals.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Session status values reported by the gateway.
const (
	StatusDisconnected = "disconnected"
	StatusConnecting   = "connecting"
	StatusConnected    = "connected"
)

// Receipt is the gateway's acknowledgement for one outbound message.
type Receipt struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

// Gateway is the messaging collaborator used by the WhatsApp service.
type Gateway interface {
	Connect(ctx context.Context) (string, error)
	SessionStatus(ctx context.Context) (string, error)
	SendMessage(ctx context.Context, recipient, body string) (*Receipt, error)
}

// Client talks to a Wati-style HTTP API authenticated with a bearer token.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type sessionResponse struct {
	Status string `json:"status"`
}

type sendMessageResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

// Connect asks the gateway to open a session. The returned status reflects
// the gateway's transition, typically "connecting" until the device pairs.
func (c *Client) Connect(ctx context.Context) (string, error) {
	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/session/connect", nil, &resp); err != nil {
		return StatusDisconnected, err
	}
	if resp.Status == "" {
		return StatusConnecting, nil
	}
	return resp.Status, nil
}

// SessionStatus reports the current session status.
func (c *Client) SessionStatus(ctx context.Context) (string, error) {
	var resp sessionResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/session/status", nil, &resp); err != nil {
		return StatusDisconnected, err
	}
	return resp.Status, nil
}

// SendMessage delivers one message and returns the gateway's receipt.
func (c *Client) SendMessage(ctx context.Context, recipient, body string) (*Receipt, error) {
	payload := sendMessageRequest{Phone: recipient, Message: body}
	var resp sendMessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/sendSessionMessage", payload, &resp); err != nil {
		return nil, err
	}
	status := resp.Status
	if status == "" {
		status = "sent"
	}
	return &Receipt{MessageID: resp.MessageID, Status: status}, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var reqBody *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode gateway response: %w", err)
		}
	}
	return nil
}
