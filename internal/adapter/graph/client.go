// Package graph implements the delivery channel against the Instagram Graph
// API. The client covers the two calls the dispatcher needs: sending a
// direct message and posting a public comment reply.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"autodm/internal/config/configs"
	"autodm/internal/core/port"
)

// APIError is a non-2xx response from the Graph API. These are application
// errors and are never retried; the dispatcher reacts by taking the
// fallback branch.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph api: status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the Graph API. Each call is bounded by the configured
// timeout; transport errors get one jittered retry, HTTP errors do not.
type Client struct {
	baseURL           string
	businessAccountID string
	accessToken       string
	timeout           time.Duration
	maxAttempts       int

	// HTTPClient may be replaced in tests.
	HTTPClient *http.Client
}

var _ port.Messenger = (*Client)(nil)

// NewClient builds a Client from configuration.
func NewClient(cfg configs.Graph) *Client {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &Client{
		baseURL:           strings.TrimRight(cfg.BaseURL, "/"),
		businessAccountID: cfg.BusinessAccountID,
		accessToken:       cfg.AccessToken,
		timeout:           cfg.Timeout,
		maxAttempts:       attempts,
		HTTPClient:        &http.Client{},
	}
}

// SendDirectMessage sends text as a DM to the recipient through the
// business account's messages endpoint.
func (c *Client) SendDirectMessage(ctx context.Context, recipientID, text string) error {
	payload := map[string]interface{}{
		"recipient": map[string]string{"id": recipientID},
		"message":   map[string]string{"text": text},
	}
	return c.post(ctx, fmt.Sprintf("%s/%s/messages", c.baseURL, c.businessAccountID), payload)
}

// ReplyToComment posts text as a public reply to the comment.
func (c *Client) ReplyToComment(ctx context.Context, commentID, text string) error {
	payload := map[string]interface{}{
		"message": text,
	}
	return c.post(ctx, fmt.Sprintf("%s/%s/replies", c.baseURL, commentID), payload)
}

func (c *Client) post(ctx context.Context, url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if err = sleepJittered(ctx, attempt); err != nil {
				return err
			}
		}
		err = c.doPost(ctx, url, body)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			// Application-level failure; retrying would resend the same
			// rejected request.
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("graph api: %d attempts failed: %w", c.maxAttempts, lastErr)
}

func (c *Client) doPost(ctx context.Context, url string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(detail))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// sleepJittered waits before a retry, honouring context cancellation. The
// base delay grows with the attempt number plus up to 250ms of jitter.
func sleepJittered(ctx context.Context, attempt int) error {
	delay := time.Duration(attempt-1)*500*time.Millisecond + rand.N(250*time.Millisecond)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
