// Package email sends transactional mail through the Resend API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

type Client struct {
	apiKey     string
	fromEmail  string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithBaseURL(url string) Option {
	return func(cl *Client) {
		cl.baseURL = url
	}
}

func NewClient(apiKey, fromEmail string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured returns true if the API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendError struct {
	Message string `json:"message"`
}

// Send delivers one HTML email to the given address. Failures carry the
// API's reason when one is returned; the caller surfaces them to the user
// and retries manually, there is no automatic backoff.
func (c *Client) Send(ctx context.Context, toEmail, subject, htmlBody string) error {
	if !c.Configured() {
		return fmt.Errorf("email client not configured: missing API key")
	}

	payload := resendEmail{
		From:    c.fromEmail,
		To:      []string{toEmail},
		Subject: subject,
		HTML:    htmlBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr resendError
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("resend API error: status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("resend API error: status %d", resp.StatusCode)
	}

	return nil
}
