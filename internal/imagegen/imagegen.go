// Package imagegen produces board images through the Gemini API: text-only
// prompts go to the Imagen model, prompts with a base image go to the flash
// image model for editing. Results come back as data URLs so items can embed
// them without separate asset storage.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	generateModel  = "imagen-4.0-generate-001"
	editModel      = "gemini-2.5-flash-image"
)

// ErrNoImage is returned when the API answers successfully but the response
// carries no image payload.
var ErrNoImage = errors.New("response contained no image data")

type Client struct {
	apiKey     string
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

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		// Image generation is slow; allow well over the usual API budget.
		httpClient: &http.Client{Timeout: 120 * time.Second},
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

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount    int    `json:"sampleCount"`
	OutputMimeType string `json:"outputMimeType"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType"`
	} `json:"predictions"`
}

// Generate creates one PNG image from a text prompt and returns it as a
// data URL.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("image client not configured: missing API key")
	}

	reqBody := predictRequest{
		Instances: []predictInstance{{Prompt: prompt}},
		Parameters: predictParameters{
			SampleCount:    1,
			OutputMimeType: "image/png",
		},
	}

	var out predictResponse
	url := fmt.Sprintf("%s/v1beta/models/%s:predict", c.baseURL, generateModel)
	if err := c.post(ctx, url, reqBody, &out); err != nil {
		return "", err
	}

	if len(out.Predictions) == 0 || out.Predictions[0].BytesBase64Encoded == "" {
		return "", ErrNoImage
	}
	mime := out.Predictions[0].MimeType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + out.Predictions[0].BytesBase64Encoded, nil
}

type generateContentRequest struct {
	Contents         contents         `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type contents struct {
	Parts []part `json:"parts"`
}

type part struct {
	InlineData *inlineData `json:"inlineData,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type inlineData struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Edit transforms a base image according to a text prompt. baseImage is the
// raw base64 payload (no data-URL prefix) and mimeType its content type. The
// result is a data URL like Generate's.
func (c *Client) Edit(ctx context.Context, prompt, baseImage, mimeType string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("image client not configured: missing API key")
	}

	reqBody := generateContentRequest{
		Contents: contents{
			Parts: []part{
				{InlineData: &inlineData{Data: baseImage, MimeType: mimeType}},
				{Text: prompt},
			},
		},
		GenerationConfig: generationConfig{ResponseModalities: []string{"IMAGE"}},
	}

	var out generateContentResponse
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, editModel)
	if err := c.post(ctx, url, reqBody, &out); err != nil {
		return "", err
	}

	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				mime := p.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return "data:" + mime + ";base64," + p.InlineData.Data, nil
			}
		}
	}
	return "", ErrNoImage
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("image API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("image API error: status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("image API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode image response: %w", err)
	}
	return nil
}
