// Package genai is a minimal client for the Gemini generateContent REST API.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client handles Gemini text generation.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// Part is one piece of content: text, or inline binary data for images.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData is base64-encoded binary content with its MIME type.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Content is one conversation turn.
type Content struct {
	Role  string `json:"role,omitempty"` // "user" or "model"
	Parts []Part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
	Contents          []Content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewClient creates a new Gemini client.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateText sends a single-turn text prompt with an optional system
// instruction and returns the first candidate's text.
func (c *Client) GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	return c.generate(ctx, systemInstruction, []Content{
		{Role: "user", Parts: []Part{{Text: prompt}}},
	})
}

// GenerateChat sends a multi-turn conversation and returns the model's reply.
func (c *Client) GenerateChat(ctx context.Context, systemInstruction string, contents []Content) (string, error) {
	return c.generate(ctx, systemInstruction, contents)
}

// GenerateVision sends a prompt plus one inline image.
func (c *Client) GenerateVision(ctx context.Context, prompt, mimeType, imageBase64 string) (string, error) {
	return c.generate(ctx, "", []Content{
		{Role: "user", Parts: []Part{
			{Text: prompt},
			{InlineData: &InlineData{MimeType: mimeType, Data: imageBase64}},
		}},
	})
}

func (c *Client) generate(ctx context.Context, systemInstruction string, contents []Content) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}
	if len(contents) == 0 {
		return "", fmt.Errorf("no content provided")
	}

	req := generateRequest{Contents: contents}
	if systemInstruction != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: systemInstruction}}}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	// One attempt only. Callers substitute a fallback message on failure, so
	// there is nothing to retry on behalf of.
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("Gemini API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("Gemini API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
