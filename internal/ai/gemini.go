// Package ai wraps the Gemini generateContent REST endpoint: prompt plus
// optional inline images in, model text or decoded JSON out. Prompt content
// itself is owned by the calling service.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var (
	// ErrEmptyResponse means the model returned no candidates or no text.
	ErrEmptyResponse = errors.New("model returned an empty response")
	// ErrNoJSON means no JSON document could be located in the model output.
	ErrNoJSON = errors.New("no valid JSON found in model response")
)

// Client calls the Gemini generateContent API.
type Client struct {
	http   *resty.Client
	apiKey string
	model  string
	logger *zap.Logger
}

// NewClient creates a Gemini client for the given model.
func NewClient(apiKey, model string, logger *zap.Logger) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(60 * time.Second).
			SetHeader("Content-Type", "application/json"),
		apiKey: apiKey,
		model:  model,
		logger: logger,
	}
}

// ImagePart is an inline image attached to a prompt.
type ImagePart struct {
	MIMEType string
	Data     string // base64, without a data-URL prefix
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateText sends a prompt (plus optional images) and returns the model's
// text output.
func (c *Client) GenerateText(ctx context.Context, prompt string, images ...ImagePart) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("gemini API key is not configured")
	}

	parts := []requestPart{{Text: prompt}}
	for _, img := range images {
		parts = append(parts, requestPart{InlineData: &inlineData{MIMEType: img.MIMEType, Data: img.Data}})
	}

	var result generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(generateRequest{Contents: []requestContent{{Parts: parts}}}).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.IsError() {
		if result.Error != nil {
			return "", fmt.Errorf("gemini API error (%s): %s", result.Error.Status, result.Error.Message)
		}
		return "", fmt.Errorf("gemini API returned status %d", resp.StatusCode())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := result.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// GenerateJSON sends a prompt and decodes the JSON document in the model's
// response into out. Markdown code fences around the JSON are tolerated.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, out interface{}, images ...ImagePart) error {
	text, err := c.GenerateText(ctx, prompt, images...)
	if err != nil {
		return err
	}

	payload, err := ExtractJSON(text)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("Model response contained no JSON", zap.String("model", c.model), zap.String("response", text))
		}
		return err
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("failed to decode model JSON: %w", err)
	}
	return nil
}

// ExtractJSON pulls the JSON array or object out of model text, stripping
// any surrounding markdown fences or prose.
func ExtractJSON(text string) (string, error) {
	// Prefer the content of a fenced block when present.
	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			text = rest[:end]
		} else {
			text = rest
		}
	} else if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		if end := strings.Index(rest, "```"); end >= 0 {
			text = rest[:end]
		} else {
			text = rest
		}
	}

	// Take the widest array first, then the widest object.
	for _, pair := range [][2]string{{"[", "]"}, {"{", "}"}} {
		start := strings.Index(text, pair[0])
		end := strings.LastIndex(text, pair[1])
		if start >= 0 && end > start {
			return text[start : end+1], nil
		}
	}
	return "", ErrNoJSON
}
