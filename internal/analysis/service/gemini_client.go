package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	analysisDomain "github.com/septer/septer/internal/analysis/domain"
	apperrors "github.com/septer/septer/internal/errors"
)

// maxResponseBytes bounds the body read from the provider.
const maxResponseBytes = 8 << 20

// GeminiOptions configures a GeminiClient.
type GeminiOptions struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// GeminiClient calls the generateContent REST endpoint. Rate limiting and
// server errors are retried with exponential backoff.
type GeminiClient struct {
	http     *retryablehttp.Client
	endpoint string
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends prompt to the model and returns the concatenated text parts
// of the first candidate.
func (g *GeminiClient) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode llm request")
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Wrap(analysisDomain.ErrLLMRequestFailed, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return "", apperrors.Wrap(analysisDomain.ErrLLMRequestFailed, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", apperrors.Wrap(analysisDomain.ErrLLMRequestFailed, err.Error())
	}

	var decoded geminiResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", apperrors.Wrapf(analysisDomain.ErrLLMRequestFailed, "status %d: undecodable body", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}
		return "", apperrors.Wrapf(analysisDomain.ErrLLMRequestFailed, "status %d: %s", resp.StatusCode, msg)
	}

	if len(decoded.Candidates) == 0 {
		return "", apperrors.Wrap(analysisDomain.ErrLLMRequestFailed, "no candidates returned")
	}

	var text strings.Builder
	for _, part := range decoded.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

// NewGeminiClient creates a GeminiClient. Retry attempts are logged through logger.
func NewGeminiClient(opts GeminiOptions, logger *slog.Logger) *GeminiClient {
	client := retryablehttp.NewClient()
	client.RetryMax = opts.MaxRetries
	client.HTTPClient.Timeout = opts.Timeout
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = logger

	return &GeminiClient{
		http: client,
		endpoint: fmt.Sprintf(
			"%s/v1beta/models/%s:generateContent",
			strings.TrimRight(opts.BaseURL, "/"),
			url.PathEscape(opts.Model),
		),
	}
}
