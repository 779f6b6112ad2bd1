// Package analysis is a thin client for the external image-analysis backend
// used by the browser extension: it uploads a shopping-page screenshot plus
// capture metadata and returns the service's sustainability verdict. The
// service itself is an external collaborator; nothing here interprets the
// scores.
package analysis

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ecocart/backend/internal/domain"
)

// envelope is the service's response wrapper: either an analysis object or an
// error string.
type envelope struct {
	Analysis *domain.AnalysisResult `json:"analysis"`
	Error    string                 `json:"error"`
}

// Client talks to the image-analysis backend.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for the analysis backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: http}
}

// AnalyzeImage uploads an image with its capture metadata and returns the
// parsed verdict. Failures (transport, non-2xx, error envelope, missing
// analysis object) all surface as ErrAnalysisFailure.
func (c *Client) AnalyzeImage(ctx context.Context, filename string, image []byte, pageURL, title string) (*domain.AnalysisResult, error) {
	var result envelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("image", filename, bytes.NewReader(image)).
		SetFormData(map[string]string{
			"page_url": pageURL,
			"title":    title,
		}).
		SetResult(&result).
		Post("/analyze-image")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAnalysisFailure, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", domain.ErrAnalysisFailure, resp.StatusCode())
	}
	if result.Error != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrAnalysisFailure, result.Error)
	}
	if result.Analysis == nil {
		return nil, fmt.Errorf("%w: response missing analysis object", domain.ErrAnalysisFailure)
	}

	return result.Analysis, nil
}
