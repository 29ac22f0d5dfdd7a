// ABOUTME: Page fetcher service retrieving raw HTML with a browser-like identity
// ABOUTME: Single GET attempt; non-2xx responses surface as FetchError with status text

package fetch

import (
	"context"
	"io"

	coreerrors "cardforge-api/core/errors"
	"cardforge-api/core/interfaces"
)

// browserUserAgent is the fixed desktop-browser identity sent on page fetches
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Service fetches source pages over HTTP
type Service struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewService creates a new page fetcher
func NewService(httpClient interfaces.HTTPClient, logger interfaces.Logger) *Service {
	return &Service{
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchPage retrieves the raw HTML for a URL. One attempt, no retries; a
// non-2xx status or transport failure returns a FetchError.
func (s *Service) FetchPage(ctx context.Context, url string) (string, error) {
	resp, err := s.httpClient.Get(ctx, url, map[string]string{
		"User-Agent": browserUserAgent,
	})
	if err != nil {
		s.logger.Error("Page fetch failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return "", &coreerrors.FetchError{URL: url}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		s.logger.Warn("Page fetch returned non-2xx status", map[string]interface{}{
			"url":    url,
			"status": resp.StatusCode(),
		})
		return "", &coreerrors.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to read response body")
	}

	return string(body), nil
}
