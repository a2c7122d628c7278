package adapters

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"dicom-ingest-service/internal/apperrors"
)

// Fetcher downloads raw bytes from a remote URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Compile-time check to ensure HTTPFetcher implements Fetcher.
var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcher downloads files over HTTP with a bounded timeout. Any transport
// failure or non-2xx status is reported as *apperrors.FetchError.
type HTTPFetcher struct {
	client *http.Client
	logger *zap.SugaredLogger
}

// NewHTTPFetcher creates an HTTPFetcher with the given overall request timeout.
func NewHTTPFetcher(timeout time.Duration, logger *zap.SugaredLogger) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewFetchError(url, 0, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError(url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apperrors.NewFetchError(url, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewFetchError(url, resp.StatusCode, err)
	}

	f.logger.Debugw("remote file fetched", "url", url, "bytes", len(body))
	return body, nil
}
