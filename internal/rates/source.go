package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Veraticus/nichewise/internal/common"
)

// HTTPSource fetches authoritative category rates from a remote rate API.
// It implements service.RateSource.
type HTTPSource struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// rateResponse is the rate API's wire format.
type rateResponse struct {
	Category       string  `json:"category"`
	LongFormRPMUSD float64 `json:"long_form_rpm_usd"`
	AsOf           string  `json:"as_of"`
}

// NewHTTPSource creates a rate source for the given endpoint. The timeout
// bounds each request; the resolver treats a timeout like any other failure.
func NewHTTPSource(endpoint, apiKey string, timeout time.Duration) *HTTPSource {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &HTTPSource{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchRate retrieves the long-form RPM for a category.
func (s *HTTPSource) FetchRate(ctx context.Context, categoryID string) (float64, error) {
	u, err := url.JoinPath(s.endpoint, "rates", categoryID)
	if err != nil {
		return 0, fmt.Errorf("failed to build rate URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrRateUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return 0, fmt.Errorf("category %q: %w", categoryID, common.ErrNotFound)
	case http.StatusTooManyRequests:
		return 0, common.ErrRateLimit
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("%w: status %d - %s", common.ErrRateUnavailable, resp.StatusCode, string(body))
	}

	var rr rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrMalformedRate, err)
	}
	if rr.LongFormRPMUSD <= 0 {
		return 0, fmt.Errorf("%w: non-positive rate %f", common.ErrMalformedRate, rr.LongFormRPMUSD)
	}

	return rr.LongFormRPMUSD, nil
}
