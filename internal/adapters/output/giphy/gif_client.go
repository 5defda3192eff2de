package giphy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mindspace-api/configs"
	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/output"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// Compile-time check to ensure GifClientAdapter implements GifClient interface
var _ output.GifClient = (*GifClientAdapter)(nil)

const (
	// DefaultBaseURL is the Giphy random endpoint host
	DefaultBaseURL = "https://api.giphy.com"

	// Giphy's free tier allows 100 calls per hour
	defaultRequestsPerHour = 100
	requestTimeout         = 5 * time.Second
	maxBodySize            = 1 << 20
)

// GifClientAdapter struct - Output adapter for the Giphy random GIF API
type GifClientAdapter struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	tag        string
	rating     string
	limiter    *rate.Limiter
}

// NewGifClientAdapter func
func NewGifClientAdapter(config configs.Giphy) *GifClientAdapter {
	perHour := config.RequestsPerHour
	if perHour <= 0 {
		perHour = defaultRequestsPerHour
	}

	return &GifClientAdapter{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    DefaultBaseURL,
		apiKey:     config.APIKey,
		tag:        config.Tag,
		rating:     config.Rating,
		limiter:    rate.NewLimiter(rate.Every(time.Hour/time.Duration(perHour)), perHour),
	}
}

// RandomGifURL fetches one random GIF and returns its original rendition URL
func (a *GifClientAdapter) RandomGifURL(ctx context.Context) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("%w: giphy api key not configured", domain.ErrUpstreamUnavailable)
	}
	if !a.limiter.Allow() {
		return "", fmt.Errorf("%w: giphy request budget exhausted", domain.ErrUpstreamUnavailable)
	}

	query := url.Values{}
	query.Set("api_key", a.apiKey)
	if a.tag != "" {
		query.Set("tag", a.tag)
	}
	if a.rating != "" {
		query.Set("rating", a.rating)
	}
	endpoint := strings.TrimSuffix(a.baseURL, "/") + "/v1/gifs/random?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build giphy request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", domain.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"error":  gjson.GetBytes(body, "meta.msg").String(),
		}).Warn("Giphy request failed")
		return "", fmt.Errorf("%w: giphy status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return "", errors.New("giphy returned malformed json")
	}

	gifURL := gjson.GetBytes(body, "data.images.original.url").String()
	if gifURL == "" {
		return "", errors.New("giphy response has no image url")
	}

	return gifURL, nil
}
