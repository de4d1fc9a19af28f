package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ErrNotFound reports a lookup that completed but matched nothing,
// e.g. a word the dictionary does not know.
var ErrNotFound = errors.New("not found")

const (
	defaultWeatherBaseURL    = "http://api.openweathermap.org/data/2.5/weather"
	defaultDictionaryBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	defaultNewsBaseURL       = "https://newsapi.org/v2/top-headlines"
)

// Client performs the outbound weather, dictionary and news lookups.
// Every method returns a structured result or an error; callers are
// expected to report errors and carry on.
type Client struct {
	logger        zerolog.Logger
	httpClient    *http.Client
	weatherAPIKey string
	newsAPIKey    string

	weatherBaseURL    string
	dictionaryBaseURL string
	newsBaseURL       string
}

func NewClient(
	logger zerolog.Logger,
	timeout time.Duration,
	weatherAPIKey string,
	newsAPIKey string,
) *Client {
	return &Client{
		logger:            logger,
		httpClient:        &http.Client{Timeout: timeout},
		weatherAPIKey:     weatherAPIKey,
		newsAPIKey:        newsAPIKey,
		weatherBaseURL:    defaultWeatherBaseURL,
		dictionaryBaseURL: defaultDictionaryBaseURL,
		newsBaseURL:       defaultNewsBaseURL,
	}
}

// get performs the request and returns the response body along with
// the status code. Non-2xx responses are returned, not failed, since
// the APIs put their error messages in the body.
func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
