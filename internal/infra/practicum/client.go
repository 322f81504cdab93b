// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the Practicum homework statuses API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// maxErrorBody bounds how much of a non-200 body ends up in the error text.
const maxErrorBody = 512

// ClientConfig contains configuration for the homework API client.
type ClientConfig struct {
	Endpoint string
	Token    string
	// Timeout of a single request; zero means no timeout.
	Timeout time.Duration
}

// Client fetches homework statuses. It never retries; the poller's interval does.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     logrus.FieldLogger
}

func NewClient(config ClientConfig, logger logrus.FieldLogger) *Client {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// Fetch returns the raw statuses payload for changes made since fromDate (unix seconds).
// Transport failures match homework.ErrGetData, any status other than 200
// matches homework.ErrInvalidStatusCode.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (homework.Payload, error) {
	endpoint, err := url.Parse(c.config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint %q: %w", homework.ErrGetData, c.config.Endpoint, err)
	}
	query := endpoint.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", homework.ErrGetData, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.config.Token)
	req.Header.Set("Accept", "application/json")

	c.logger.WithFields(logrus.Fields{
		"endpoint":  c.config.Endpoint,
		"from_date": fromDate,
	}).Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %w", homework.ErrGetData, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &homework.StatusCodeError{Code: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", homework.ErrGetData, err)
	}
	c.logger.WithField("bytes", len(body)).Debug("Homework statuses received")
	return homework.Payload(body), nil
}
