package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/keyterms"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the scoring service address used in local development.
const DefaultBaseURL = "http://localhost:5000"

// DefaultClientTimeout bounds a single call to the scoring service.
const DefaultClientTimeout = 30 * time.Second

const (
	extractPath = "/api/extract-keywords"
	healthPath  = "/api/health"
)

// Ensure Client implements keyterms.KeywordService at compile time.
var _ keyterms.KeywordService = (*Client)(nil)

// Client talks to the scoring service over its JSON API.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithClientTimeout sets the timeout for each request.
// Defaults to DefaultClientTimeout if not specified.
func WithClientTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client's own
// timeout is left as is.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimit caps outbound requests at rps per second.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a Client for the service at baseURL.
// An empty baseURL means DefaultBaseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultClientTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

type extractResponse struct {
	Status         string                `json:"status"`
	Error          string                `json:"error"`
	Keywords       []keyterms.ScoredTerm `json:"keywords"`
	Count          int                   `json:"count"`
	ExtractionTime float64               `json:"extraction_time"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ExtractKeywords submits the request's text and returns the scored terms.
func (c *Client) ExtractKeywords(ctx context.Context, req *keyterms.ExtractionRequest) (*keyterms.Extraction, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, unknownError()
	}

	status, raw, err := c.do(ctx, http.MethodPost, extractPath, body)
	if err != nil {
		return nil, err
	}

	var payload extractResponse
	decodeErr := json.Unmarshal(raw, &payload)

	if status < 200 || status > 299 {
		if decodeErr == nil && payload.Error != "" {
			return nil, keyterms.Errorf(keyterms.ESERVICE, "%s", payload.Error)
		}
		return nil, transportError()
	}
	if decodeErr != nil {
		return nil, transportError()
	}

	if payload.Status != "success" {
		msg := payload.Error
		if msg == "" {
			msg = keyterms.ServiceErrorMessage
		}
		return nil, keyterms.Errorf(keyterms.ESERVICE, "%s", msg)
	}

	for _, kw := range payload.Keywords {
		if kw.Score < 0 {
			return nil, transportError()
		}
	}

	return &keyterms.Extraction{
		Keywords:       payload.Keywords,
		Count:          payload.Count,
		ExtractionTime: payload.ExtractionTime,
	}, nil
}

// Health queries the service's health endpoint.
func (c *Client) Health(ctx context.Context) (*keyterms.Health, error) {
	status, raw, err := c.do(ctx, http.MethodGet, healthPath, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, transportError()
	}

	var payload healthResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, transportError()
	}

	return &keyterms.Health{Status: payload.Status, Message: payload.Message}, nil
}

// do sends one request and returns the status code and body. Errors are
// already mapped: ENETWORK if no response arrived, ETRANSPORT if the body
// could not be read, EUNKNOWN otherwise.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, unknownError()
		}
	}

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return 0, nil, unknownError()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return 0, nil, unknownError()
		}
		return 0, nil, keyterms.Errorf(keyterms.ENETWORK, "%s", keyterms.NetworkErrorMessage)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, transportError()
	}

	return resp.StatusCode, raw, nil
}

func transportError() error {
	return keyterms.Errorf(keyterms.ETRANSPORT, "%s", keyterms.TransportErrorMessage)
}

func unknownError() error {
	return keyterms.Errorf(keyterms.EUNKNOWN, "%s", keyterms.UnknownErrorMessage)
}
