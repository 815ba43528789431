package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://api.notion.com/v1"
	DefaultVersion = "2022-06-28"

	// MaxPageSize is the largest page the service returns.
	MaxPageSize = 100
)

// Config holds Notion client configuration.
type Config struct {
	APIKey         string
	BaseURL        string
	Version        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the Notion REST API.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	version        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new Notion client.
func New(cfg Config, logger *slog.Logger) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		version:        cfg.Version,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "notion"),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.version == "" {
		c.version = DefaultVersion
	}
	if c.maxAttempts < 1 {
		c.maxAttempts = 1
	}
	return c
}

type queryBody struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
}

// QueryDatabase runs a filtered, sorted query against a database.
func (c *Client) QueryDatabase(ctx context.Context, req QueryRequest) (*PageList, error) {
	body, err := json.Marshal(queryBody{
		Filter:      req.Filter,
		Sorts:       req.Sorts,
		PageSize:    req.PageSize,
		StartCursor: req.StartCursor,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	endpoint := fmt.Sprintf("%s/databases/%s/query", c.baseURL, url.PathEscape(req.DatabaseID))

	var resp PageList
	if err := c.call(ctx, http.MethodPost, endpoint, body, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("queried database",
		"database_id", req.DatabaseID,
		"results", len(resp.Results),
		"has_more", resp.HasMore,
	)

	return &resp, nil
}

// ListBlockChildren returns one page of a block's children.
func (c *Client) ListBlockChildren(ctx context.Context, req ListBlocksRequest) (*BlockList, error) {
	q := url.Values{}
	if req.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(req.PageSize))
	}
	if req.StartCursor != "" {
		q.Set("start_cursor", req.StartCursor)
	}

	endpoint := fmt.Sprintf("%s/blocks/%s/children", c.baseURL, url.PathEscape(req.BlockID))
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var resp BlockList
	if err := c.call(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("listed block children",
		"block_id", req.BlockID,
		"results", len(resp.Results),
		"has_more", resp.HasMore,
	)

	return &resp, nil
}

func (c *Client) call(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.doRequest(ctx, method, endpoint, body, out)
		if err == nil {
			return nil
		}

		if attempt == c.maxAttempts || !retryable(err) {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return err
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func decodeAPIError(resp *http.Response) *APIError {
	var apiErr APIError
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err := json.Unmarshal(data, &apiErr); err != nil || apiErr.Code == "" {
		apiErr = APIError{
			Code:    codeForStatus(resp.StatusCode),
			Message: http.StatusText(resp.StatusCode),
		}
	}
	apiErr.Status = resp.StatusCode
	return &apiErr
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusTooManyRequests:
		return "rate_limited"
	case status == http.StatusNotFound:
		return "object_not_found"
	case status == http.StatusUnauthorized:
		return "unauthorized"
	case status == http.StatusForbidden:
		return "restricted_resource"
	case status >= 500:
		return "internal_server_error"
	default:
		return "invalid_request"
	}
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return true
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if c.maxBackoff > 0 && backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
