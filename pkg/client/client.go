package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultPageSize is the number of records requested from paged list queries.
const DefaultPageSize = 100

// Client talks to the Zohar Media API: GraphQL for records, a REST endpoint
// for file uploads.
type Client struct {
	baseURL    string
	endpoint   string
	token      string
	pageSize   int
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithGraphQLEndpoint overrides the default {baseURL}/graphql endpoint.
func WithGraphQLEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithPageSize sets the limit sent with paged list queries.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// New creates a new API client.
func New(baseURL, token string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	c := &Client{
		baseURL:  baseURL,
		endpoint: baseURL + "/graphql",
		token:    token,
		pageSize: DefaultPageSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []graphQLErrorEntry        `json:"errors"`
}

type graphQLErrorEntry struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// run posts op and returns the raw value of its root field.
func (c *Client) run(ctx context.Context, op Operation, vars map[string]any) (json.RawMessage, error) {
	start := time.Now()
	var resp graphQLResponse
	err := c.doRequest(ctx, graphQLRequest{Query: op.Document, Variables: vars}, &resp)
	if err == nil && len(resp.Errors) > 0 {
		gqlErr := &GraphQLError{Code: resp.Errors[0].Extensions.Code}
		for _, e := range resp.Errors {
			gqlErr.Messages = append(gqlErr.Messages, e.Message)
		}
		err = gqlErr
	}
	if err != nil {
		c.logger.Warn("graphql request failed", "op", op.Name, "duration", time.Since(start), "error", err)
		return nil, fmt.Errorf("client.%s: %w", op.Name, err)
	}
	c.logger.Debug("graphql request", "op", op.Name, "duration", time.Since(start))

	raw, ok := resp.Data[op.Name]
	if !ok {
		return nil, fmt.Errorf("client.%s: %w", op.Name, errMissingField)
	}
	return raw, nil
}

func (c *Client) doRequest(ctx context.Context, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error  string              `json:"error"`
			Errors []graphQLErrorEntry `json:"errors"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil {
			if apiErr.Error != "" {
				return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
			}
			if len(apiErr.Errors) > 0 {
				return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Errors[0].Message}
			}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", errBadResponse, err)
	}
	return nil
}
