// Package propresenter provides a client for ProPresenter's local HTTP API.
// Every call is a single best-effort request; failures are folded into a
// uniform error result rather than surfaced as Go errors, so no tool call
// ever fails past the client boundary.
package propresenter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/trop3n/propresenter-mcp-server/metrics"
	"github.com/trop3n/propresenter-mcp-server/tracing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is the uniform response mapping returned by every tool.
//
// On success it is the remote API's JSON body verbatim (no envelope); on
// failure it is {"status": "error", "message": ..., "status_code": ...}.
// Callers distinguish the two by the presence of a top-level "status" key
// with the value "error". Success bodies that are not JSON objects (arrays,
// scalars, plain text) are wrapped under a "data" key because a Go mapping
// cannot carry them at the top level.
type Result = map[string]any

// SuccessMessage is returned for 2xx responses with an empty body.
const SuccessMessage = "Action completed successfully."

// Client issues requests against a single ProPresenter instance.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the URL derived from the config (used by tests)
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// NewClient creates a new ProPresenter API client
func NewClient(config *Config, logger *slog.Logger, opts ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}

	c := &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		logger:  logger,
		baseURL: config.BaseURL(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Call performs one HTTP request against baseURL+endpoint and classifies the
// outcome into a Result. body, when non-nil, is JSON-encoded into the request.
// It never returns a transport or HTTP error to the caller.
func (c *Client) Call(ctx context.Context, method, endpoint string, body any) Result {
	ctx, span := tracing.StartSpan(ctx, "propresenter.api")
	defer span.End()
	tracing.AddAPIAttributes(span, method, endpoint)

	fullURL := c.baseURL + endpoint
	c.logger.Debug("Calling ProPresenter API", "method", method, "url", fullURL)

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return c.fail(method, endpoint, errorResult(fmt.Sprintf("Failed to encode request body: %v", err)))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return c.fail(method, endpoint, errorResult(fmt.Sprintf("Failed to build request for %s: %v", endpoint, err)))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APILatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ConnectionFailures.Inc()
		tracing.RecordError(span, err)
		c.logger.Warn("ProPresenter unreachable", "target", c.config.Target(), "error", err)
		return c.fail(method, endpoint, errorResult(fmt.Sprintf(
			"Could not connect to ProPresenter at %s. Check that ProPresenter is running and that 'Enable Network' is turned on in Preferences > Network. (%v)",
			c.config.Target(), err)))
	}

	raw, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return c.fail(method, endpoint, errorResult(fmt.Sprintf("Failed to read response from %s: %v", endpoint, err)))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(method, endpoint, classifyStatus(resp.StatusCode, endpoint))
	}

	metrics.APIRequestsTotal.WithLabelValues(method, endpoint, "success").Inc()
	return parseSuccessBody(raw)
}

// fail records an error outcome and passes the result through unchanged.
func (c *Client) fail(method, endpoint string, res Result) Result {
	metrics.APIRequestsTotal.WithLabelValues(method, endpoint, "error").Inc()
	return res
}

// classifyStatus maps a non-2xx response to an error result with a
// status-specific message.
func classifyStatus(code int, endpoint string) Result {
	var message string
	switch {
	case code == http.StatusNotFound:
		message = fmt.Sprintf("Endpoint %s was not found. This ProPresenter version may not support it.", endpoint)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		message = "ProPresenter rejected the request. The network API likely requires authentication."
	case code == http.StatusInternalServerError:
		message = "ProPresenter reported an internal error handling the request."
	default:
		message = fmt.Sprintf("HTTP %d", code)
	}
	return errorResultWithCode(message, code)
}

// parseSuccessBody turns a 2xx body into a Result. Empty bodies (204 or a
// bare 200) become a generic success message; JSON objects pass through
// verbatim; anything else is carried under a "data" key.
func parseSuccessBody(raw []byte) Result {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Result{"status": "success", "message": SuccessMessage}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Result{"status": "success", "data": string(raw)}
	}

	if obj, ok := parsed.(map[string]any); ok {
		return obj
	}
	return Result{"status": "success", "data": parsed}
}

// errorResult builds the uniform error shape without a status code.
func errorResult(message string) Result {
	return Result{"status": "error", "message": message}
}

// errorResultWithCode builds the uniform error shape for an HTTP status.
func errorResultWithCode(message string, code int) Result {
	return Result{"status": "error", "message": message, "status_code": code}
}

// IsError reports whether a result is the uniform error shape.
func IsError(res Result) bool {
	status, ok := res["status"].(string)
	return ok && status == "error"
}
