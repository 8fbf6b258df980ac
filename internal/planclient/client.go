// Package planclient talks to the remote planning service.
//
// Each Submit is exactly one POST to {endpoint}/api/plan. There are no retries
// and no client-imposed timeout beyond what the injected *http.Client carries.
// Every failure is returned as an *errors.ClientError that keeps the HTTP status
// and raw body for display. Successful bodies are decoded into the closed
// trip.Response union here, at the boundary, so nothing downstream ever looks at
// untyped JSON.
package planclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/Iron-Ham/tripplan/internal/errors"
	"github.com/Iron-Ham/tripplan/internal/logging"
	"github.com/Iron-Ham/tripplan/internal/metrics"
	"github.com/Iron-Ham/tripplan/internal/trip"
)

// Routes on the planning service.
const (
	PlanPath   = "/api/plan"
	HealthPath = "/api/health"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// requiredPlanKeys must be present for a body to count as a PlanResult.
var requiredPlanKeys = []string{"request_summary", "itinerary", "price_breakdown"}

// Client is a planning service client. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	logger     *logging.Logger
	metrics    *metrics.Metrics
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records request latency into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		logger:     logging.NopLogger(),
		userAgent:  "tripplan",
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("planclient")
	return c
}

// Submit sends req to {endpoint}/api/plan and decodes the answer.
func (c *Client) Submit(ctx context.Context, endpoint string, req trip.PlanRequest) (trip.Response, error) {
	url := endpoint + PlanPath
	start := time.Now()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, c.fail(url, start, errors.NewMalformedResponseError("encode request", err).WithURL(url))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, c.fail(url, start, errors.NewTransportError(err).WithURL(url))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("sending plan request", "url", url, "destination", req.Destination, "days", req.Days)

	raw, status, cerr := c.do(httpReq)
	if cerr != nil {
		return nil, c.fail(url, start, cerr.WithURL(url))
	}

	resp, decErr := DecodeResponse(raw)
	if decErr != nil {
		return nil, c.fail(url, start, decErr.WithURL(url).WithStatus(status, string(raw)))
	}

	c.metrics.ObserveRequest(PlanPath, "ok", time.Since(start))
	c.logger.Info("plan request completed", "url", url, "status", status, "variant", variantName(resp))
	return resp, nil
}

// do performs the request and returns the body of a 2xx response. Non-2xx
// responses become HTTP status errors carrying whatever body could be read.
func (c *Client) do(req *http.Request) ([]byte, int, *errors.ClientError) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// the body is best effort here; a read failure leaves it empty
		return nil, resp.StatusCode, errors.NewHTTPStatusError(resp.StatusCode, string(raw))
	}
	if readErr != nil {
		return nil, resp.StatusCode, errors.NewTransportError(readErr).WithStatus(resp.StatusCode, "")
	}
	return raw, resp.StatusCode, nil
}

func (c *Client) fail(url string, start time.Time, err *errors.ClientError) error {
	c.metrics.ObserveRequest(routeOf(url), err.Kind.String(), time.Since(start))
	c.logger.Warn("planning request failed",
		"url", url,
		"kind", err.Kind.String(),
		"status", err.StatusCode,
		"error", err.Error(),
	)
	return err
}

// DecodeResponse discriminates a 2xx body into NeedsInfo or PlanResult.
// A body whose status is "need_more_info" is NeedsInfo; anything else must
// carry request_summary, itinerary and price_breakdown.
func DecodeResponse(raw []byte) (trip.Response, *errors.ClientError) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.NewMalformedResponseError("body is not a JSON object", err)
	}
	if payload == nil {
		return nil, errors.NewMalformedResponseError("body is null", nil)
	}

	if status, _ := payload["status"].(string); status == trip.StatusNeedMoreInfo {
		var info trip.NeedsInfo
		if err := decode(payload, &info); err != nil {
			return nil, errors.NewMalformedResponseError("decode need_more_info payload", err)
		}
		return info, nil
	}

	for _, key := range requiredPlanKeys {
		if v, ok := payload[key]; !ok || v == nil {
			return nil, errors.NewMalformedResponseError("plan result missing "+key, nil)
		}
	}

	var result trip.PlanResult
	if err := decode(payload, &result); err != nil {
		return nil, errors.NewMalformedResponseError("decode plan result", err)
	}
	return result, nil
}

func decode(input map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func variantName(r trip.Response) string {
	switch r.(type) {
	case trip.NeedsInfo:
		return "needs_info"
	case trip.PlanResult:
		return "plan_result"
	default:
		return "unknown"
	}
}

func routeOf(url string) string {
	if strings.HasSuffix(url, HealthPath) {
		return HealthPath
	}
	return PlanPath
}
