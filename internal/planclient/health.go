package planclient

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Iron-Ham/tripplan/internal/errors"
)

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status  string `json:"status" yaml:"status"`
	Service string `json:"service" yaml:"service"`
}

// OK reports whether the service declared itself healthy.
func (h HealthStatus) OK() bool {
	return h.Status == "ok"
}

// Health probes {endpoint}/api/health.
func (c *Client) Health(ctx context.Context, endpoint string) (HealthStatus, error) {
	url := endpoint + HealthPath
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return HealthStatus{}, c.fail(url, start, errors.NewTransportError(err).WithURL(url))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	raw, status, cerr := c.do(req)
	if cerr != nil {
		return HealthStatus{}, c.fail(url, start, cerr.WithURL(url))
	}

	var hs HealthStatus
	if err := json.Unmarshal(raw, &hs); err != nil {
		return HealthStatus{}, c.fail(url, start,
			errors.NewMalformedResponseError("decode health payload", err).WithURL(url).WithStatus(status, string(raw)))
	}

	c.metrics.ObserveRequest(HealthPath, "ok", time.Since(start))
	c.logger.Debug("health probe completed", "url", url, "status", hs.Status, "service", hs.Service)
	return hs, nil
}
