// Package upstream proxies third-party language services so browser clients
// never hold the API credentials. Responses are passed through as-is; any
// transport failure or malformed body surfaces as an upstream error.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lingua/internal/middleware"
	"lingua/internal/models"
)

const requestTimeout = 10 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// do executes the request and returns the raw JSON body. Non-2xx statuses
// and bodies that are not valid JSON are reported as upstream failures so
// that callers never relay garbage to the client.
func do(client *http.Client, service string, req *http.Request) (json.RawMessage, error) {
	resp, err := client.Do(req)
	if err != nil {
		middleware.UpstreamRequests.WithLabelValues(service, "error").Inc()
		return nil, models.NewUpstreamError(service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		middleware.UpstreamRequests.WithLabelValues(service, "error").Inc()
		return nil, models.NewUpstreamError(service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		middleware.UpstreamRequests.WithLabelValues(service, "error").Inc()
		return nil, models.NewUpstreamError(service, fmt.Errorf("status %d", resp.StatusCode))
	}

	if !json.Valid(body) {
		middleware.UpstreamRequests.WithLabelValues(service, "error").Inc()
		return nil, models.NewUpstreamError(service, fmt.Errorf("non-JSON response"))
	}

	middleware.UpstreamRequests.WithLabelValues(service, "ok").Inc()
	return json.RawMessage(body), nil
}

func newJSONRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
