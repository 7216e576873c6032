package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/flyby-predictor/internal/flyby"
)

var (
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// doRequest executes a single HTTP request through the circuit breaker.
// Lookups are never retried; every failure becomes a *flyby.CatalogError.
func doRequest(
	ctx context.Context,
	client *http.Client,
	cb *gobreaker.CircuitBreaker,
	buildRequest func(ctx context.Context) (*http.Request, error),
) (*http.Response, error) {
	if client == nil {
		return nil, &flyby.CatalogError{Err: errNoHTTPClient}
	}

	req, err := buildRequest(ctx)
	if err != nil {
		return nil, &flyby.CatalogError{Err: err}
	}

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, &flyby.CatalogError{Err: execErr}
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			defer resp.Body.Close()
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, &flyby.CatalogError{
				StatusCode: resp.StatusCode,
				Err:        errors.New(statusDetail(resp, b)),
			}
		}

		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &flyby.CatalogError{
				StatusCode: http.StatusServiceUnavailable,
				Err:        fmt.Errorf("%w: %v", errCircuitOpen, err),
			}
		}
		return nil, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, &flyby.CatalogError{Err: fmt.Errorf("unexpected result type from circuit breaker")}
	}
	return resp, nil
}

func statusDetail(resp *http.Response, body []byte) string {
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		return resp.Status
	}
	return detail
}
