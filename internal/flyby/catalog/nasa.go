package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/flyby-predictor/internal/flyby"
)

// DefaultNASABaseURL is the NASA Earth imagery assets endpoint.
const DefaultNASABaseURL = "https://api.nasa.gov/planetary/earth/assets"

// dateLayouts are tried in order; zone-less dates are taken as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NASAEarthCatalog implements flyby.Catalog on top of the NASA Earth assets API.
type NASAEarthCatalog struct {
	name    string
	apiKey  string
	baseURL string
	begin   string
	end     string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NASAOption customizes a NASAEarthCatalog.
type NASAOption func(*NASAEarthCatalog)

// WithBaseURL points the catalog at another endpoint.
func WithBaseURL(u string) NASAOption {
	return func(c *NASAEarthCatalog) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithWindow restricts the lookup to captures between begin and end
// (YYYY-MM-DD). Either bound may be empty.
func WithWindow(begin, end string) NASAOption {
	return func(c *NASAEarthCatalog) {
		c.begin = begin
		c.end = end
	}
}

func NewNASAEarthCatalog(client *http.Client, apiKey string, opts ...NASAOption) *NASAEarthCatalog {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nasa-earth",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	c := &NASAEarthCatalog{
		name:    "nasa-earth",
		apiKey:  apiKey,
		baseURL: DefaultNASABaseURL,
		client:  client,
		circuit: cb,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *NASAEarthCatalog) Name() string {
	return c.name
}

func (c *NASAEarthCatalog) Fetch(ctx context.Context, coord flyby.Coordinate) (flyby.CaptureSet, error) {
	if c.apiKey == "" {
		return nil, &flyby.CatalogError{Err: fmt.Errorf("nasa api key is not configured")}
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
		values.Set("api_key", c.apiKey)
		if c.begin != "" {
			values.Set("begin", c.begin)
		}
		if c.end != "" {
			values.Set("end", c.end)
		}

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		// The API rejects cached responses over HTTPS.
		req.Header.Set("Cache-Control", "no-cache")
		return req, nil
	}

	resp, err := doRequest(ctx, c.client, c.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Count   int `json:"count"`
		Results []struct {
			Date string `json:"date"`
			ID   string `json:"id"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &flyby.CatalogError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}

	records := make(flyby.CaptureSet, 0, len(payload.Results))
	for _, r := range payload.Results {
		ts, err := parseDate(r.Date)
		if err != nil {
			return nil, &flyby.CatalogError{StatusCode: resp.StatusCode, Err: fmt.Errorf("capture %q: %w", r.ID, err)}
		}
		records = append(records, flyby.CaptureRecord{ID: r.ID, Date: ts})
	}

	return records, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
