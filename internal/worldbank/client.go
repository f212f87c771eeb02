// Package worldbank implements the read-only client for the upstream
// World Bank indicator API.
package worldbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/httpx"
)

// Every import fetches the same fixed window, capped at one page.
const (
	dateRange = "2012:2017"
	perPage   = 1000
)

// ErrIndicatorNotFound means the upstream does not know the indicator code.
// The upstream signals this by omitting the records element of its response.
var ErrIndicatorNotFound = errors.New("worldbank: indicator not found")

// ErrUnavailable means the upstream could not be reached or answered with an
// unexpected status or payload.
var ErrUnavailable = errors.New("worldbank: upstream unavailable")

// Descriptor is the upstream's {id, value} pair used for both the indicator
// and the country of a record.
type Descriptor struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Record is one observation in the upstream response. Value is nil when the
// upstream has no measurement for that (country, year).
type Record struct {
	Indicator Descriptor `json:"indicator"`
	Country   Descriptor `json:"country"`
	Date      string     `json:"date"`
	Value     *float64   `json:"value"`
}

// Client fetches indicator time series over HTTP.
type Client struct {
	client *httpx.Client
	base   string
}

// NewClient creates a Client that talks to the World Bank API at baseURL.
func NewClient(client *httpx.Client, baseURL string) *Client {
	return &Client{client: client, base: baseURL}
}

// Indicator fetches all records for the given indicator code over the fixed
// 2012–2017 window. The upstream responds with a two-element JSON array of
// [metadata, records]; the metadata element is ignored.
func (c *Client) Indicator(ctx context.Context, code string) ([]Record, error) {
	endpoint := fmt.Sprintf("%s/v2/countries/all/indicators/%s?date=%s&format=json&per_page=%d",
		c.base, url.PathEscape(code), dateRange, perPage)

	resp, err := c.client.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var doc []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	// An unknown indicator yields a one-element document holding only an
	// error message; the records element is simply absent.
	if len(doc) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrIndicatorNotFound, code)
	}

	var records []Record
	if err := json.Unmarshal(doc[1], &records); err != nil {
		return nil, fmt.Errorf("%w: decode records: %v", ErrUnavailable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s has no records", ErrIndicatorNotFound, code)
	}

	return records, nil
}
