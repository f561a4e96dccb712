// Package nbg fetches daily exchange rates published by the National Bank of
// Georgia.
//
// Rates are quoted against the Georgian lari (GEL), per a stated quantity of
// foreign-currency units (e.g. 100 JPY), so a conversion must always divide by
// the quantity and never assume it is 1.
package nbg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public NBG endpoint for daily rates.
const DefaultBaseURL = "https://nbg.gov.ge/gw/api/ct/monetarypolicy/currencies/en/json/"

// Timeout bounds a single rate fetch.
const Timeout = 10 * time.Second

// Currency is one published rate: the price in GEL of Quantity units of the
// foreign currency identified by Code.
type Currency struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Rate         decimal.Decimal `json:"rate"`
	Quantity     decimal.Decimal `json:"quantity"`
	RateFormated string          `json:"rateFormated"`
}

// Client queries the NBG daily rates API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client against the public NBG endpoint.
func New() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: Timeout},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// Rates fetches the rates published for 'day' (an ISO-8601 date string).
//
// The payload is a JSON array whose first element holds a "currencies" array;
// anything else is rejected before use.
func (c *Client) Rates(ctx context.Context, day string) ([]Currency, error) {
	addr := c.BaseURL + "?date=" + url.QueryEscape(day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch NBG rates for %s: %w", day, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Parse(body, day)
}

// Parse decodes a raw NBG payload into its currency list.
func Parse(body []byte, day string) ([]Currency, error) {
	// Probe the payload shape first: a strict unmarshal of a wrong shape gives
	// poor error messages, the probe names exactly what is missing.
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse NBG payload for %s: %w", day, err)
	}
	path := "$[0].currencies"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("no valid currency data for %s: %q %w", day, path, err)
	}
	if jlist, ok := jval.([]any); !ok || len(jlist) == 0 {
		return nil, fmt.Errorf("no valid currency data for %s: %q is empty", day, path)
	}

	var docs []struct {
		Date       string     `json:"date"`
		Currencies []Currency `json:"currencies"`
	}
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("cannot parse NBG payload for %s: %w", day, err)
	}
	return docs[0].Currencies, nil
}

// Find returns the currency with the given code, or false if it is not part of
// the published list.
func Find(currencies []Currency, code string) (Currency, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}
