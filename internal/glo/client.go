// Package glo talks to the public lottery results API.
package glo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/history"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/logger"
)

// DefaultBaseURL is the public results mirror.
const DefaultBaseURL = "https://lotto.api.rayriffy.com"

// DefaultTimeout bounds a fetch when no timeout is configured.
const DefaultTimeout = 8 * time.Second

// ErrNoResult means the API answered but carried no draw result.
var ErrNoResult = errors.New("response carries no draw result")

// dateFormats are the accepted spellings of the published draw date,
// tried in order. The first one that parses wins.
var dateFormats = []string{
	"2 January 2006",
	"2 Jan 2006",
}

// Client fetches official draw results over HTTP. One request per call,
// bounded by the client timeout; failures are reported to the caller,
// never fatal.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// LatestDraw is one published draw result. Date is zero when the raw date
// string matched none of the accepted formats; the number is then
// display-only and must not be written back to the store, because there is
// no normalized date to deduplicate against.
type LatestDraw struct {
	RawDate string
	Number  string
	Date    time.Time
}

// DateKnown reports whether the raw date parsed into a calendar day.
func (d LatestDraw) DateKnown() bool {
	return !d.Date.IsZero()
}

// Record converts the draw into a storable record. It reports false when
// the date is unknown.
func (d LatestDraw) Record() (history.Record, bool) {
	if !d.DateKnown() {
		return history.Record{}, false
	}
	return history.Record{Date: history.DateOf(d.Date), Number: d.Number}, true
}

// FetchLatest retrieves the most recently published draw.
func (c *Client) FetchLatest(ctx context.Context) (*LatestDraw, error) {
	return c.fetch(ctx, c.baseURL+"/latest")
}

// FetchResult retrieves the draw published on a specific day. Days without
// a published draw come back as an error from the API.
func (c *Client) FetchResult(ctx context.Context, date time.Time) (*LatestDraw, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/lotto/%s", c.baseURL, date.Format("2006-01-02")))
}

func (c *Client) fetch(ctx context.Context, url string) (*LatestDraw, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach results API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: HTTP 404 from %s", ErrNoResult, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, string(body))
	}

	draw, err := decodeDraw(body)
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetched draw result",
		"url", url,
		"date", draw.RawDate,
		"number", draw.Number,
		"elapsed", time.Since(start))
	return draw, nil
}

func decodeDraw(body []byte) (*LatestDraw, error) {
	var payload struct {
		Response struct {
			Date           string `json:"date"`
			RunningNumbers []struct {
				Number []string `json:"number"`
			} `json:"runningNumbers"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	running := payload.Response.RunningNumbers
	if len(running) == 0 || len(running[0].Number) == 0 {
		return nil, ErrNoResult
	}
	number := running[0].Number[0]
	if !history.ValidNumber(number) {
		return nil, fmt.Errorf("malformed draw number %q", number)
	}

	draw := &LatestDraw{RawDate: payload.Response.Date, Number: number}
	if parsed, ok := parseDrawDate(payload.Response.Date); ok {
		draw.Date = parsed
	}
	return draw, nil
}

// parseDrawDate tries the accepted date spellings in order.
func parseDrawDate(raw string) (time.Time, bool) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
