// Package astro computes sunset instants via the sunrise-sunset.org API.
package astro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sunwatch/slack-sunset-bot/internal/domain"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/entity"
)

const defaultBaseURL = "https://api.sunrise-sunset.org"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SunsetAt returns the UTC sunset instant for the place on the given
// calendar day.
func (c *Client) SunsetAt(ctx context.Context, place *entity.Place, date time.Time) (time.Time, error) {
	endpoint := fmt.Sprintf("%s/json?lat=%f&lng=%f&date=%s&formatted=0",
		c.baseURL, place.Lat, place.Lon, date.Format(domain.SunsetDateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrCalculationUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrCalculationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return time.Time{}, fmt.Errorf("%w: unexpected status %d", domain.ErrCalculationUnavailable, resp.StatusCode)
	}

	var payload struct {
		Results struct {
			Sunset string `json:"sunset"`
		} `json:"results"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrCalculationUnavailable, err)
	}

	if payload.Status != "OK" {
		return time.Time{}, fmt.Errorf("%w: api status %q", domain.ErrCalculationUnavailable, payload.Status)
	}

	sunset, err := time.Parse(time.RFC3339, payload.Results.Sunset)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad sunset %q", domain.ErrCalculationUnavailable, payload.Results.Sunset)
	}

	return sunset, nil
}
