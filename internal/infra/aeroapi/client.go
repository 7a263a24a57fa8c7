// Package aeroapi looks up flight status through FlightAware AeroAPI.
package aeroapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gabapcia/oraclewatch/internal/eventsource"
)

const (
	// DefaultBaseURL is the AeroAPI v4 root.
	DefaultBaseURL = "https://aeroapi.flightaware.com/aeroapi"

	apiKeyHeader = "x-apikey"
)

// ErrUnexpectedStatus is returned for responses other than 200 and 404.
var ErrUnexpectedStatus = errors.New("unexpected http status")

type (
	flightResponse struct {
		Ident       string     `json:"ident"`
		FaFlightID  string     `json:"fa_flight_id"`
		ScheduledIn *time.Time `json:"scheduled_in"`
		EstimatedIn *time.Time `json:"estimated_in"`
		ActualIn    *time.Time `json:"actual_in"`
		Status      string     `json:"status"`
	}

	flightsResponse struct {
		Flights []flightResponse `json:"flights"`
	}
)

func (f flightResponse) toFlightRecord() eventsource.FlightRecord {
	return eventsource.FlightRecord{
		Ident:       f.Ident,
		ScheduledIn: f.ScheduledIn,
		ActualIn:    f.ActualIn,
	}
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ eventsource.FlightStatusFeed = (*client)(nil)

// NewClient creates an AeroAPI client. An empty baseURL uses DefaultBaseURL.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// LatestFlight returns the first record of /flights/{ident}, which AeroAPI
// orders from the most recent flight.
func (c *client) LatestFlight(ctx context.Context, ident string) (eventsource.FlightRecord, bool, error) {
	endpoint := c.baseURL + "/flights/" + url.PathEscape(ident)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return eventsource.FlightRecord{}, false, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return eventsource.FlightRecord{}, false, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return eventsource.FlightRecord{}, false, nil
	default:
		return eventsource.FlightRecord{}, false, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var body flightsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return eventsource.FlightRecord{}, false, fmt.Errorf("decode flights: %w", err)
	}

	if len(body.Flights) == 0 {
		return eventsource.FlightRecord{}, false, nil
	}

	return body.Flights[0].toFlightRecord(), true, nil
}
