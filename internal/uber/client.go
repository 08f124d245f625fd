package uber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/feretizpina/uber-slack/internal/domain/geo"
	"github.com/feretizpina/uber-slack/internal/domain/ride"
	"github.com/feretizpina/uber-slack/internal/observability"
)

// Client talks to the Uber-style ride API. It implements ride.Provider.
// A Client carries no user credentials until WithToken scopes a copy to
// one user's access token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Config holds client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates an unauthorized client for a provider endpoint.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of the client that authorizes requests with the
// given bearer token.
func (c *Client) WithToken(token string) *Client {
	scoped := *c
	scoped.token = token
	return &scoped
}

// ListProducts returns products near a point, in provider order.
func (c *Client) ListProducts(ctx context.Context, at geo.Point) ([]ride.Product, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(at.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(at.Longitude, 'f', -1, 64))

	var out struct {
		Products []ride.Product `json:"products"`
	}
	if err := c.get(ctx, "/v1/products?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out.Products, nil
}

// EstimateTrip quotes a product between two points.
func (c *Client) EstimateTrip(ctx context.Context, start, end geo.Point, productID string) (*ride.Estimate, error) {
	body := map[string]interface{}{
		"start_latitude":  start.Latitude,
		"start_longitude": start.Longitude,
		"end_latitude":    end.Latitude,
		"end_longitude":   end.Longitude,
		"product_id":      productID,
	}

	var out struct {
		Trip struct {
			DurationEstimate int `json:"duration_estimate"`
		} `json:"trip"`
		Price struct {
			Display             string  `json:"display"`
			SurgeMultiplier     float64 `json:"surge_multiplier"`
			SurgeConfirmationID string  `json:"surge_confirmation_id"`
		} `json:"price"`
	}
	if err := c.post(ctx, "/v1/requests/estimate", body, &out); err != nil {
		return nil, fmt.Errorf("estimate trip: %w", err)
	}

	return &ride.Estimate{
		DurationSeconds:     out.Trip.DurationEstimate,
		DisplayCost:         out.Price.Display,
		SurgeMultiplier:     out.Price.SurgeMultiplier,
		SurgeConfirmationID: out.Price.SurgeConfirmationID,
	}, nil
}

// RequestRide places a ride request. The surge confirmation id is sent only
// when present on the request.
func (c *Client) RequestRide(ctx context.Context, req ride.BookingRequest) (*ride.Booking, error) {
	body := map[string]interface{}{
		"start_latitude":  req.Start.Latitude,
		"start_longitude": req.Start.Longitude,
		"end_latitude":    req.End.Latitude,
		"end_longitude":   req.End.Longitude,
		"product_id":      req.ProductID,
	}
	if req.SurgeConfirmationID != "" {
		body["surge_confirmation_id"] = req.SurgeConfirmationID
	}

	var out struct {
		RequestID string `json:"request_id"`
		ETA       int    `json:"eta"`
	}
	if err := c.post(ctx, "/v1/requests", body, &out); err != nil {
		return nil, fmt.Errorf("request ride: %w", err)
	}

	return &ride.Booking{RequestID: out.RequestID, ETASeconds: out.ETA}, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	observability.ProviderRequestDuration.WithLabelValues(req.URL.Path).Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, snippet)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
