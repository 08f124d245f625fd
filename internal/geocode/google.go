package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/feretizpina/uber-slack/internal/domain/geo"
	"github.com/feretizpina/uber-slack/internal/observability"
)

// GoogleResolver performs geocode lookups against a Google-style geocoding
// endpoint. It implements geo.Resolver.
type GoogleResolver struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Config holds resolver configuration
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewGoogleResolver creates a resolver for a geocoding endpoint.
func NewGoogleResolver(cfg Config) *GoogleResolver {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &GoogleResolver{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Resolve geocodes an address and returns the first match's location.
// An empty result set maps to geo.ErrLocationNotFound.
func (g *GoogleResolver) Resolve(ctx context.Context, address string) (geo.Point, error) {
	q := url.Values{}
	q.Set("address", address)
	if g.apiKey != "" {
		q.Set("key", g.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return geo.Point{}, err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		observability.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return geo.Point{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observability.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return geo.Point{}, fmt.Errorf("geocoder returned %d", resp.StatusCode)
	}

	var out struct {
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		observability.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return geo.Point{}, err
	}

	if len(out.Results) == 0 {
		observability.GeocodeRequestsTotal.WithLabelValues("not_found").Inc()
		return geo.Point{}, geo.ErrLocationNotFound
	}

	observability.GeocodeRequestsTotal.WithLabelValues("ok").Inc()
	loc := out.Results[0].Geometry.Location
	return geo.Point{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
