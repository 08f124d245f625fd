package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feretizpina/uber-slack/internal/domain/geo"
)

// TestResolve_FirstMatch tests that the first result's location wins
func TestResolve_FirstMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1061 market street san francisco", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"geometry": map[string]interface{}{"location": map[string]float64{"lat": 37.7793, "lng": -122.4139}}},
				{"geometry": map[string]interface{}{"location": map[string]float64{"lat": 0, "lng": 0}}},
			},
		})
	}))
	defer srv.Close()

	resolver := NewGoogleResolver(Config{BaseURL: srv.URL, APIKey: "test-key"})

	point, err := resolver.Resolve(context.Background(), "1061 market street san francisco")

	require.NoError(t, err)
	assert.Equal(t, geo.Point{Latitude: 37.7793, Longitude: -122.4139}, point)
}

// TestResolve_NoMatch tests the not-found mapping
func TestResolve_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
	}))
	defer srv.Close()

	resolver := NewGoogleResolver(Config{BaseURL: srv.URL})

	_, err := resolver.Resolve(context.Background(), "gibberish address")

	assert.ErrorIs(t, err, geo.ErrLocationNotFound)
}

// TestResolve_TransportFailure tests that geocoder errors are not masked
// as not-found
func TestResolve_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resolver := NewGoogleResolver(Config{BaseURL: srv.URL})

	_, err := resolver.Resolve(context.Background(), "1 main st")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, geo.ErrLocationNotFound)
}
