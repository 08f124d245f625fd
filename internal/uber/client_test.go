package uber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feretizpina/uber-slack/internal/domain/geo"
	"github.com/feretizpina/uber-slack/internal/domain/ride"
)

// TestListProducts tests the products query and ordering
func TestListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/products", r.URL.Path)
		assert.Equal(t, "37.7749", r.URL.Query().Get("latitude"))
		assert.Equal(t, "-122.4194", r.URL.Query().Get("longitude"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"products": []map[string]interface{}{
				{"product_id": "a", "display_name": "uberX", "description": "everyday", "capacity": 4},
				{"product_id": "b", "display_name": "UberBLACK", "description": "premium", "capacity": 4},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}).WithToken("tok-1")

	products, err := client.ListProducts(context.Background(), geo.Point{Latitude: 37.7749, Longitude: -122.4194})

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "a", products[0].ProductID, "provider order must be preserved")
	assert.Equal(t, "uberX", products[0].DisplayName)
	assert.Equal(t, 4, products[0].Capacity)
}

// TestEstimateTrip tests the estimate request body and response mapping
func TestEstimateTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/requests/estimate", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 37.7749, body["start_latitude"])
		assert.Equal(t, -122.3969, body["end_longitude"])
		assert.Equal(t, "prod-x", body["product_id"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"trip":  map[string]interface{}{"duration_estimate": 600},
			"price": map[string]interface{}{"display": "$10-12", "surge_multiplier": 1.8, "surge_confirmation_id": "s-1"},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}).WithToken("tok-1")

	est, err := client.EstimateTrip(context.Background(),
		geo.Point{Latitude: 37.7749, Longitude: -122.4194},
		geo.Point{Latitude: 37.7899, Longitude: -122.3969},
		"prod-x")

	require.NoError(t, err)
	assert.Equal(t, 600, est.DurationSeconds)
	assert.Equal(t, "$10-12", est.DisplayCost)
	assert.Equal(t, 1.8, est.SurgeMultiplier)
	assert.Equal(t, "s-1", est.SurgeConfirmationID)
}

// TestRequestRide_SurgeTokenField tests that the surge confirmation id is
// present in the body only when set
func TestRequestRide_SurgeTokenField(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantField bool
	}{
		{name: "without surge token", token: "", wantField: false},
		{name: "with surge token", token: "surge-abc", wantField: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody map[string]interface{}
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/requests", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
				json.NewEncoder(w).Encode(map[string]interface{}{"request_id": "req-9", "eta": 240})
			}))
			defer srv.Close()

			client := NewClient(Config{BaseURL: srv.URL}).WithToken("tok-1")

			booking, err := client.RequestRide(context.Background(), ride.BookingRequest{
				Start:               geo.Point{Latitude: 1, Longitude: 2},
				End:                 geo.Point{Latitude: 3, Longitude: 4},
				ProductID:           "prod-x",
				SurgeConfirmationID: tt.token,
			})

			require.NoError(t, err)
			assert.Equal(t, "req-9", booking.RequestID)
			assert.Equal(t, 240, booking.ETASeconds)

			_, present := gotBody["surge_confirmation_id"]
			assert.Equal(t, tt.wantField, present)
			if tt.wantField {
				assert.Equal(t, tt.token, gotBody["surge_confirmation_id"])
			}
		})
	}
}

// TestClient_ProviderError tests that non-2xx responses surface as errors
func TestClient_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.ListProducts(context.Background(), geo.Point{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

// TestWithToken_DoesNotMutateBase tests token scoping
func TestWithToken_DoesNotMutateBase(t *testing.T) {
	base := NewClient(Config{BaseURL: "http://example.test"})
	scoped := base.WithToken("tok-1")

	assert.Empty(t, base.token)
	assert.Equal(t, "tok-1", scoped.token)
}
