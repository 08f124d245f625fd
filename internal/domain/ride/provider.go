package ride

import (
	"context"

	"github.com/feretizpina/uber-slack/internal/domain/geo"
)

// Product is a ride tier the provider offers at a location.
type Product struct {
	ProductID   string `json:"product_id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

// Estimate is a price/time quote for one product between two points.
type Estimate struct {
	// DurationSeconds is the estimated trip duration.
	DurationSeconds int
	// DisplayCost is the provider's formatted price range.
	DisplayCost string
	// SurgeMultiplier is >= 1.0; values above 1.0 require confirmation.
	SurgeMultiplier float64
	// SurgeConfirmationID is set only when SurgeMultiplier > 1.0.
	SurgeConfirmationID string
}

// Booking is the provider's acknowledgement of a ride request.
type Booking struct {
	RequestID  string
	ETASeconds int
}

// BookingRequest carries everything the provider's request endpoint needs.
// SurgeConfirmationID is sent only when non-empty.
type BookingRequest struct {
	Start               geo.Point
	End                 geo.Point
	ProductID           string
	SurgeConfirmationID string
}

// Provider is the ride-hailing API surface the interpreter depends on.
type Provider interface {
	// ListProducts returns products near a point, in provider order.
	ListProducts(ctx context.Context, at geo.Point) ([]Product, error)

	// EstimateTrip quotes a product between two points.
	EstimateTrip(ctx context.Context, start, end geo.Point, productID string) (*Estimate, error)

	// RequestRide places a ride request.
	RequestRide(ctx context.Context, req BookingRequest) (*Booking, error)
}
