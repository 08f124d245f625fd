package geo

import (
	"context"
	"errors"
)

// Point is a latitude/longitude pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Resolver turns free-text addresses into coordinates.
type Resolver interface {
	// Resolve geocodes an address and returns the best match.
	// Returns ErrLocationNotFound when the geocoder has no match; any
	// other error is a transport failure.
	Resolve(ctx context.Context, address string) (Point, error)
}

// Errors
var (
	ErrLocationNotFound = errors.New("location not found")
)
