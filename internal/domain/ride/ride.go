package ride

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents ride status
type Status string

const (
	// StatusPending means a surged estimate is waiting for the user to
	// confirm with the accept command.
	StatusPending Status = "pending"
	// StatusBooked means a request has been placed with the provider.
	StatusBooked Status = "booked"
)

// Ride represents one requested ride for a Slack user. Only the latest row
// per user matters: accept always operates on the most recently updated one.
type Ride struct {
	ID                  uuid.UUID `json:"id"`
	UserID              string    `json:"user_id"`
	ProductID           string    `json:"product_id"`
	StartLatitude       float64   `json:"start_latitude"`
	StartLongitude      float64   `json:"start_longitude"`
	EndLatitude         float64   `json:"end_latitude"`
	EndLongitude        float64   `json:"end_longitude"`
	SurgeConfirmationID string    `json:"surge_confirmation_id,omitempty"`
	RequestID           string    `json:"request_id,omitempty"`
	Status              Status    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ConfirmationWindow is how long a surge confirmation stays usable after the
// ride row was last touched. Past it the quote is re-derived from the stored
// coordinates instead of resending the token.
const ConfirmationWindow = 5 * time.Minute

// ConfirmationStale reports whether the surge confirmation on this ride can
// no longer be submitted as of now.
func (r *Ride) ConfirmationStale(now time.Time) bool {
	return now.Sub(r.UpdatedAt) > ConfirmationWindow
}

// Repository defines the interface for ride persistence
type Repository interface {
	// Create inserts a new ride and stamps CreatedAt/UpdatedAt.
	Create(ctx context.Context, ride *Ride) error

	// Update writes the ride back and bumps UpdatedAt.
	Update(ctx context.Context, ride *Ride) error

	// MostRecentByUser returns the user's most recently updated ride.
	// Returns ErrRideNotFound when the user has none.
	MostRecentByUser(ctx context.Context, userID string) (*Ride, error)
}

// Errors
var (
	ErrRideNotFound = errors.New("ride not found")
)
