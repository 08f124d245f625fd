package auth

import (
	"context"
	"errors"
	"time"
)

// Authorization holds the provider OAuth tokens for one Slack user.
type Authorization struct {
	UserID       string    `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Repository defines the interface for authorization storage
type Repository interface {
	// Save stores the authorization, replacing any previous one for the user.
	Save(ctx context.Context, a *Authorization) error

	// GetByUser returns the stored authorization for a user.
	// Returns ErrAuthorizationNotFound when the user never linked an account
	// or the tokens have expired out of the store.
	GetByUser(ctx context.Context, userID string) (*Authorization, error)
}

// Errors
var (
	ErrAuthorizationNotFound = errors.New("authorization not found")
)
