package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/feretizpina/uber-slack/internal/domain/auth"
)

// AuthRedis stores provider authorizations in Redis, expiring with the
// access token so stale credentials age out on their own.
type AuthRedis struct {
	client *redis.Client
}

// NewAuthRedis creates an authorization store.
func NewAuthRedis(client *redis.Client) *AuthRedis {
	return &AuthRedis{client: client}
}

func authKey(userID string) string {
	return fmt.Sprintf("auth:%s", userID)
}

// Save stores the authorization with a TTL matching the token lifetime.
func (s *AuthRedis) Save(ctx context.Context, a *auth.Authorization) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return err
	}

	ttl := time.Until(a.ExpiresAt)
	if ttl <= 0 {
		// Already expired tokens are not worth storing.
		return fmt.Errorf("authorization for %s expires in the past", a.UserID)
	}

	return s.client.Set(ctx, authKey(a.UserID), payload, ttl).Err()
}

// GetByUser returns the stored authorization for a user.
func (s *AuthRedis) GetByUser(ctx context.Context, userID string) (*auth.Authorization, error) {
	raw, err := s.client.Get(ctx, authKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, auth.ErrAuthorizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get authorization: %w", err)
	}

	var a auth.Authorization
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode authorization: %w", err)
	}
	return &a, nil
}
