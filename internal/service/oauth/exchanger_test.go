package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/feretizpina/uber-slack/internal/domain/auth"
	"github.com/feretizpina/uber-slack/pkg/logger"
)

type fakeAuthRepo struct {
	saved *auth.Authorization
}

func (f *fakeAuthRepo) Save(_ context.Context, a *auth.Authorization) error {
	stored := *a
	f.saved = &stored
	return nil
}

func (f *fakeAuthRepo) GetByUser(_ context.Context, userID string) (*auth.Authorization, error) {
	if f.saved == nil || f.saved.UserID != userID {
		return nil, auth.ErrAuthorizationNotFound
	}
	found := *f.saved
	return &found, nil
}

// TestExchange_StoresTokens tests the code-for-token exchange
func TestExchange_StoresTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client-1", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret-1", r.PostForm.Get("client_secret"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "https://app.test/auth/callback", r.PostForm.Get("redirect_uri"))
		assert.Equal(t, "code-xyz", r.PostForm.Get("code"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"expires_in":    2592000,
		})
	}))
	defer srv.Close()

	repo := &fakeAuthRepo{}
	ex := NewExchanger(Config{
		TokenURL:     srv.URL,
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RedirectURL:  "https://app.test/auth/callback",
	}, repo, &logger.Logger{Logger: zap.NewNop()})

	start := time.Now()
	err := ex.Exchange(context.Background(), "U123", "code-xyz")

	require.NoError(t, err)
	require.NotNil(t, repo.saved)
	assert.Equal(t, "U123", repo.saved.UserID)
	assert.Equal(t, "access-1", repo.saved.AccessToken)
	assert.Equal(t, "refresh-1", repo.saved.RefreshToken)
	assert.WithinDuration(t, start.Add(2592000*time.Second), repo.saved.ExpiresAt, 5*time.Second)
}

// TestExchange_RejectedCode tests that token endpoint failures propagate
func TestExchange_RejectedCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	repo := &fakeAuthRepo{}
	ex := NewExchanger(Config{TokenURL: srv.URL}, repo, &logger.Logger{Logger: zap.NewNop()})

	err := ex.Exchange(context.Background(), "U123", "bad-code")

	assert.Error(t, err)
	assert.Nil(t, repo.saved)
}
