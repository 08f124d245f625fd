package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotify_PostsTextPayload tests the response-url payload shape
func TestNotify_PostsTextPayload(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	notifier := NewNotifier(0)

	err := notifier.Notify(context.Background(), srv.URL, "Thanks! We are looking for a driver and we expect them to arrive very soon.")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"text": "Thanks! We are looking for a driver and we expect them to arrive very soon."}, got)
}

// TestNotify_FailsLoudly tests that delivery failures surface as errors
func TestNotify_FailsLoudly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer srv.Close()

	notifier := NewNotifier(0)

	err := notifier.Notify(context.Background(), srv.URL, "hello")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "410")
}
