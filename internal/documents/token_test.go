package documents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenProvider(t *testing.T) {
	provider := &StaticTokenProvider{Key: "abc123"}

	token, err := provider.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestStaticTokenProvider_EmptyKey(t *testing.T) {
	provider := &StaticTokenProvider{}

	_, err := provider.Token(context.Background())

	assert.Error(t, err)
}

func TestOAuthTokenProvider_ExchangeAndCache(t *testing.T) {
	var exchanges atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		exchanges.Add(1)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tok-1", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer srv.Close()

	provider := NewOAuthTokenProvider(srv.URL, "client-id", "client-secret")

	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// A second call reuses the cached token instead of exchanging again.
	token, err = provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, int64(1), exchanges.Load())
}

func TestOAuthTokenProvider_ExchangeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	provider := NewOAuthTokenProvider(srv.URL, "client-id", "wrong-secret")

	_, err := provider.Token(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exchange failed")
}
