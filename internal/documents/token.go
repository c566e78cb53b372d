// Package documents provides the client for the upstream document-retrieval service.
package documents

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"
)

// TokenProvider yields a bearer token for authenticating document-service
// requests. Implementations must be safe for sequential reuse across the
// lifetime of the process; the rest of the client is authentication-scheme
// agnostic.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// OAuthTokenProvider exchanges client credentials for a bearer token and
// caches it until process restart. Concurrent refreshes collapse into a
// single exchange via singleflight.
type OAuthTokenProvider struct {
	conf  *clientcredentials.Config
	group singleflight.Group

	mu     sync.Mutex
	cached *oauth2.Token
}

// NewOAuthTokenProvider creates a provider that exchanges credentials at the
// service's OAuth token endpoint.
func NewOAuthTokenProvider(baseURL, clientID, clientSecret string) *OAuthTokenProvider {
	return &OAuthTokenProvider{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     baseURL + "/oauth/token",
		},
	}
}

// Token returns the cached access token, performing the client-credentials
// exchange on first use or after the cached token expires.
func (p *OAuthTokenProvider) Token(ctx context.Context) (string, error) {
	v, err, _ := p.group.Do("token", func() (any, error) {
		p.mu.Lock()
		defer p.mu.Unlock()

		if p.cached != nil && p.cached.Valid() {
			return p.cached.AccessToken, nil
		}

		tok, err := p.conf.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("client credentials exchange failed: %w", err)
		}
		p.cached = tok
		return tok.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// StaticTokenProvider authenticates with a fixed bearer token equal to the
// client identifier. Used by deployments that issue static API keys instead
// of OAuth credentials.
type StaticTokenProvider struct {
	Key string
}

// Token returns the static key.
func (p *StaticTokenProvider) Token(_ context.Context) (string, error) {
	if p.Key == "" {
		return "", fmt.Errorf("static token is empty")
	}
	return p.Key, nil
}
