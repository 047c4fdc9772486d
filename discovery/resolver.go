package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	apperrors "github.com/jrsteele09/go-auth-request/internal/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// Resolver looks up authorization server endpoints through OpenID Connect discovery
// (/.well-known/openid-configuration). Providers are cached per issuer.
type Resolver struct {
	providers     map[string]*oidc.Provider
	providersLock sync.RWMutex
}

func NewResolver() *Resolver {
	return &Resolver{
		providers: make(map[string]*oidc.Provider),
	}
}

// Provider returns the discovered provider for issuer.
func (r *Resolver) Provider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	issuer = strings.TrimSpace(issuer)
	if issuer == "" {
		return nil, apperrors.ErrMissingIssuer
	}

	r.providersLock.RLock()
	provider, exists := r.providers[issuer]
	r.providersLock.RUnlock()
	if exists {
		return provider, nil
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("[discovery] %w for issuer %s: %w", apperrors.ErrDiscoveryFailed, issuer, err)
	}
	log.Debug().Str("issuer", issuer).Str("authorization_endpoint", provider.Endpoint().AuthURL).Msg("Discovered provider")

	r.providersLock.Lock()
	r.providers[issuer] = provider
	r.providersLock.Unlock()

	return provider, nil
}

// AuthorizationEndpoint returns the authorization_endpoint advertised by issuer.
func (r *Resolver) AuthorizationEndpoint(ctx context.Context, issuer string) (string, error) {
	provider, err := r.Provider(ctx, issuer)
	if err != nil {
		return "", err
	}
	authURL := provider.Endpoint().AuthURL
	if authURL == "" {
		return "", fmt.Errorf("[discovery] %w: issuer %s has no authorization_endpoint", apperrors.ErrDiscoveryFailed, issuer)
	}
	return authURL, nil
}

// OAuth2Config returns a client configuration whose endpoint is discovered from issuer.
func (r *Resolver) OAuth2Config(ctx context.Context, issuer, clientID, redirectURL string, scopes []string) (*oauth2.Config, error) {
	if _, err := r.AuthorizationEndpoint(ctx, issuer); err != nil {
		return nil, err
	}
	provider, err := r.Provider(ctx, issuer)
	if err != nil {
		return nil, err
	}
	return &oauth2.Config{
		ClientID:    clientID,
		Endpoint:    provider.Endpoint(),
		RedirectURL: redirectURL,
		Scopes:      scopes,
	}, nil
}
