package oauthmodel

import (
	"strings"

	"github.com/jrsteele09/go-auth-request/internal/utils"
	"github.com/jrsteele09/go-auth-request/oauth2"
	xoauth2 "golang.org/x/oauth2"
)

// AuthorizationRequest describes an OAuth 2.0 Authorization Request.
// It is populated by the caller and treated as read-only by the URI builder.
type AuthorizationRequest struct {
	// AuthorizationURI is the absolute URI of the authorization endpoint.
	// Required: Yes
	// Example: "https://auth.example.com/authorize" or "https://auth.example.com/authorize?tenant=42"
	// Existing query parameters are preserved when the request URI is built
	AuthorizationURI string

	// ResponseType selects the grant flow.
	// Required: Yes
	// Example: "code" (Authorization Code Grant), "token" (Implicit Grant)
	ResponseType oauth2.ResponseType

	// ClientID identifies the application requesting authorization.
	// Required: Yes (passed through as-is, even when empty)
	// Example: "web-app-client"
	ClientID string

	// Scopes are the permissions being requested.
	// Required: No (an empty set still produces "scope=")
	// Example: "openid profile email"
	Scopes ScopeSet

	// State is an opaque value round-tripped by the authorization server.
	// Required: Yes (always serialized, even when empty)
	// Security: Client should validate this matches on callback to prevent CSRF attacks
	State string

	// RedirectURI is where the authorization response will be sent.
	// Required: No (nil omits redirect_uri, a pointer to "" sends redirect_uri=)
	// Example: "https://myapp.com/callback"
	RedirectURI *string
}

// HasRedirectURI reports whether the redirect_uri parameter should be sent.
func (r AuthorizationRequest) HasRedirectURI() bool {
	return r.RedirectURI != nil
}

// FromOAuth2Config builds an AuthorizationRequest from an x/oauth2 client configuration.
// An empty RedirectURL is treated as absent.
func FromOAuth2Config(cfg *xoauth2.Config, responseType oauth2.ResponseType, state string) AuthorizationRequest {
	req := AuthorizationRequest{
		AuthorizationURI: cfg.Endpoint.AuthURL,
		ResponseType:     responseType,
		ClientID:         cfg.ClientID,
		Scopes:           NewScopeSet(cfg.Scopes...),
		State:            state,
	}
	if cfg.RedirectURL != "" {
		req.RedirectURI = utils.Ptr(cfg.RedirectURL)
	}
	return req
}

// ScopeSet is an ordered set of unique scope values.
// Iteration order is insertion order, which fixes the order of the joined scope parameter.
type ScopeSet struct {
	values []string
}

// NewScopeSet returns a set of the given scopes, dropping duplicates after their first occurrence.
func NewScopeSet(scopes ...string) ScopeSet {
	seen := make(map[string]struct{}, len(scopes))
	values := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		values = append(values, s)
	}
	return ScopeSet{values: values}
}

// ParseScopes splits a space-delimited scope string into a set.
func ParseScopes(scope string) ScopeSet {
	return NewScopeSet(strings.Fields(scope)...)
}

// Values returns a copy of the scopes in insertion order.
func (s ScopeSet) Values() []string {
	values := make([]string, len(s.values))
	copy(values, s.values)
	return values
}

func (s ScopeSet) Len() int {
	return len(s.values)
}

func (s ScopeSet) Contains(scope string) bool {
	for _, v := range s.values {
		if v == scope {
			return true
		}
	}
	return false
}

// String joins the scopes with a single space, the scope parameter format.
func (s ScopeSet) String() string {
	return strings.Join(s.values, oauth2.ScopeSeparator)
}
