package config

import (
	"os"

	"github.com/jrsteele09/go-auth-request/internal/utils"
	"github.com/jrsteele09/go-auth-request/oauth2"
)

const (
	issuerEnvVar           = "ISSUER"
	authorizationURIEnvVar = "AUTHORIZATION_URI"
	clientIDEnvVar         = "CLIENT_ID"
	scopesEnvVar           = "SCOPES"
	redirectURIEnvVar      = "REDIRECT_URI"
	responseTypeEnvVar     = "RESPONSE_TYPE"
)

// OAuthConfig describes the client registration used to build authorization requests.
type OAuthConfig interface {
	// GetIssuer returns the OpenID Connect issuer used for endpoint discovery, or "".
	GetIssuer() string
	// GetAuthorizationURI returns a static authorization endpoint, used when no issuer is set.
	GetAuthorizationURI() string
	GetClientID() string
	// GetScopes returns the space-delimited scope string.
	GetScopes() string
	// GetRedirectURI returns nil when REDIRECT_URI is not set at all.
	GetRedirectURI() *string
	GetResponseType() oauth2.ResponseType
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetIssuer() string {
	return GetEnv(issuerEnvVar, "")
}

func (OAuth) GetAuthorizationURI() string {
	return GetEnv(authorizationURIEnvVar, "")
}

func (OAuth) GetClientID() string {
	return GetEnv(clientIDEnvVar, "")
}

func (OAuth) GetScopes() string {
	return GetEnv(scopesEnvVar, "openid")
}

func (OAuth) GetRedirectURI() *string {
	value, ok := os.LookupEnv(redirectURIEnvVar)
	if !ok {
		return nil
	}
	return utils.Ptr(value)
}

func (OAuth) GetResponseType() oauth2.ResponseType {
	return oauth2.ResponseType(GetEnv(responseTypeEnvVar, string(oauth2.CodeResponseType)))
}
