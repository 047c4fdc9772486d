package server

import (
	"context"

	"github.com/jrsteele09/go-auth-request/discovery"
	"github.com/jrsteele09/go-auth-request/internal/config"
	apperrors "github.com/jrsteele09/go-auth-request/internal/errors"
	"github.com/jrsteele09/go-auth-request/internal/utils"
	"github.com/jrsteele09/go-auth-request/oauth2"
	"github.com/jrsteele09/go-auth-request/oauthmodel"
)

// RequestSource supplies the client's authorization request without a state value.
type RequestSource interface {
	AuthorizationRequest(ctx context.Context) (oauthmodel.AuthorizationRequest, error)
}

// ConfigRequestSource builds authorization requests from the client registration in config.
// When an issuer is configured the authorization endpoint is discovered, otherwise
// the static authorization URI is used.
type ConfigRequestSource struct {
	config   config.OAuthConfig
	resolver *discovery.Resolver
}

var _ RequestSource = (*ConfigRequestSource)(nil)

func NewConfigRequestSource(config config.OAuthConfig, resolver *discovery.Resolver) *ConfigRequestSource {
	if resolver == nil {
		resolver = discovery.NewResolver()
	}
	return &ConfigRequestSource{config: config, resolver: resolver}
}

func (c *ConfigRequestSource) AuthorizationRequest(ctx context.Context) (oauthmodel.AuthorizationRequest, error) {
	responseType := c.config.GetResponseType()
	if !responseTypeValid(responseType) {
		return oauthmodel.AuthorizationRequest{}, apperrors.Wrapf(apperrors.ErrInvalidResponseType, "[request source] response type %q", responseType)
	}

	clientID := c.config.GetClientID()
	if clientID == "" {
		return oauthmodel.AuthorizationRequest{}, apperrors.ErrMissingClientID
	}

	scopes := oauthmodel.ParseScopes(c.config.GetScopes())
	redirectURI := c.config.GetRedirectURI()

	if issuer := c.config.GetIssuer(); issuer != "" {
		oauth2Config, err := c.resolver.OAuth2Config(ctx, issuer, clientID, utils.Value(redirectURI), scopes.Values())
		if err != nil {
			return oauthmodel.AuthorizationRequest{}, apperrors.Wrapf(err, "[request source] issuer %s", issuer)
		}
		req := oauthmodel.FromOAuth2Config(oauth2Config, responseType, "")
		req.RedirectURI = redirectURI
		return req, nil
	}

	authorizationURI := c.config.GetAuthorizationURI()
	if authorizationURI == "" {
		return oauthmodel.AuthorizationRequest{}, apperrors.ErrMissingAuthorizationURI
	}

	return oauthmodel.AuthorizationRequest{
		AuthorizationURI: authorizationURI,
		ResponseType:     responseType,
		ClientID:         clientID,
		Scopes:           scopes,
		RedirectURI:      redirectURI,
	}, nil
}

func responseTypeValid(responseType oauth2.ResponseType) bool {
	switch responseType {
	case oauth2.CodeResponseType, oauth2.TokenResponseType:
		return true
	}
	return false
}
