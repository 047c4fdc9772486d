package oauth2

// ResponseType represents the OAuth 2.0 response type.
// Determines which grant flow the authorization endpoint runs.
type ResponseType string

const (
	// CodeResponseType selects the Authorization Code Grant (RFC 6749 §4.1.1).
	// Returns an authorization code that must be exchanged for tokens at the token endpoint.
	// Example: /oauth/authorize?response_type=code&client_id=...
	CodeResponseType ResponseType = "code"

	// TokenResponseType selects the Implicit Grant (RFC 6749 §4.2.1).
	// The access token is returned directly in the redirect URI fragment.
	// Example: /oauth/authorize?response_type=token&client_id=...
	TokenResponseType ResponseType = "token"
)

// String returns the wire value of the response type.
func (r ResponseType) String() string {
	return string(r)
}

// Authorization request parameter names (RFC 6749 §4.1.1, §4.2.1).
const (
	ParameterResponseType = "response_type"
	ParameterClientID     = "client_id"
	ParameterScope        = "scope"
	ParameterState        = "state"
	ParameterRedirectURI  = "redirect_uri"
)

// ScopeSeparator delimits scope values in the scope parameter.
const ScopeSeparator = " "
