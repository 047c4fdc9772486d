package authrequest

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-auth-request/oauth2"
	"github.com/jrsteele09/go-auth-request/oauthmodel"
)

// UriBuilder builds the redirect URI of an OAuth 2.0 Authorization Request.
type UriBuilder interface {
	Build(req oauthmodel.AuthorizationRequest) (*url.URL, error)
}

// UriBuilderFunc adapts a function to the UriBuilder interface.
type UriBuilderFunc func(req oauthmodel.AuthorizationRequest) (*url.URL, error)

func (f UriBuilderFunc) Build(req oauthmodel.AuthorizationRequest) (*url.URL, error) {
	return f(req)
}

// DefaultUriBuilder appends the authorization request parameters to the
// authorization endpoint URI (RFC 6749 §4.1.1 and §4.2.1).
//
// Parameters are appended in a fixed order: response_type, client_id, scope,
// state and, when present, redirect_uri. Any query already on the endpoint URI
// stays in front of them, with only bytes that are illegal in a query escaped,
// so a parameter that already exists there appears twice rather than being replaced.
//
// Values are percent-encoded per RFC 3986: every byte outside the unreserved
// set (ALPHA / DIGIT / "-" / "." / "_" / "~") is escaped, and a space is
// written as %20, never "+".
//
// The zero value is ready to use and safe for concurrent use.
type DefaultUriBuilder struct{}

var _ UriBuilder = DefaultUriBuilder{}

func NewUriBuilder() DefaultUriBuilder {
	return DefaultUriBuilder{}
}

// Build returns the authorization request URI for req.
// It fails with oauthmodel.ErrInvalidAuthorizationUri when req.AuthorizationURI
// is not a valid absolute URI.
func (DefaultUriBuilder) Build(req oauthmodel.AuthorizationRequest) (*url.URL, error) {
	base, err := parseAuthorizationURI(req.AuthorizationURI)
	if err != nil {
		return nil, err
	}

	q := newQuery(base.RawQuery)
	q.add(oauth2.ParameterResponseType, req.ResponseType.String())
	q.add(oauth2.ParameterClientID, req.ClientID)
	q.add(oauth2.ParameterScope, req.Scopes.String())
	q.add(oauth2.ParameterState, req.State)
	if req.HasRedirectURI() {
		q.add(oauth2.ParameterRedirectURI, *req.RedirectURI)
	}

	base.RawQuery = q.String()
	return base, nil
}

// BuildString is Build followed by String.
func (b DefaultUriBuilder) BuildString(req oauthmodel.AuthorizationRequest) (string, error) {
	u, err := b.Build(req)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func parseAuthorizationURI(rawURI string) (*url.URL, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", oauthmodel.ErrInvalidAuthorizationUri, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute uri", oauthmodel.ErrInvalidAuthorizationUri, rawURI)
	}
	return u, nil
}

// query is an append-only raw query string. Unlike url.Values it never
// double-encodes or reorders what is already there.
type query struct {
	b strings.Builder
}

func newQuery(rawQuery string) *query {
	q := &query{}
	q.b.WriteString(escapeRawQuery(rawQuery))
	return q
}

func (q *query) add(name, value string) {
	if q.b.Len() > 0 {
		q.b.WriteByte('&')
	}
	q.b.WriteString(encodeComponent(name))
	q.b.WriteByte('=')
	q.b.WriteString(encodeComponent(value))
}

func (q *query) String() string {
	return q.b.String()
}

// encodeComponent escapes everything but RFC 3986 unreserved characters.
// url.QueryEscape already does that except for writing spaces as "+"; a
// literal "+" comes out as %2B, so the replacement is unambiguous.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// escapeRawQuery percent-encodes bytes that may not appear in an RFC 3986
// query. Existing %XX escapes and the delimiters "&" and "=" are left as is.
func escapeRawQuery(rawQuery string) string {
	var b strings.Builder
	for i := 0; i < len(rawQuery); i++ {
		c := rawQuery[i]
		switch {
		case c == '%' && i+2 < len(rawQuery) && isHex(rawQuery[i+1]) && isHex(rawQuery[i+2]):
			b.WriteByte(c)
		case isQueryChar(c):
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// isQueryChar reports whether c is unreserved, a sub-delim, or one of ":@/?".
func isQueryChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-._~!$&'()*+,;=:@/?", c) >= 0
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
