package server

// Route path constants
const (
	RouteHealth                  = "/healthz"
	RouteOAuth2AuthorizeRedirect = "/oauth2/authorize-redirect"
	RouteOAuth2AuthorizationURI  = "/oauth2/authorization-uri"
)
