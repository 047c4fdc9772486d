package server

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteHealth, s.Health())

	s.RegisterRouteHandler("GET "+RouteOAuth2AuthorizeRedirect, ChainMiddleware(s.AuthorizeRedirect(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteOAuth2AuthorizationURI, ChainMiddleware(s.AuthorizationURI(), s.APIMiddleware()...))
}
