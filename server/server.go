package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-auth-request/authrequest"
	"github.com/jrsteele09/go-auth-request/internal/config"
	"github.com/rs/zerolog/log"
)

type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	routes   []string
	requests RequestSource
	builder  authrequest.UriBuilder
	newState StateGenerator
}

// New returns the redirect server. A nil builder uses authrequest.DefaultUriBuilder
// and a nil state generator uses NewUUIDState.
func New(config config.EnvConfig, requests RequestSource, builder authrequest.UriBuilder, newState StateGenerator) *Server {
	if builder == nil {
		builder = authrequest.NewUriBuilder()
	}
	if newState == nil {
		newState = NewUUIDState
	}

	s := &Server{
		env:      config.GetEnv(),
		mux:      http.NewServeMux(),
		requests: requests,
		builder:  builder,
		newState: newState,
	}

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			log.Info().Str("method", parts[0]).Str("path", parts[1]).Msg("Route registered")
		} else {
			log.Info().Str("path", parts[0]).Msg("Route registered")
		}
	}
}
