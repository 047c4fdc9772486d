package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-auth-request/oauth2"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

// AuthorizationURIResponse is returned by the authorization-uri endpoint.
type AuthorizationURIResponse struct {
	AuthorizationURI string `json:"authorization_uri"`
	State            string `json:"state"`
}

// AuthorizeRedirect sends the user agent to the authorization endpoint with a 302.
// An optional ?response_type=code|token overrides the configured grant flow.
func (s *Server) AuthorizeRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _, ok := s.buildAuthorizationURI(w, r)
		if !ok {
			return
		}
		http.Redirect(w, r, u.String(), http.StatusFound)
	}
}

// AuthorizationURI returns the authorization request URI and its state as JSON,
// for clients that perform the redirect themselves.
func (s *Server) AuthorizationURI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, state, ok := s.buildAuthorizationURI(w, r)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", contentTypeJSON)
		if err := json.NewEncoder(w).Encode(AuthorizationURIResponse{AuthorizationURI: u.String(), State: state}); err != nil {
			log.Err(err).Msg("Failed to encode authorization uri response")
		}
	}
}

func (s *Server) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

// buildAuthorizationURI writes an error response and returns false when the URI cannot be built.
func (s *Server) buildAuthorizationURI(w http.ResponseWriter, r *http.Request) (*url.URL, string, bool) {
	req, err := s.requests.AuthorizationRequest(r.Context())
	if err != nil {
		log.Err(err).Msg("Failed to load authorization request")
		http.Error(w, "authorization server is not configured", http.StatusInternalServerError)
		return nil, "", false
	}

	if rt := r.URL.Query().Get(oauth2.ParameterResponseType); rt != "" {
		responseType := oauth2.ResponseType(rt)
		if !responseTypeValid(responseType) {
			http.Error(w, "unsupported response type", http.StatusBadRequest)
			return nil, "", false
		}
		req.ResponseType = responseType
	}

	state, err := s.newState()
	if err != nil {
		log.Err(err).Msg("Failed to generate state")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, "", false
	}
	req.State = state

	u, err := s.builder.Build(req)
	if err != nil {
		log.Err(err).Str("authorization_uri", req.AuthorizationURI).Msg("Failed to build authorization request uri")
		http.Error(w, "invalid authorization endpoint", http.StatusInternalServerError)
		return nil, "", false
	}

	log.Debug().
		Str("client_id", req.ClientID).
		Str("response_type", req.ResponseType.String()).
		Str("host", u.Host).
		Msg("Built authorization request")
	return u, state, true
}
