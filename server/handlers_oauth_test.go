package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jrsteele09/go-auth-request/authrequest"
	"github.com/jrsteele09/go-auth-request/internal/utils"
	"github.com/jrsteele09/go-auth-request/oauth2"
	"github.com/jrsteele09/go-auth-request/oauthmodel"
	"github.com/jrsteele09/go-auth-request/server"
	"github.com/stretchr/testify/require"
)

const (
	testAuthorizationURI = "https://auth.example.com/authorize"
	testClientID         = "abc123"
	testState            = "xyz"
	testRedirectURI      = "https://app.example.com/cb"
)

type testEnv struct{}

func (testEnv) GetPort() string { return ":0" }
func (testEnv) GetAppName() string { return "test" }
func (testEnv) GetEnv() string { return "TEST" }
func (testEnv) GetLogLevel() string { return "disabled" }

type staticSource struct {
	req oauthmodel.AuthorizationRequest
	err error
}

func (s staticSource) AuthorizationRequest(context.Context) (oauthmodel.AuthorizationRequest, error) {
	return s.req, s.err
}

func fixedState() (string, error) {
	return testState, nil
}

func newTestServer(source server.RequestSource, builder authrequest.UriBuilder) *server.Server {
	return server.New(testEnv{}, source, builder, fixedState)
}

func defaultSource() staticSource {
	return staticSource{req: oauthmodel.AuthorizationRequest{
		AuthorizationURI: testAuthorizationURI,
		ResponseType:     oauth2.CodeResponseType,
		ClientID:         testClientID,
		Scopes:           oauthmodel.NewScopeSet("openid"),
		RedirectURI:      utils.Ptr(testRedirectURI),
	}}
}

func doGet(t *testing.T, s *server.Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestAuthorizeRedirect(t *testing.T) {
	t.Run("redirects to authorization endpoint", func(t *testing.T) {
		s := newTestServer(defaultSource(), nil)

		rec := doGet(t, s, server.RouteOAuth2AuthorizeRedirect)
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t,
			"https://auth.example.com/authorize?response_type=code&client_id=abc123&scope=openid&state=xyz&redirect_uri=https%3A%2F%2Fapp.example.com%2Fcb",
			rec.Header().Get("Location"))
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("implicit grant override", func(t *testing.T) {
		s := newTestServer(defaultSource(), nil)

		rec := doGet(t, s, server.RouteOAuth2AuthorizeRedirect+"?response_type=token")
		require.Equal(t, http.StatusFound, rec.Code)
		location, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		require.Equal(t, "token", location.Query().Get("response_type"))
	})

	t.Run("unsupported response type", func(t *testing.T) {
		s := newTestServer(defaultSource(), nil)

		rec := doGet(t, s, server.RouteOAuth2AuthorizeRedirect+"?response_type=id_token")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("malformed authorization uri", func(t *testing.T) {
		source := defaultSource()
		source.req.AuthorizationURI = "http://[invalid"
		s := newTestServer(source, nil)

		rec := doGet(t, s, server.RouteOAuth2AuthorizeRedirect)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("request source failure", func(t *testing.T) {
		s := newTestServer(staticSource{err: errors.New("boom")}, nil)

		rec := doGet(t, s, server.RouteOAuth2AuthorizeRedirect)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("state generator failure", func(t *testing.T) {
		s := server.New(testEnv{}, defaultSource(), nil, func() (string, error) {
			return "", errors.New("no entropy")
		})

		rec := doGet(t, s, server.RouteOAuth2AuthorizeRedirect)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("default state is a uuid", func(t *testing.T) {
		s := server.New(testEnv{}, defaultSource(), nil, nil)

		rec := doGet(t, s, server.RouteOAuth2AuthorizeRedirect)
		require.Equal(t, http.StatusFound, rec.Code)
		location, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		require.Len(t, location.Query().Get("state"), 36)
	})

	t.Run("builder panic is recovered", func(t *testing.T) {
		panicking := authrequest.UriBuilderFunc(func(oauthmodel.AuthorizationRequest) (*url.URL, error) {
			panic("builder exploded")
		})
		s := newTestServer(defaultSource(), panicking)

		rec := doGet(t, s, server.RouteOAuth2AuthorizeRedirect)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAuthorizationURI(t *testing.T) {
	s := newTestServer(defaultSource(), nil)

	rec := doGet(t, s, server.RouteOAuth2AuthorizationURI)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var resp server.AuthorizationURIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, testState, resp.State)

	u, err := url.Parse(resp.AuthorizationURI)
	require.NoError(t, err)
	require.Equal(t, url.Values{
		"response_type": {"code"},
		"client_id":     {testClientID},
		"scope":         {"openid"},
		"state":         {testState},
		"redirect_uri":  {testRedirectURI},
	}, u.Query())
}

func TestHealth(t *testing.T) {
	s := newTestServer(defaultSource(), nil)

	rec := doGet(t, s, server.RouteHealth)
	require.Equal(t, http.StatusOK, rec.Code)
}
