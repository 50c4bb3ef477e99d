package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/model"
	"github.com/anirudhxmishra/swipe-hire-app/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockExchanger struct {
	authURL  string
	identity *auth.Identity
	err      error
	calls    int
	lastCode string
}

func (m *mockExchanger) AuthorizationURL() string {
	return m.authURL
}

func (m *mockExchanger) ExchangeCode(ctx context.Context, code string) (*auth.Identity, error) {
	m.calls++
	m.lastCode = code
	if m.err != nil {
		return nil, m.err
	}
	return m.identity, nil
}

type mockPasswordAuth struct {
	registerUser *model.User
	registerErr  error
	loginUser    *model.User
	loginToken   string
	loginErr     error
}

func (m *mockPasswordAuth) Register(ctx context.Context, email, password, fullName string) (*model.User, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.registerUser, nil
}

func (m *mockPasswordAuth) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if m.loginErr != nil {
		return nil, "", m.loginErr
	}
	return m.loginUser, m.loginToken, nil
}

func newAuthTestRouter(deps *Dependencies) *gin.Engine {
	deps.Logger = slog.New(slog.DiscardHandler)
	h := NewAuthHandler(deps)

	r := gin.New()
	r.GET("/auth/google", h.GoogleLogin)
	r.GET("/auth/google/callback", h.GoogleCallback)
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r
}

func TestAuthHandler_GoogleLogin(t *testing.T) {
	exchanger := &mockExchanger{authURL: "http://provider.test/auth?client_id=abc"}
	r := newAuthTestRouter(&Dependencies{Google: exchanger})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://provider.test/auth?client_id=abc", w.Header().Get("Location"))
}

func TestAuthHandler_GoogleCallback(t *testing.T) {
	t.Run("redirects to the frontend with the encoded identity", func(t *testing.T) {
		exchanger := &mockExchanger{identity: &auth.Identity{
			ID:      "g-1",
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Picture: "http://img/p.png",
		}}
		r := newAuthTestRouter(&Dependencies{
			Google:           exchanger,
			FrontendRedirect: "http://localhost:5173/oauth-success",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=the-code", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "the-code", exchanger.lastCode)

		location, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "/oauth-success", location.Path)

		var identity auth.Identity
		require.NoError(t, json.Unmarshal([]byte(location.Query().Get("user")), &identity))
		assert.Equal(t, "g-1", identity.ID)
		assert.Equal(t, "jane@example.com", identity.Email)
	})

	t.Run("missing code is a 400 without an exchange", func(t *testing.T) {
		exchanger := &mockExchanger{}
		r := newAuthTestRouter(&Dependencies{Google: exchanger})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/google/callback", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, exchanger.calls)
	})

	t.Run("exchange failure is fatal, no redirect", func(t *testing.T) {
		exchanger := &mockExchanger{err: auth.ErrTokenExchange}
		r := newAuthTestRouter(&Dependencies{
			Google:           exchanger,
			FrontendRedirect: "http://localhost:5173/oauth-success",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=bad-code", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Empty(t, w.Header().Get("Location"))
	})
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates an account", func(t *testing.T) {
		pw := &mockPasswordAuth{registerUser: &model.User{ID: 1, Email: "jane@example.com", FullName: "Jane"}}
		r := newAuthTestRouter(&Dependencies{Password: pw})

		body := bytes.NewBufferString(`{"email": "jane@example.com", "password": "secret-pass", "fullName": "Jane"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("duplicate email is a 409", func(t *testing.T) {
		pw := &mockPasswordAuth{registerErr: auth.ErrEmailTaken}
		r := newAuthTestRouter(&Dependencies{Password: pw})

		body := bytes.NewBufferString(`{"email": "jane@example.com", "password": "secret-pass", "fullName": "Jane"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid body is a 400", func(t *testing.T) {
		r := newAuthTestRouter(&Dependencies{Password: &mockPasswordAuth{}})

		body := bytes.NewBufferString(`{"email": "not-an-email"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns a JSON status payload with the token", func(t *testing.T) {
		pw := &mockPasswordAuth{
			loginUser:  &model.User{ID: 1, Email: "jane@example.com", FullName: "Jane"},
			loginToken: "session-token",
		}
		r := newAuthTestRouter(&Dependencies{Password: pw})

		body := bytes.NewBufferString(`{"email": "jane@example.com", "password": "secret-pass"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"session-token"`)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("bad credentials are a 401 JSON status, not a redirect", func(t *testing.T) {
		pw := &mockPasswordAuth{loginErr: auth.ErrInvalidCredentials}
		r := newAuthTestRouter(&Dependencies{Password: pw})

		body := bytes.NewBufferString(`{"email": "jane@example.com", "password": "wrong"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"failed"`)
		assert.Empty(t, w.Header().Get("Location"))
	})
}
