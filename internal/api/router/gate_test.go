package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/model"
	"github.com/anirudhxmishra/swipe-hire-app/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIsPublic(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name   string
		method string
		path   string
		public bool
	}{
		{"job listing read", "GET", "/api/jobs", true},
		{"job sub-path read", "GET", "/api/jobs/fetch-external", true},
		{"job listing write", "POST", "/api/jobs", false},
		{"oauth initiate", "GET", "/auth/google", true},
		{"oauth callback", "GET", "/auth/google/callback", true},
		{"api auth login", "POST", "/api/auth/login", true},
		{"api auth register", "POST", "/api/auth/register", true},
		{"bare login", "POST", "/login", true},
		{"bare register", "POST", "/register", true},
		{"uploaded asset", "GET", "/uploads/resume.pdf", true},
		{"health check", "GET", "/health", true},
		{"profile read", "GET", "/api/profile", false},
		{"profile write", "PUT", "/api/profile", false},
		{"unknown path falls through to deny", "GET", "/api/anything-else", false},
		{"prefix must not leak", "GET", "/api/jobsmore", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.public, IsPublic(rules, tt.method, tt.path))
		})
	}
}

type stubAuthenticator struct {
	user  *model.User
	token string
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if s.user != nil && token == s.token {
		return s.user, nil
	}
	return nil, auth.ErrSessionNotFound
}

func newGateRouter(authenticator Authenticator) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(DefaultRules(), authenticator))

	r.GET("/api/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/profile", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("public path passes without credentials", func(t *testing.T) {
		r := newGateRouter(&stubAuthenticator{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("protected path without credentials is a 401", func(t *testing.T) {
		r := newGateRouter(&stubAuthenticator{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Header().Get("Location"), "401 must not redirect to a login page")
	})

	t.Run("protected path with a valid session passes", func(t *testing.T) {
		r := newGateRouter(&stubAuthenticator{
			user:  &model.User{ID: 1, Email: "jane@example.com"},
			token: "valid-token",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong token is a 401", func(t *testing.T) {
		r := newGateRouter(&stubAuthenticator{
			user:  &model.User{ID: 1},
			token: "valid-token",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer other-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	newCORSRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(CORSMiddleware([]string{"http://localhost:5173", "http://localhost:3000"}))
		r.GET("/api/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("allowed origin gets credentialed CORS headers", func(t *testing.T) {
		r := newCORSRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		r.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})

	t.Run("unlisted origin gets no CORS headers", func(t *testing.T) {
		r := newCORSRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("credentialed preflight echoes the requested headers", func(t *testing.T) {
		r := newCORSRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/profile", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "PUT")
		req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")
		r.ServeHTTP(w, req)

		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		allowHeaders := w.Header().Get("Access-Control-Allow-Headers")
		assert.Contains(t, allowHeaders, "authorization")
		assert.Contains(t, allowHeaders, "content-type")
		assert.NotEqual(t, "*", allowHeaders, "wildcard is a literal header name on credentialed requests")
	})

	t.Run("preflight without requested headers still allows Authorization", func(t *testing.T) {
		r := newCORSRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/profile", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		r.ServeHTTP(w, req)

		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("preflight is answered with 204", func(t *testing.T) {
		r := newCORSRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/jobs", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
