package router

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/handler"
	"github.com/anirudhxmishra/swipe-hire-app/internal/api/model"
	"github.com/gin-gonic/gin"
)

// Authenticator resolves a session token to its user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// LoggerMiddleware logs HTTP requests with slog
func LoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		logger.Info("HTTP Request",
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("query", query),
			slog.String("ip", c.ClientIP()),
			slog.Duration("latency", latency),
			slog.Int("body_size", c.Writer.Size()),
		)

		if len(c.Errors) > 0 {
			for _, e := range c.Errors {
				logger.Error("Request error",
					slog.String("error", e.Error()),
				)
			}
		}
	}
}

// CORSMiddleware permits cross-origin requests from the fixed development
// allowlist, with credentials.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			// Credentialed requests treat "*" as a literal header name, so
			// echo whatever the preflight asked for instead.
			reqHeaders := c.Request.Header.Get("Access-Control-Request-Headers")
			if reqHeaders == "" {
				reqHeaders = "Authorization, Content-Type"
			}
			c.Writer.Header().Set("Access-Control-Allow-Headers", reqHeaders)
			c.Writer.Header().Set("Vary", "Origin")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// AuthMiddleware is the request gate: public paths pass through, everything
// else needs a valid session token and gets 401 otherwise (no redirect).
func AuthMiddleware(rules []Rule, authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsPublic(rules, c.Request.Method, c.Request.URL.Path) {
			c.Next()
			return
		}

		user, err := authenticator.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil || user == nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set(handler.UserContextKey, user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.Request.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}

	return token
}
