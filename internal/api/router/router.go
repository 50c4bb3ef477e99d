package router

import (
	"net/http"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/handler"
	"github.com/gin-gonic/gin"
)

// Options holds the router-level dependencies beyond the handlers
type Options struct {
	AllowedOrigins []string
	Authenticator  Authenticator
	Rules          []Rule
}

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies, opts *Options) *gin.Engine {
	r := gin.New()

	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware(opts.AllowedOrigins))
	r.Use(AuthMiddleware(rules, opts.Authenticator))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "swipe-hire-api",
		})
	})

	jobHandler := handler.NewJobHandler(deps)
	authHandler := handler.NewAuthHandler(deps)
	profileHandler := handler.NewProfileHandler(deps)

	// Google OAuth flow
	oauth := r.Group("/auth/google")
	{
		oauth.GET("", authHandler.GoogleLogin)
		oauth.GET("/callback", authHandler.GoogleCallback)
	}

	api := r.Group("/api")
	{
		jobs := api.Group("/jobs")
		{
			// GET /api/jobs - list all jobs (public)
			jobs.GET("", jobHandler.ListJobs)

			// GET /api/jobs/fetch-external - pull from webhook and sync
			jobs.GET("/fetch-external", jobHandler.FetchExternal)
		}

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		profile := api.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.SetupProfile)
		}
	}

	return r
}
