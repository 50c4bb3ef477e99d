package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/dto"
	"github.com/anirudhxmishra/swipe-hire-app/internal/auth"
	"github.com/gin-gonic/gin"
)

// GoogleLogin handles GET /auth/google
// Redirects the browser to the provider's authorization URL. No session
// state is created at this point.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, h.google.AuthorizationURL())
}

// GoogleCallback handles GET /auth/google/callback
// Exchanges the authorization code for an identity and forwards it to the
// fixed frontend URL as a url-encoded JSON query parameter. Any exchange
// failure is fatal to the request; there is no partial redirect.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "code is required",
		})
		return
	}

	identity, err := h.google.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		h.logger.Error("OAuth exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to authenticate with Google",
		})
		return
	}

	payload, err := json.Marshal(identity)
	if err != nil {
		h.logger.Error("Failed to encode identity", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to encode identity",
		})
		return
	}

	c.Redirect(http.StatusFound, h.frontendRedirect+"?user="+url.QueryEscape(string(payload)))
}

// Register handles POST /api/auth/register
// Creates a password-login account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user, err := h.password.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"status": "failed",
				"error":  "Email already registered",
			})
			return
		}

		h.logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to register user",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "ok",
		"user": dto.UserDTO{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
	})
}

// Login handles POST /api/auth/login
// Verifies credentials and returns a JSON status payload with the session
// token. Failed logins get a JSON status as well, never a redirect.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user, token, err := h.password.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status": "failed",
				"error":  "Invalid email or password",
			})
			return
		}

		h.logger.Error("Failed to log in user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to log in",
		})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Status: "ok",
		Token:  token,
		User: dto.UserDTO{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
	})
}
