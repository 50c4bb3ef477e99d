package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/dto"
	"github.com/anirudhxmishra/swipe-hire-app/internal/api/model"
	"github.com/gin-gonic/gin"
)

// UserContextKey is the gin context key the auth middleware stores the
// authenticated user under.
const UserContextKey = "auth.user"

// GetProfile handles GET /api/profile
// Returns the authenticated user's career profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to get profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get profile",
		})
		return
	}

	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Profile not set up yet",
		})
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// SetupProfile handles PUT /api/profile
// Creates or overwrites the authenticated user's career profile.
func (h *ProfileHandler) SetupProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.ProfileSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	profile := &model.UserProfile{
		UserID:            user.ID,
		Bio:               req.Bio,
		TargetRole:        req.TargetRole,
		ExperienceYears:   req.ExperienceYears,
		RemoteOnly:        req.RemoteOnly,
		PreferredLocation: req.PreferredLocation,
		MinSalary:         req.MinSalary,
		SocialLinks:       marshalList(req.SocialLinks),
		Skills:            marshalList(req.Skills),
		UpdatedAt:         time.Now(),
	}

	if err := h.profiles.UpsertProfile(c.Request.Context(), profile); err != nil {
		h.logger.Error("Failed to save profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save profile",
		})
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func currentUser(c *gin.Context) *model.User {
	v, ok := c.Get(UserContextKey)
	if !ok {
		return nil
	}

	user, ok := v.(*model.User)
	if !ok {
		return nil
	}

	return user
}

func toProfileResponse(profile *model.UserProfile) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserID:            profile.UserID,
		Bio:               profile.Bio,
		TargetRole:        profile.TargetRole,
		ExperienceYears:   profile.ExperienceYears,
		RemoteOnly:        profile.RemoteOnly,
		PreferredLocation: profile.PreferredLocation,
		MinSalary:         profile.MinSalary,
		SocialLinks:       unmarshalList(profile.SocialLinks),
		Skills:            unmarshalList(profile.Skills),
	}
}

func marshalList(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func unmarshalList(blob string) []string {
	var values []string
	if err := json.Unmarshal([]byte(blob), &values); err != nil || values == nil {
		return []string{}
	}
	return values
}
