package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/middlewares"
	"github.com/felirami/neetme/internal/models"
	"github.com/felirami/neetme/internal/services"
)

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (*models.UserDB, error)
}

// UpdateProfileRequest represents a partial profile update. Omitted fields are
// left unchanged, empty strings clear the field.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Bio     *string `json:"bio"`
	AboutMe *string `json:"aboutMe"`
	Avatar  *string `json:"avatar"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating profile fields.
// @Summary Update profile fields
// @Description Applies a partial update to name, bio, about-me and avatar
// @Tags profile
// @Accept json
// @Produce json
// @Param request body handlers.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} handlers.UserResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/profile [patch]
// @Security BearerAuth
func NewUpdateProfileHandler(updater ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Please sign in first")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := updater.UpdateProfile(ctx, userID, models.ProfilePatch{
			Name:    req.Name,
			Bio:     req.Bio,
			AboutMe: req.AboutMe,
			Avatar:  req.Avatar,
		})
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to update profile", "userID", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(user))
	}
}
