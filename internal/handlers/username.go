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

// UsernameClaimer defines the interface that the profile service must implement.
type UsernameClaimer interface {
	ClaimUsername(ctx context.Context, userID uuid.UUID, candidate string) (*models.UserDB, error)
}

// ClaimUsernameRequest represents the username claim payload
// swagger:model ClaimUsernameRequest
type ClaimUsernameRequest struct {
	// Desired username, 5 to 30 lowercase letters, digits, "_" or "-"
	// example: alice
	Username string `json:"username"`
}

// NewClaimUsernameHandler returns an HTTP handler for claiming a username.
// @Summary Claim a username
// @Description Replaces the user's temporary or current username
// @Tags profile
// @Accept json
// @Produce json
// @Param request body handlers.ClaimUsernameRequest true "Desired username"
// @Success 200 {object} handlers.UserResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid username"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Username already taken"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/user/username [post]
// @Security BearerAuth
func NewClaimUsernameHandler(claimer UsernameClaimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Please sign in first")
			return
		}

		var req ClaimUsernameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := claimer.ClaimUsername(ctx, userID, req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameInvalid):
				writeError(w, http.StatusBadRequest, "Invalid username")
			case errors.Is(err, services.ErrSameUsername):
				writeError(w, http.StatusBadRequest, "This is already your username")
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusConflict, "Username already taken")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to claim username", "userID", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(user))
	}
}
