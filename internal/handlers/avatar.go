package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/middlewares"
	"github.com/felirami/neetme/internal/services"
)

// AvatarSaver defines the interface that the profile service must implement.
type AvatarSaver interface {
	SaveAvatar(ctx context.Context, userID uuid.UUID, imageData string) error
}

// UploadAvatarRequest represents the avatar upload payload
// swagger:model UploadAvatarRequest
type UploadAvatarRequest struct {
	// Avatar as an image data URI
	// example: data:image/png;base64,iVBORw0...
	ImageData string `json:"imageData"`
}

// UploadAvatarResponse represents a successful avatar upload
// swagger:model UploadAvatarResponse
type UploadAvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}

// NewUploadAvatarHandler returns an HTTP handler for uploading an avatar.
// The request body is capped at maxBytes.
// @Summary Upload an avatar
// @Description Stores the avatar image sent as a data URI
// @Tags profile
// @Accept json
// @Produce json
// @Param request body handlers.UploadAvatarRequest true "Avatar image"
// @Success 200 {object} handlers.UploadAvatarResponse "Stored avatar URL"
// @Failure 400 {object} handlers.ErrorResponse "Invalid image data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 413 {object} handlers.ErrorResponse "Image too large"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/upload/avatar [post]
// @Security BearerAuth
func NewUploadAvatarHandler(saver AvatarSaver, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Please sign in first")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		var req UploadAvatarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "Image too large")
				return
			}
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := saver.SaveAvatar(ctx, userID, req.ImageData); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidImage):
				writeError(w, http.StatusBadRequest, "Invalid image data")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to save avatar", "userID", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, UploadAvatarResponse{AvatarURL: req.ImageData})
	}
}
