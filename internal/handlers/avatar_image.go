package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/services"
)

// AvatarGetter defines the interface that the profile service must implement.
type AvatarGetter interface {
	GetAvatar(ctx context.Context, userID uuid.UUID) (*services.Avatar, error)
}

// NewAvatarImageHandler returns an HTTP handler serving avatar images by user id.
// A data URI avatar is served as raw bytes, an external URL as a redirect.
// @Summary Get a user's avatar image
// @Tags profile
// @Produce image/*
// @Param userId path string true "User ID"
// @Success 200 {file} binary "Avatar image"
// @Failure 404 {object} handlers.ErrorResponse "Avatar not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /images/avatar/{userId} [get]
func NewAvatarImageHandler(getter AvatarGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Avatar not found")
			return
		}

		avatar, err := getter.GetAvatar(ctx, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound),
				errors.Is(err, services.ErrAvatarNotFound),
				errors.Is(err, services.ErrInvalidImage):
				writeError(w, http.StatusNotFound, "Avatar not found")
			default:
				logger.Log.Errorw("failed to load avatar", "userID", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		if avatar.ExternalURL != "" {
			http.Redirect(w, r, avatar.ExternalURL, http.StatusFound)
			return
		}

		w.Header().Set("Content-Type", avatar.ContentType)
		w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
		w.WriteHeader(http.StatusOK)
		w.Write(avatar.Data)
	}
}
