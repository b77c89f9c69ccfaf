package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/models"
	"github.com/felirami/neetme/internal/services"
)

// ProfileRenderer defines the interface that the render service must implement.
type ProfileRenderer interface {
	Render(ctx context.Context, username string) (*models.ProfileView, error)
}

// NewPublicProfileHandler returns an HTTP handler serving public profile pages
// as JSON.
// @Summary Get a public profile
// @Description Returns the rendered profile for a claimed username
// @Tags public
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.ProfileView "Rendered profile"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /{username} [get]
func NewPublicProfileHandler(renderer ProfileRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		username := chi.URLParam(r, "username")

		view, err := renderer.Render(ctx, username)
		if err != nil {
			if errors.Is(err, services.ErrProfileNotFound) {
				writeError(w, http.StatusNotFound, "Profile not found")
				return
			}
			logger.Log.Errorw("failed to render profile", "username", username, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}
