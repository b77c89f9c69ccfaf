package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/middlewares"
	"github.com/felirami/neetme/internal/services"
)

// LinkDeleter defines the interface that the link service must implement.
type LinkDeleter interface {
	Delete(ctx context.Context, userID, linkID uuid.UUID) error
}

// DeleteLinkResponse represents a successful link deletion
// swagger:model DeleteLinkResponse
type DeleteLinkResponse struct {
	Success bool `json:"success"`
}

// NewDeleteLinkHandler returns an HTTP handler deleting one of the user's links.
// @Summary Delete a link
// @Description Removes a link the user owns; remaining positions keep their values
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} handlers.DeleteLinkResponse "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/links/{id} [delete]
// @Security BearerAuth
func NewDeleteLinkHandler(deleter LinkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Please sign in first")
			return
		}

		linkID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Link not found")
			return
		}

		if err := deleter.Delete(ctx, userID, linkID); err != nil {
			if errors.Is(err, services.ErrLinkNotFound) {
				writeError(w, http.StatusNotFound, "Link not found")
				return
			}
			logger.Log.Errorw("failed to delete link", "userID", userID, "linkID", linkID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, DeleteLinkResponse{Success: true})
	}
}
