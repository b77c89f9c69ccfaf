package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/middlewares"
	"github.com/felirami/neetme/internal/models"
	"github.com/felirami/neetme/internal/services"
)

// LinkUpdater defines the interface that the link service must implement.
type LinkUpdater interface {
	Update(ctx context.Context, userID, linkID uuid.UUID, patch models.LinkPatch) (*models.LinkDB, error)
}

// UpdateLinkRequest represents a partial link update. Omitted fields are left
// unchanged, empty strings clear the field.
// swagger:model UpdateLinkRequest
type UpdateLinkRequest struct {
	Title           *string `json:"title"`
	URL             *string `json:"url"`
	Icon            *string `json:"icon"`
	Order           *int    `json:"order"`
	BackgroundColor *string `json:"backgroundColor"`
	TextColor       *string `json:"textColor"`
	IconColor       *string `json:"iconColor"`
}

// NewUpdateLinkHandler returns an HTTP handler updating one of the user's links.
// @Summary Update a link
// @Description Applies a partial update to a link the user owns
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param request body handlers.UpdateLinkRequest true "Fields to update"
// @Success 200 {object} handlers.LinkResponse "Updated link"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/links/{id} [patch]
// @Security BearerAuth
func NewUpdateLinkHandler(updater LinkUpdater) http.HandlerFunc {
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

		var req UpdateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		link, err := updater.Update(ctx, userID, linkID, models.LinkPatch{
			Title:           req.Title,
			URL:             req.URL,
			Icon:            req.Icon,
			Position:        req.Order,
			BackgroundColor: req.BackgroundColor,
			TextColor:       req.TextColor,
			IconColor:       req.IconColor,
		})
		if err != nil {
			if errors.Is(err, services.ErrLinkNotFound) {
				writeError(w, http.StatusNotFound, "Link not found")
				return
			}
			logger.Log.Errorw("failed to update link", "userID", userID, "linkID", linkID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, toLinkResponse(link))
	}
}
