package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/middlewares"
	"github.com/felirami/neetme/internal/models"
)

// LinkLister defines the interface that the link service must implement.
type LinkLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error)
}

// LinkResponse represents a link as returned by the API
// swagger:model LinkResponse
type LinkResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	URL             string  `json:"url"`
	Icon            *string `json:"icon,omitempty"`
	Order           int     `json:"order"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	TextColor       *string `json:"textColor,omitempty"`
	IconColor       *string `json:"iconColor,omitempty"`
}

func toLinkResponse(link *models.LinkDB) LinkResponse {
	return LinkResponse{
		ID:              link.LinkID.String(),
		Title:           link.Title,
		URL:             link.URL,
		Icon:            link.Icon,
		Order:           link.Position,
		BackgroundColor: link.BackgroundColor,
		TextColor:       link.TextColor,
		IconColor:       link.IconColor,
	}
}

// NewListLinksHandler returns an HTTP handler listing the user's links.
// @Summary List the user's links
// @Description Returns the links ordered by position
// @Tags links
// @Produce json
// @Success 200 {array} handlers.LinkResponse "Links"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/links [get]
// @Security BearerAuth
func NewListLinksHandler(lister LinkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Please sign in first")
			return
		}

		links, err := lister.List(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list links", "userID", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := make([]LinkResponse, 0, len(links))
		for i := range links {
			resp = append(resp, toLinkResponse(&links[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
