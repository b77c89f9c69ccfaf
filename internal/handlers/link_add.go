package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/middlewares"
	"github.com/felirami/neetme/internal/models"
)

// LinkAppender defines the interface that the link service must implement.
type LinkAppender interface {
	Append(ctx context.Context, userID uuid.UUID, title, url string, icon, backgroundColor, textColor, iconColor *string) (*models.LinkDB, error)
}

// AddLinkRequest represents a new link
// swagger:model AddLinkRequest
type AddLinkRequest struct {
	// Link title, also used to resolve brand colors
	// example: GitHub
	Title string `json:"title"`
	// Target URL
	// example: https://github.com/alice
	URL             string  `json:"url"`
	Icon            *string `json:"icon"`
	BackgroundColor *string `json:"backgroundColor"`
	TextColor       *string `json:"textColor"`
	IconColor       *string `json:"iconColor"`
}

// NewAddLinkHandler returns an HTTP handler appending a link to the user's list.
// @Summary Add a link
// @Description Appends a link at the end of the user's list
// @Tags links
// @Accept json
// @Produce json
// @Param request body handlers.AddLinkRequest true "Link to add"
// @Success 201 {object} handlers.LinkResponse "Created link"
// @Failure 400 {object} handlers.ErrorResponse "Missing title or URL"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/links [post]
// @Security BearerAuth
func NewAddLinkHandler(appender LinkAppender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Please sign in first")
			return
		}

		var req AddLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Title == "" || req.URL == "" {
			writeError(w, http.StatusBadRequest, "Title and URL are required")
			return
		}

		link, err := appender.Append(ctx, userID, req.Title, req.URL, req.Icon, req.BackgroundColor, req.TextColor, req.IconColor)
		if err != nil {
			logger.Log.Errorw("failed to add link", "userID", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, toLinkResponse(link))
	}
}
