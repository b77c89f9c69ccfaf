package handlers

import (
	"net/http"

	"github.com/felirami/neetme/internal/brand"
)

// DetectPlatformResponse represents a recognized platform
// swagger:model DetectPlatformResponse
type DetectPlatformResponse struct {
	Detected bool            `json:"detected"`
	Platform *brand.Platform `json:"platform,omitempty"`
}

// NewSuggestPlatformsHandler returns an HTTP handler suggesting platforms by
// name. An empty query returns the full catalog.
// @Summary Suggest platforms
// @Description Returns platforms matching the query by name or slug
// @Tags platforms
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} brand.Suggestion "Matching platforms"
// @Router /api/platforms [get]
func NewSuggestPlatformsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		writeJSON(w, http.StatusOK, brand.Suggest(query))
	}
}

// NewDetectPlatformHandler returns an HTTP handler recognizing the platform
// behind a URL.
// @Summary Detect the platform of a URL
// @Tags platforms
// @Produce json
// @Param url query string true "URL to inspect"
// @Success 200 {object} handlers.DetectPlatformResponse "Detection result"
// @Failure 400 {object} handlers.ErrorResponse "Missing url parameter"
// @Router /api/platforms/detect [get]
func NewDetectPlatformHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")
		if url == "" {
			writeError(w, http.StatusBadRequest, "url parameter is required")
			return
		}

		platform, ok := brand.DetectPlatform(url)
		writeJSON(w, http.StatusOK, DetectPlatformResponse{
			Detected: ok,
			Platform: platform,
		})
	}
}
