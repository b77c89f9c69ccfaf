package services

import (
	"context"
	"errors"
	"strings"

	"github.com/felirami/neetme/internal/address"
	"github.com/felirami/neetme/internal/brand"
	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/markdown"
	"github.com/felirami/neetme/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found") // no public profile for the username

// RenderService assembles public profile pages.
type RenderService struct {
	users UserReader
	links LinkReader
	cache ProfileCache
}

// NewRenderService creates a new RenderService.
func NewRenderService(users UserReader, links LinkReader, cache ProfileCache) *RenderService {
	return &RenderService{
		users: users,
		links: links,
		cache: cache,
	}
}

// Render builds the public profile view for a claimed username. Temporary
// usernames are never rendered. Rendered views are cached by username and
// invalidated on every profile or link mutation.
func (svc *RenderService) Render(ctx context.Context, username string) (*models.ProfileView, error) {
	if username == "" || strings.HasPrefix(username, models.TempUsernamePrefix) {
		return nil, ErrProfileNotFound
	}

	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, username)
		if err != nil {
			logger.Log.Errorw("Failed to read profile cache", "username", username, "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}

	links, err := svc.links.ListByUserID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	view := &models.ProfileView{
		Username:    user.Username,
		DisplayName: displayName(user),
		Links:       make([]models.LinkView, 0, len(links)),
	}
	if user.Bio != nil {
		view.Bio = *user.Bio
	}
	if user.AboutMe != nil {
		view.AboutMeHTML = markdown.Render(*user.AboutMe)
	}
	if user.Avatar != nil && *user.Avatar != "" {
		view.AvatarURL = *user.Avatar
	} else if user.Image != nil {
		view.AvatarURL = *user.Image
	}

	for _, link := range links {
		view.Links = append(view.Links, renderLink(link))
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, username, view); err != nil {
			logger.Log.Errorw("Failed to write profile cache", "username", username, "error", err)
		}
	}

	return view, nil
}

// displayName prefers the profile name but falls back to the username when
// the name is empty or still the shortened wallet address from sign-up.
func displayName(user *models.UserDB) string {
	if user.Name == nil || *user.Name == "" || address.IsShortened(*user.Name) {
		return user.Username
	}
	return *user.Name
}

// renderLink merges stored per-link overrides over the brand colors resolved
// from the link title.
func renderLink(link models.LinkDB) models.LinkView {
	colors := brand.Resolve(link.Title)

	view := models.LinkView{
		ID:              link.LinkID.String(),
		Title:           link.Title,
		URL:             link.URL,
		BackgroundColor: colors.Background,
		TextColor:       colors.Text,
		IconColor:       colors.Icon,
		IsGradient:      colors.IsGradient,
	}

	if link.BackgroundColor != nil && *link.BackgroundColor != "" {
		view.BackgroundColor = *link.BackgroundColor
		view.IsGradient = false
	}
	if link.TextColor != nil && *link.TextColor != "" {
		view.TextColor = *link.TextColor
	}
	if link.IconColor != nil && *link.IconColor != "" {
		view.IconColor = *link.IconColor
	}
	if link.Icon != nil && *link.Icon != "" {
		view.Icon = brand.RewriteIconColor(*link.Icon, view.IconColor)
	}

	return view
}
