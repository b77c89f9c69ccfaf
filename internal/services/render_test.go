package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/felirami/neetme/internal/models"
)

func TestRenderService_Render(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserReader(ctrl)
	links := NewMockLinkReader(ctrl)
	cache := NewMockProfileCache(ctrl)

	svc := NewRenderService(users, links, cache)
	userID := uuid.New()

	t.Run("FullProfile", func(t *testing.T) {
		name := "Alice"
		bio := "links below"
		about := "# Hi\nI build things"
		user := &models.UserDB{UserID: userID, Username: "alice", Name: &name, Bio: &bio, AboutMe: &about}

		icon := "https://cdn.simpleicons.org/github/000000"
		stored := []models.LinkDB{
			{LinkID: uuid.New(), UserID: userID, Title: "GitHub", URL: "https://github.com/alice", Icon: &icon, Position: 0},
			{LinkID: uuid.New(), UserID: userID, Title: "Instagram", URL: "https://instagram.com/alice", Position: 1},
		}

		cache.EXPECT().Get(gomock.Any(), "alice").Return(nil, nil)
		users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		links.EXPECT().ListByUserID(gomock.Any(), userID).Return(stored, nil)
		cache.EXPECT().Set(gomock.Any(), "alice", gomock.Any()).Return(nil)

		view, err := svc.Render(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, "alice", view.Username)
		assert.Equal(t, "Alice", view.DisplayName)
		assert.Equal(t, "links below", view.Bio)
		assert.Contains(t, view.AboutMeHTML, "<h1")

		assert.Len(t, view.Links, 2)
		gh := view.Links[0]
		assert.Equal(t, "#181717", gh.BackgroundColor)
		assert.Equal(t, "#FFFFFF", gh.TextColor)
		assert.False(t, gh.IsGradient)
		// Icon color follows the resolved brand scheme.
		assert.Equal(t, "https://cdn.simpleicons.org/github/FFFFFF", gh.Icon)

		ig := view.Links[1]
		assert.True(t, ig.IsGradient)
		assert.Contains(t, ig.BackgroundColor, "linear-gradient")
	})

	t.Run("OverridesBeatBrandColors", func(t *testing.T) {
		user := &models.UserDB{UserID: userID, Username: "alice"}
		bg, text := "#123456", "#ABCDEF"
		stored := []models.LinkDB{
			{LinkID: uuid.New(), UserID: userID, Title: "Instagram", URL: "https://instagram.com/alice", BackgroundColor: &bg, TextColor: &text},
		}

		cache.EXPECT().Get(gomock.Any(), "alice").Return(nil, nil)
		users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		links.EXPECT().ListByUserID(gomock.Any(), userID).Return(stored, nil)
		cache.EXPECT().Set(gomock.Any(), "alice", gomock.Any()).Return(nil)

		view, err := svc.Render(context.Background(), "alice")
		assert.NoError(t, err)

		link := view.Links[0]
		assert.Equal(t, "#123456", link.BackgroundColor)
		assert.Equal(t, "#ABCDEF", link.TextColor)
		// A solid background override disables the brand gradient.
		assert.False(t, link.IsGradient)
	})

	t.Run("ShortenedNameFallsBackToUsername", func(t *testing.T) {
		name := "0x5aAe...eAed"
		user := &models.UserDB{UserID: userID, Username: "alice", Name: &name}

		cache.EXPECT().Get(gomock.Any(), "alice").Return(nil, nil)
		users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		links.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, nil)
		cache.EXPECT().Set(gomock.Any(), "alice", gomock.Any()).Return(nil)

		view, err := svc.Render(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, "alice", view.DisplayName)
	})

	t.Run("CacheHit", func(t *testing.T) {
		cached := &models.ProfileView{Username: "alice", DisplayName: "Alice"}
		cache.EXPECT().Get(gomock.Any(), "alice").Return(cached, nil)

		view, err := svc.Render(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, cached, view)
	})

	t.Run("TempUsername", func(t *testing.T) {
		_, err := svc.Render(context.Background(), "temp_abcdef")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("EmptyUsername", func(t *testing.T) {
		_, err := svc.Render(context.Background(), "")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		cache.EXPECT().Get(gomock.Any(), "nobody").Return(nil, nil)
		users.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, nil)

		_, err := svc.Render(context.Background(), "nobody")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestRenderService_AvatarFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserReader(ctrl)
	links := NewMockLinkReader(ctrl)

	// No cache wired: rendering still works.
	svc := NewRenderService(users, links, nil)
	userID := uuid.New()

	t.Run("AvatarWins", func(t *testing.T) {
		avatar, image := "data:image/png;base64,AAAA", "https://example.com/oauth.png"
		user := &models.UserDB{UserID: userID, Username: "alice", Avatar: &avatar, Image: &image}

		users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		links.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, nil)

		view, err := svc.Render(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, avatar, view.AvatarURL)
	})

	t.Run("ImageFallback", func(t *testing.T) {
		image := "https://example.com/oauth.png"
		user := &models.UserDB{UserID: userID, Username: "alice", Image: &image}

		users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		links.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, nil)

		view, err := svc.Render(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, image, view.AvatarURL)
	})
}
