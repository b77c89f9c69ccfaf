package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByAccount(ctx context.Context, provider, providerAccountID string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	SaveWithAccount(ctx context.Context, username, name, provider, providerAccountID string) (*models.UserDB, error)
	UpdateUsername(ctx context.Context, userID uuid.UUID, username string) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (*models.UserDB, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar string) error
}

// LinkReader defines read-only operations for links.
type LinkReader interface {
	GetByID(ctx context.Context, linkID uuid.UUID) (*models.LinkDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error)
}

// LinkWriter defines write operations for links.
type LinkWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title, url string, icon, backgroundColor, textColor, iconColor *string) (*models.LinkDB, error)
	Update(ctx context.Context, linkID uuid.UUID, patch models.LinkPatch) (*models.LinkDB, error)
	Delete(ctx context.Context, linkID uuid.UUID) error
}

// ProfileCache caches rendered public profiles by username.
type ProfileCache interface {
	Get(ctx context.Context, username string) (*models.ProfileView, error)
	Set(ctx context.Context, username string, view *models.ProfileView) error
	Invalidate(ctx context.Context, username string) error
}

// TokenGenerator defines an interface for generating session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}
