package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/models"
)

var ErrLinkNotFound = errors.New("link not found") // link does not exist or belongs to another user

// LinkService manages a user's ordered list of links.
type LinkService struct {
	users  UserReader
	reader LinkReader
	writer LinkWriter
	cache  ProfileCache
	events KafkaWriter
}

// NewLinkService creates a new LinkService.
func NewLinkService(
	users UserReader,
	reader LinkReader,
	writer LinkWriter,
	cache ProfileCache,
	events KafkaWriter,
) *LinkService {
	return &LinkService{
		users:  users,
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// List returns the user's links ordered by position.
func (svc *LinkService) List(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error) {
	return svc.reader.ListByUserID(ctx, userID)
}

// Append adds a link at the end of the user's list.
func (svc *LinkService) Append(ctx context.Context, userID uuid.UUID, title, url string, icon, backgroundColor, textColor, iconColor *string) (*models.LinkDB, error) {
	link, err := svc.writer.Save(ctx, userID, title, url, icon, backgroundColor, textColor, iconColor)
	if err != nil {
		return nil, err
	}

	publishProfileEvent(ctx, svc.events, models.EventLinkCreated, userID, "", link.LinkID.String())
	svc.invalidateFor(ctx, userID)
	logger.Log.Infow("Link created", "user_id", userID, "link_id", link.LinkID, "position", link.Position)

	return link, nil
}

// Update applies a partial update to one of the user's links. A link owned by
// another user is reported as not found.
func (svc *LinkService) Update(ctx context.Context, userID, linkID uuid.UUID, patch models.LinkPatch) (*models.LinkDB, error) {
	existing, err := svc.reader.GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.UserID != userID {
		return nil, ErrLinkNotFound
	}

	updated, err := svc.writer.Update(ctx, linkID, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrLinkNotFound
	}

	svc.invalidateFor(ctx, userID)
	return updated, nil
}

// Delete removes one of the user's links. Positions of the remaining links
// are left untouched.
func (svc *LinkService) Delete(ctx context.Context, userID, linkID uuid.UUID) error {
	existing, err := svc.reader.GetByID(ctx, linkID)
	if err != nil {
		return err
	}
	if existing == nil || existing.UserID != userID {
		return ErrLinkNotFound
	}

	if err := svc.writer.Delete(ctx, linkID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLinkNotFound
		}
		return err
	}

	svc.invalidateFor(ctx, userID)
	return nil
}

func (svc *LinkService) invalidateFor(ctx context.Context, userID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		logger.Log.Errorw("Failed to load user for cache invalidation", "user_id", userID, "error", err)
		return
	}
	if err := svc.cache.Invalidate(ctx, user.Username); err != nil {
		logger.Log.Errorw("Failed to invalidate profile cache", "username", user.Username, "error", err)
	}
}
