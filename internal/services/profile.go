package services

import (
	"context"
	"encoding/base64"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/models"
	"github.com/felirami/neetme/internal/repositories"
)

var (
	ErrUsernameInvalid = errors.New("invalid username")           // username fails the format rules
	ErrUsernameTaken   = errors.New("username already taken")     // another user holds the username
	ErrSameUsername    = errors.New("username is already yours")  // claim would be a no-op
	ErrInvalidImage    = errors.New("invalid image data")         // avatar payload is not an image data URI
	ErrAvatarNotFound  = errors.New("avatar not found")           // user has no avatar set
)

const (
	usernameMinLen = 5
	usernameMaxLen = 30
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Avatar is a decoded avatar image. Either Data with ContentType is set, or
// ExternalURL when the stored avatar is a plain URL rather than a data URI.
type Avatar struct {
	Data        []byte
	ContentType string
	ExternalURL string
}

// ProfileService manages usernames, profile fields and avatars.
type ProfileService struct {
	reader UserReader
	writer UserWriter
	cache  ProfileCache
	events KafkaWriter
}

// NewProfileService creates a new ProfileService.
func NewProfileService(
	reader UserReader,
	writer UserWriter,
	cache ProfileCache,
	events KafkaWriter,
) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// ValidateUsername reports whether the candidate satisfies the username rules:
// lowercase letters, digits, underscores and hyphens, 5 to 30 characters.
func ValidateUsername(candidate string) error {
	if len(candidate) < usernameMinLen || len(candidate) > usernameMaxLen {
		return ErrUsernameInvalid
	}
	if !usernamePattern.MatchString(candidate) {
		return ErrUsernameInvalid
	}
	if strings.HasPrefix(candidate, models.TempUsernamePrefix) {
		return ErrUsernameInvalid
	}
	return nil
}

// ClaimUsername assigns a permanent username to the user. The candidate must
// pass ValidateUsername and be free. Claiming the username the user already
// holds returns ErrSameUsername.
func (svc *ProfileService) ClaimUsername(ctx context.Context, userID uuid.UUID, candidate string) (*models.UserDB, error) {
	if err := ValidateUsername(candidate); err != nil {
		return nil, err
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Username == candidate {
		return nil, ErrSameUsername
	}

	existing, err := svc.reader.GetByUsername(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	updated, err := svc.writer.UpdateUsername(ctx, userID, candidate)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		// Someone claimed it between the pre-check and the update.
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	svc.invalidate(ctx, user.Username)
	svc.invalidate(ctx, updated.Username)
	publishProfileEvent(ctx, svc.events, models.EventUsernameClaimed, userID, updated.Username, "")
	logger.Log.Infow("Username claimed", "user_id", userID, "username", updated.Username)

	return updated, nil
}

// UpdateProfile applies a partial update to the user's profile fields. A nil
// field is left unchanged, a pointer to "" clears it.
func (svc *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (*models.UserDB, error) {
	updated, err := svc.writer.UpdateProfile(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	svc.invalidate(ctx, updated.Username)
	return updated, nil
}

// SaveAvatar stores the avatar image for the user. The payload must be an
// image data URI.
func (svc *ProfileService) SaveAvatar(ctx context.Context, userID uuid.UUID, imageData string) error {
	if !strings.HasPrefix(imageData, "data:image") {
		return ErrInvalidImage
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := svc.writer.UpdateAvatar(ctx, userID, imageData); err != nil {
		return err
	}

	svc.invalidate(ctx, user.Username)
	return nil
}

// GetAvatar returns the user's avatar. A data URI avatar is decoded into raw
// bytes with its content type; any other stored value comes back as an
// external URL.
func (svc *ProfileService) GetAvatar(ctx context.Context, userID uuid.UUID) (*Avatar, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stored := ""
	if user.Avatar != nil && *user.Avatar != "" {
		stored = *user.Avatar
	} else if user.Image != nil && *user.Image != "" {
		stored = *user.Image
	}
	if stored == "" {
		return nil, ErrAvatarNotFound
	}

	if !strings.HasPrefix(stored, "data:") {
		return &Avatar{ExternalURL: stored}, nil
	}

	// data:image/png;base64,....
	meta, payload, found := strings.Cut(stored, ",")
	if !found {
		return nil, ErrInvalidImage
	}
	contentType := strings.TrimPrefix(meta, "data:")
	contentType = strings.TrimSuffix(contentType, ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidImage
	}

	return &Avatar{Data: data, ContentType: contentType}, nil
}

func (svc *ProfileService) invalidate(ctx context.Context, username string) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx, username); err != nil {
		logger.Log.Errorw("Failed to invalidate profile cache", "username", username, "error", err)
	}
}
