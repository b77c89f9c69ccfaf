package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/address"
	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/models"
	"github.com/felirami/neetme/internal/repositories"
)

var (
	ErrInvalidAddress = errors.New("invalid wallet address") // address is not a valid hex wallet address
	ErrUserNotFound   = errors.New("user not found")         // no user matches the given identifier
)

// IdentityService signs users in by wallet address.
type IdentityService struct {
	reader UserReader
	writer UserWriter
	token  TokenGenerator
	events KafkaWriter
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(
	reader UserReader,
	writer UserWriter,
	token TokenGenerator,
	events KafkaWriter,
) *IdentityService {
	return &IdentityService{
		reader: reader,
		writer: writer,
		token:  token,
		events: events,
	}
}

// Authenticate signs in the user owning the given wallet address, creating the
// user on first sign-in. Repeated calls with the same address are idempotent
// and resolve to the same user. Returns the user and a session token.
func (svc *IdentityService) Authenticate(ctx context.Context, rawAddress string) (*models.UserDB, string, error) {
	normalized, err := address.Normalize(rawAddress)
	if err != nil {
		logger.Log.Infow("Rejected sign-in with invalid address", "address", rawAddress)
		return nil, "", ErrInvalidAddress
	}

	user, err := svc.reader.GetByAccount(ctx, models.ProviderWallet, normalized)
	if err != nil {
		return nil, "", err
	}

	if user == nil {
		username := models.TempUsernamePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
		user, err = svc.writer.SaveWithAccount(ctx, username, address.Shorten(normalized), models.ProviderWallet, normalized)
		if errors.Is(err, repositories.ErrUniqueViolation) {
			// Lost a concurrent first sign-in race. The winner's user exists now.
			user, err = svc.reader.GetByAccount(ctx, models.ProviderWallet, normalized)
		}
		if err != nil {
			return nil, "", err
		}
		if user == nil {
			return nil, "", ErrUserNotFound
		}
		publishProfileEvent(ctx, svc.events, models.EventUserCreated, user.UserID, user.Username, "")
		logger.Log.Infow("Created user for wallet", "user_id", user.UserID, "username", user.Username)
	}

	token, err := svc.token.Generate(ctx, user.UserID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Resolve finds the existing user owning the given wallet address. Unlike
// Authenticate it never creates a user.
func (svc *IdentityService) Resolve(ctx context.Context, rawAddress string) (*models.UserDB, error) {
	normalized, err := address.Normalize(rawAddress)
	if err != nil {
		return nil, ErrInvalidAddress
	}

	user, err := svc.reader.GetByAccount(ctx, models.ProviderWallet, normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
