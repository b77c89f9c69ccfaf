package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AddressResolver resolves a wallet address header to an existing user
type AddressResolver interface {
	Resolve(ctx context.Context, address string) (*models.UserDB, error)
}

const (
	addressHeader = "X-User-Address"
	devUserHeader = "X-User-Id"

	// devModeAddress activates the header bypass, accepted only when the
	// middleware was built with devMode set.
	devModeAddress = "dev-mode"
)

type userIDContextKey struct{}

var userIDKey = userIDContextKey{}

// AuthMiddleware authenticates requests either by a Bearer session token or by
// the X-User-Address header carrying a wallet address. In dev mode the literal
// address "dev-mode" plus an explicit X-User-Id header impersonates any user.
func AuthMiddleware(tokener Tokener, resolver AddressResolver, devMode bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if tokenString, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
				userID, err := tokener.GetUserID(ctx, tokenString)
				if err != nil {
					logger.Log.Errorw("authorization failed", "err", err)
					unauthorized(w)
					return
				}
				next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
				return
			}

			address := r.Header.Get(addressHeader)
			if address == "" {
				unauthorized(w)
				return
			}

			if devMode && address == devModeAddress {
				userID, err := uuid.Parse(r.Header.Get(devUserHeader))
				if err != nil {
					logger.Log.Errorw("dev bypass without a valid user id", "err", err)
					unauthorized(w)
					return
				}
				next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
				return
			}

			user, err := resolver.Resolve(ctx, address)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, user.UserID)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Please sign in first"})
}

// SetUserIDToContext stores the authenticated user id in the context
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the context.
// Returns uuid.Nil and false if not present.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
