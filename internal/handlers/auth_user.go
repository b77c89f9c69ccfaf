package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/models"
	"github.com/felirami/neetme/internal/services"
)

// Authenticator defines the interface that the identity service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, address string) (*models.UserDB, string, error)
}

// AuthRequest represents the wallet sign-in payload
// swagger:model AuthRequest
type AuthRequest struct {
	// Wallet address, "0x" followed by 40 hex digits
	// example: 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed
	Address string `json:"address"`
}

// UserResponse represents a user profile as returned by the API
// swagger:model UserResponse
type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	AboutMe  *string `json:"aboutMe"`
	Avatar   *string `json:"avatar"`
	Image    *string `json:"image"`
}

// AuthResponse represents a successful sign-in
// swagger:model AuthResponse
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func toUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:       user.UserID.String(),
		Username: user.Username,
		Name:     user.Name,
		Bio:      user.Bio,
		AboutMe:  user.AboutMe,
		Avatar:   user.Avatar,
		Image:    user.Image,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// NewAuthenticateHandler returns an HTTP handler for wallet sign-in.
// @Summary Sign in with a wallet address
// @Description Signs the user in, creating the account on first sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.AuthRequest true "Wallet address"
// @Success 200 {object} handlers.AuthResponse "Session token and user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid address"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/user [post]
func NewAuthenticateHandler(authenticator Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req AuthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, token, err := authenticator.Authenticate(ctx, req.Address)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAddress) {
				writeError(w, http.StatusBadRequest, "Invalid wallet address")
				return
			}
			logger.Log.Errorw("sign-in failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{
			Token: token,
			User:  toUserResponse(user),
		})
	}
}
