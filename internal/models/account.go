package models

import (
	"time"

	"github.com/google/uuid"
)

// ProviderWallet is the provider tag for wallet-address identities.
const ProviderWallet = "wallet"

// AccountDB binds an external identity to a user. The unique constraint on
// (provider, provider_account_id) is what resolves first-contact races.
type AccountDB struct {
	AccountID         uuid.UUID `json:"account_id" db:"account_id"`
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	Provider          string    `json:"provider" db:"provider"`
	ProviderAccountID string    `json:"provider_account_id" db:"provider_account_id"` // checksummed wallet address
	Type              string    `json:"type" db:"type"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
