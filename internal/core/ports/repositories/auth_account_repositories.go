package repositories

import (
	"context"
	"time"

	"github.com/akabanda/savings_group_app/internal/core/domain"
)

// AuthAccountRepository manages identity accounts: the credential records the
// auth gateway verifies against. Accounts live separately from member
// profiles; deleting a profile does not delete its account.
type AuthAccountRepository interface {
	// SaveAccount persists a new identity account.
	SaveAccount(ctx context.Context, account domain.AuthAccount) error

	// FindAccountByID retrieves an account by its ID.
	FindAccountByID(ctx context.Context, accountID string) (*domain.AuthAccount, error)

	// FindAccountByEmail retrieves an account by normalized email.
	FindAccountByEmail(ctx context.Context, email string) (*domain.AuthAccount, error)

	// DeleteAccount removes an account. Used as the compensating action when
	// profile creation fails after the account was already created.
	DeleteAccount(ctx context.Context, accountID string) error

	// UpdateRefreshToken stores the hash and expiry of the session refresh token.
	UpdateRefreshToken(ctx context.Context, accountID string, tokenHash string, expiry time.Time) error

	// ClearRefreshToken removes any stored refresh token for the account.
	ClearRefreshToken(ctx context.Context, accountID string) error
}
