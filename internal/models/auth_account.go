package models

import (
	"database/sql"
	"time"
)

// AuthAccount is the database row for an identity account.
type AuthAccount struct {
	AccountID    string `db:"account_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`

	RefreshTokenHash   sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiry sql.NullTime   `db:"refresh_token_expiry"`

	CreatedAt time.Time `db:"created_at"`
}
