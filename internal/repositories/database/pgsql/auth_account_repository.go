package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akabanda/savings_group_app/internal/apperrors"
	"github.com/akabanda/savings_group_app/internal/core/domain"
	portsrepo "github.com/akabanda/savings_group_app/internal/core/ports/repositories"
	"github.com/akabanda/savings_group_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuthAccountRepository struct {
	BaseRepository
}

func newPgxAuthAccountRepository(db *pgxpool.Pool) portsrepo.AuthAccountRepository {
	return &PgxAuthAccountRepository{BaseRepository{Pool: db}}
}

// Ensure PgxAuthAccountRepository implements portsrepo.AuthAccountRepository
var _ portsrepo.AuthAccountRepository = (*PgxAuthAccountRepository)(nil)

func toDomainAuthAccount(m models.AuthAccount) domain.AuthAccount {
	account := domain.AuthAccount{
		AccountID:    m.AccountID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
	if m.RefreshTokenHash.Valid {
		account.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiry.Valid {
		expiry := m.RefreshTokenExpiry.Time
		account.RefreshTokenExpiry = &expiry
	}
	return account
}

func (r *PgxAuthAccountRepository) SaveAccount(ctx context.Context, account domain.AuthAccount) error {
	query := `
        INSERT INTO auth_accounts (account_id, email, password_hash, created_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		strings.ToLower(strings.TrimSpace(account.Email)),
		account.PasswordHash,
		account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account email already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save auth account: %w", err)
	}
	return nil
}

func (r *PgxAuthAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.AuthAccount, error) {
	query := `
        SELECT account_id, email, password_hash, refresh_token_hash, refresh_token_expiry, created_at
        FROM auth_accounts WHERE account_id = $1;
    `
	return r.scanAccount(r.Pool.QueryRow(ctx, query, accountID))
}

func (r *PgxAuthAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.AuthAccount, error) {
	query := `
        SELECT account_id, email, password_hash, refresh_token_hash, refresh_token_expiry, created_at
        FROM auth_accounts WHERE LOWER(TRIM(email)) = $1;
    `
	normalized := strings.ToLower(strings.TrimSpace(email))
	return r.scanAccount(r.Pool.QueryRow(ctx, query, normalized))
}

func (r *PgxAuthAccountRepository) scanAccount(row pgx.Row) (*domain.AuthAccount, error) {
	var m models.AuthAccount
	err := row.Scan(
		&m.AccountID,
		&m.Email,
		&m.PasswordHash,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiry,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find auth account: %w", err)
	}
	account := toDomainAuthAccount(m)
	return &account, nil
}

func (r *PgxAuthAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM auth_accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete auth account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("auth account not found: %w", apperrors.ErrAccountNotFound)
	}
	return nil
}

func (r *PgxAuthAccountRepository) UpdateRefreshToken(ctx context.Context, accountID string, tokenHash string, expiry time.Time) error {
	query := `
        UPDATE auth_accounts
        SET refresh_token_hash = $1, refresh_token_expiry = $2
        WHERE account_id = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		sql.NullString{String: tokenHash, Valid: tokenHash != ""},
		sql.NullTime{Time: expiry, Valid: !expiry.IsZero()},
		accountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("auth account not found: %w", apperrors.ErrAccountNotFound)
	}
	return nil
}

func (r *PgxAuthAccountRepository) ClearRefreshToken(ctx context.Context, accountID string) error {
	query := `
        UPDATE auth_accounts
        SET refresh_token_hash = NULL, refresh_token_expiry = NULL
        WHERE account_id = $1;
    `
	// Logout for an unknown account is a no-op, not an error.
	if _, err := r.Pool.Exec(ctx, query, accountID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
