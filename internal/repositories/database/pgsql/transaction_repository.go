package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/akabanda/savings_group_app/internal/apperrors"
	"github.com/akabanda/savings_group_app/internal/core/domain"
	portsrepo "github.com/akabanda/savings_group_app/internal/core/ports/repositories"
	"github.com/akabanda/savings_group_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		MemberID:      d.MemberID,
		MemberName:    d.MemberName,
		Date:          d.Date,
		Type:          string(d.Type),
		WeeklySaving:  d.WeeklySaving,
		Munomukabi:    d.Munomukabi,
		OtherSaving:   d.OtherSaving,
		Withdrawal:    d.Withdrawal,
		EnteredBy:     d.EnteredBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// toDomainTransaction fills the display fallbacks for rows whose member link
// has gone stale. Reads stay lenient; only writes validate.
func toDomainTransaction(m models.Transaction) domain.Transaction {
	memberName := m.MemberName
	if memberName == "" {
		memberName = "Unknown Member"
	}
	enteredBy := m.EnteredBy
	if enteredBy == "" {
		enteredBy = "Unknown"
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		MemberID:      m.MemberID,
		MemberName:    memberName,
		Date:          m.Date,
		Type:          domain.TransactionType(m.Type),
		WeeklySaving:  m.WeeklySaving,
		Munomukabi:    m.Munomukabi,
		OtherSaving:   m.OtherSaving,
		Withdrawal:    m.Withdrawal,
		EnteredBy:     enteredBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

const transactionColumns = `
	transaction_id,
	COALESCE(member_id, ''),
	COALESCE(member_name, ''),
	COALESCE(date, ''),
	COALESCE(type, 'Saving'),
	COALESCE(weekly_saving, 0),
	COALESCE(munomukabi, 0),
	COALESCE(other_saving, 0),
	COALESCE(withdrawal, 0),
	COALESCE(entered_by, ''),
	created_at, updated_at`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.MemberID,
		&m.MemberName,
		&m.Date,
		&m.Type,
		&m.WeeklySaving,
		&m.Munomukabi,
		&m.OtherSaving,
		&m.Withdrawal,
		&m.EnteredBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, member_id, member_name, date, type, weekly_saving, munomukabi, other_saving, withdrawal, entered_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.MemberID, m.MemberName, m.Date, m.Type,
		m.WeeklySaving, m.Munomukabi, m.OtherSaving, m.Withdrawal,
		m.EnteredBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	txn := toDomainTransaction(*m)
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, created_at DESC;`
	return r.queryTransactions(ctx, query)
}

func (r *PgxTransactionRepository) FindTransactionsByMemberID(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE member_id = $1 ORDER BY date DESC, created_at DESC;`
	return r.queryTransactions(ctx, query, memberID)
}

// FindTransactionsByDateRange is inclusive on both ends. Dates are stored as
// ISO-8601 text so lexicographic comparison matches chronological order.
func (r *PgxTransactionRepository) FindTransactionsByDateRange(ctx context.Context, start, end string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE date >= $1 AND date <= $2 ORDER BY date DESC, created_at DESC;`
	return r.queryTransactions(ctx, query, start, end)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        UPDATE transactions
        SET member_id = $1, member_name = $2, date = $3, type = $4,
            weekly_saving = $5, munomukabi = $6, other_saving = $7, withdrawal = $8,
            updated_at = $9
        WHERE transaction_id = $10;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.MemberID, m.MemberName, m.Date, m.Type,
		m.WeeklySaving, m.Munomukabi, m.OtherSaving, m.Withdrawal,
		m.UpdatedAt, m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
