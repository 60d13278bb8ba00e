package repositories

import (
	"context"

	"github.com/akabanda/savings_group_app/internal/core/domain"
)

// TransactionReader defines read operations for transactions. All listing
// methods return results ordered by date descending.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves every transaction.
	FindTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionsByMemberID retrieves all transactions for one member.
	FindTransactionsByMemberID(ctx context.Context, memberID string) ([]domain.Transaction, error)

	// FindTransactionsByDateRange retrieves transactions whose date falls
	// within [start, end], bounds inclusive.
	FindTransactionsByDateRange(ctx context.Context, start, end string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites an existing transaction row.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction. Hard delete, no recovery.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
