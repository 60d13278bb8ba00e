package services

import (
	"context"

	"github.com/akabanda/savings_group_app/internal/core/domain"
	"github.com/akabanda/savings_group_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// GetAllTransactions retrieves every transaction, newest date first.
	GetAllTransactions(ctx context.Context) ([]domain.Transaction, error)

	// GetTransactionsByMemberID retrieves one member's transactions.
	GetTransactionsByMemberID(ctx context.Context, memberID string) ([]domain.Transaction, error)

	// GetTransactionsByDateRange retrieves transactions in [start, end].
	GetTransactionsByDateRange(ctx context.Context, start, end string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions.
type TransactionWriterSvc interface {
	// AddTransaction records a new transaction on behalf of a member.
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest, enteredBy string) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update; fields absent from the
	// request keep their stored values.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction permanently.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
