package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akabanda/savings_group_app/internal/apperrors"
	"github.com/akabanda/savings_group_app/internal/core/domain"
	portsrepo "github.com/akabanda/savings_group_app/internal/core/ports/repositories"
	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/dto"
	"github.com/akabanda/savings_group_app/internal/utils/validation"
	"github.com/google/uuid"
)

// transactionService implements transaction recording and retrieval. Writes
// validate against the member registry; reads are lenient and always return
// whatever is stored.
type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	memberRepo portsrepo.MemberRepositoryFacade
}

// NewTransactionService creates the transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, memberRepo portsrepo.MemberRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:    txnRepo,
		memberRepo: memberRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to get transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to get transaction by ID: %w", err)
	}
	return txn, nil
}

func (s *transactionService) GetAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) GetTransactionsByMemberID(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByMemberID(ctx, memberID)
	if err != nil {
		s.LogError(ctx, err, "failed to list member transactions", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to list member transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) GetTransactionsByDateRange(ctx context.Context, start, end string) ([]domain.Transaction, error) {
	if start != "" && end != "" && start > end {
		return nil, apperrors.NewBadRequestError("start date must not be after end date")
	}
	if start == "" {
		start = "0000-01-01"
	}
	if end == "" {
		end = "9999-12-31"
	}

	txns, err := s.txnRepo.FindTransactionsByDateRange(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions by date range",
			slog.String("start", start), slog.String("end", end))
		return nil, fmt.Errorf("failed to list transactions by date range: %w", err)
	}
	return txns, nil
}

// AddTransaction records a new transaction. The member must exist at write
// time and their display name is snapshotted onto the record, so later
// profile changes never rewrite history.
func (s *transactionService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest, enteredBy string) (*domain.Transaction, error) {
	if errs := validation.Transaction(validation.TransactionInput{
		MemberID:     req.MemberID,
		Date:         req.Date,
		Type:         req.Type,
		WeeklySaving: req.WeeklySaving,
		Munomukabi:   req.Munomukabi,
		OtherSaving:  req.OtherSaving,
		Withdrawal:   req.Withdrawal,
	}); len(errs) > 0 {
		return nil, apperrors.NewBadRequestError(validation.FormatValidationErrors(errs))
	}

	member, err := s.memberRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("member does not exist")
		}
		return nil, fmt.Errorf("failed to resolve member for transaction: %w", err)
	}

	memberName := req.MemberName
	if memberName == "" {
		memberName = member.FullName
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		MemberID:      member.MemberID,
		MemberName:    memberName,
		Date:          req.Date,
		Type:          domain.TransactionType(req.Type),
		WeeklySaving:  req.WeeklySaving,
		Munomukabi:    req.Munomukabi,
		OtherSaving:   req.OtherSaving,
		Withdrawal:    req.Withdrawal,
		EnteredBy:     enteredBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to save transaction", slog.String("member_id", txn.MemberID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("member_id", txn.MemberID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// UpdateTransaction merges the supplied fields into the stored record.
// Nil fields keep their stored values, so editing the date alone cannot
// zero out the amounts.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load transaction for update: %w", err)
	}

	if req.MemberID != nil && *req.MemberID != txn.MemberID {
		member, err := s.memberRepo.FindMemberByID(ctx, *req.MemberID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewBadRequestError("member does not exist")
			}
			return nil, fmt.Errorf("failed to resolve member for transaction update: %w", err)
		}
		txn.MemberID = member.MemberID
		txn.MemberName = member.FullName
	}
	if req.MemberName != nil {
		txn.MemberName = *req.MemberName
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.WeeklySaving != nil {
		txn.WeeklySaving = *req.WeeklySaving
	}
	if req.Munomukabi != nil {
		txn.Munomukabi = *req.Munomukabi
	}
	if req.OtherSaving != nil {
		txn.OtherSaving = *req.OtherSaving
	}
	if req.Withdrawal != nil {
		txn.Withdrawal = *req.Withdrawal
	}

	if errs := validation.Transaction(validation.TransactionInput{
		MemberID:     txn.MemberID,
		Date:         txn.Date,
		Type:         string(txn.Type),
		WeeklySaving: txn.WeeklySaving,
		Munomukabi:   txn.Munomukabi,
		OtherSaving:  txn.OtherSaving,
		Withdrawal:   txn.Withdrawal,
	}); len(errs) > 0 {
		return nil, apperrors.NewBadRequestError(validation.FormatValidationErrors(errs))
	}

	txn.UpdatedAt = time.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("updated_by", updaterID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
