package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akabanda/savings_group_app/internal/apperrors"
	"github.com/akabanda/savings_group_app/internal/core/domain"
	portsrepo "github.com/akabanda/savings_group_app/internal/core/ports/repositories"
	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/utils/reporting"
	"golang.org/x/sync/errgroup"
)

// reportService computes financial reports. It reads members and
// transactions concurrently and hands the arithmetic to the reporting
// package, which is pure and side-effect free.
type reportService struct {
	BaseService
	memberRepo portsrepo.MemberRepositoryFacade
	txnRepo    portsrepo.TransactionRepositoryFacade
}

// NewReportService creates the reporting service.
func NewReportService(memberRepo portsrepo.MemberRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.ReportingSvc {
	return &reportService{
		memberRepo: memberRepo,
		txnRepo:    txnRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportService)(nil)

func (s *reportService) fetchMembersAndTransactions(ctx context.Context, from, to string) ([]domain.Member, []domain.Transaction, error) {
	var (
		members []domain.Member
		txns    []domain.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.memberRepo.FindMembers(gctx, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch members for report: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if from == "" && to == "" {
			txns, err = s.txnRepo.FindTransactions(gctx)
		} else {
			start, end := from, to
			if start == "" {
				start = "0000-01-01"
			}
			if end == "" {
				end = "9999-12-31"
			}
			txns, err = s.txnRepo.FindTransactionsByDateRange(gctx, start, end)
		}
		if err != nil {
			return fmt.Errorf("failed to fetch transactions for report: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return members, txns, nil
}

func (s *reportService) GroupSummary(ctx context.Context, from, to string) (*domain.GroupSummary, error) {
	if from != "" && to != "" && from > to {
		return nil, apperrors.NewBadRequestError("start date must not be after end date")
	}

	members, txns, err := s.fetchMembersAndTransactions(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "failed to build group summary")
		return nil, err
	}

	summary := reporting.CalculateGroupTotals(txns, members)
	return &summary, nil
}

func (s *reportService) MemberReports(ctx context.Context) ([]domain.MemberReportRow, error) {
	members, txns, err := s.fetchMembersAndTransactions(ctx, "", "")
	if err != nil {
		s.LogError(ctx, err, "failed to build member reports")
		return nil, err
	}

	grouped := reporting.GroupTransactionsByMember(txns)
	rows := make([]domain.MemberReportRow, len(members))
	for i, member := range members {
		rows[i] = domain.MemberReportRow{
			Member:  member,
			Balance: reporting.CalculateMemberBalance(grouped[member.MemberID]),
		}
	}
	return rows, nil
}

func (s *reportService) MemberBalance(ctx context.Context, memberID string) (*domain.MemberBalance, error) {
	if _, err := s.memberRepo.FindMemberByID(ctx, memberID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve member for balance: %w", err)
	}

	txns, err := s.txnRepo.FindTransactionsByMemberID(ctx, memberID)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch member transactions for balance")
		return nil, fmt.Errorf("failed to fetch member transactions: %w", err)
	}

	balance := reporting.CalculateMemberBalance(txns)
	return &balance, nil
}
