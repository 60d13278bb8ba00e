package services_test

import (
	"context"
	"testing"

	"github.com/akabanda/savings_group_app/internal/apperrors"
	"github.com/akabanda/savings_group_app/internal/core/domain"
	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockMemberRepo *MockMemberRepository
	mockTxnRepo    *MockTransactionRepository
	service        portssvc.ReportingSvc
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewReportService(suite.mockMemberRepo, suite.mockTxnRepo)
}

func savingTxn(memberID string, weekly int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		MemberID:      memberID,
		Type:          domain.Saving,
		WeeklySaving:  decimal.NewFromInt(weekly),
	}
}

func withdrawalTxn(memberID string, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		MemberID:      memberID,
		Type:          domain.Withdrawal,
		Withdrawal:    decimal.NewFromInt(amount),
	}
}

// Reads fan out through an errgroup, so the context seen by the repositories
// is derived from the request context. Mocks match on mock.Anything.

func (suite *ReportServiceTestSuite) TestGroupSummary() {
	ctx := context.Background()
	members := []domain.Member{{MemberID: "m1"}, {MemberID: "m2"}}
	txns := []domain.Transaction{
		savingTxn("m1", 1000),
		savingTxn("m2", 500),
		withdrawalTxn("m1", 300),
	}

	suite.mockMemberRepo.On("FindMembers", mock.Anything, (*bool)(nil)).Return(members, nil).Once()
	suite.mockTxnRepo.On("FindTransactions", mock.Anything).Return(txns, nil).Once()

	summary, err := suite.service.GroupSummary(ctx, "", "")

	suite.Require().NoError(err)
	suite.Equal(2, summary.TotalMembers)
	suite.Equal(3, summary.TotalTransactions)
	suite.True(summary.TotalSavings.Equal(decimal.NewFromInt(1500)))
	suite.True(summary.TotalWithdrawals.Equal(decimal.NewFromInt(300)))
	suite.True(summary.NetBalance.Equal(decimal.NewFromInt(1200)))
	suite.True(summary.AverageSavings.Equal(decimal.NewFromInt(750)))
}

func (suite *ReportServiceTestSuite) TestGroupSummary_DateRangeDelegates() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMembers", mock.Anything, (*bool)(nil)).Return([]domain.Member{}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByDateRange", mock.Anything, "2025-07-01", "2025-07-31").Return([]domain.Transaction{}, nil).Once()

	summary, err := suite.service.GroupSummary(ctx, "2025-07-01", "2025-07-31")

	suite.Require().NoError(err)
	suite.Equal(0, summary.TotalMembers)
	suite.True(summary.AverageSavings.IsZero())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGroupSummary_InvertedRangeRejected() {
	ctx := context.Background()

	summary, err := suite.service.GroupSummary(ctx, "2025-07-31", "2025-07-01")

	suite.Require().Error(err)
	suite.Nil(summary)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
}

func (suite *ReportServiceTestSuite) TestGroupSummary_RepoErrorPropagates() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMembers", mock.Anything, (*bool)(nil)).Return(nil, apperrors.ErrNotFound).Maybe()
	suite.mockTxnRepo.On("FindTransactions", mock.Anything).Return(nil, apperrors.ErrNotFound).Maybe()

	summary, err := suite.service.GroupSummary(ctx, "", "")

	suite.Require().Error(err)
	suite.Nil(summary)
}

func (suite *ReportServiceTestSuite) TestMemberReports() {
	ctx := context.Background()
	members := []domain.Member{
		{MemberID: "m1", FullName: "Alice"},
		{MemberID: "m2", FullName: "Bob"},
	}
	txns := []domain.Transaction{
		savingTxn("m1", 1000),
		withdrawalTxn("m1", 400),
	}

	suite.mockMemberRepo.On("FindMembers", mock.Anything, (*bool)(nil)).Return(members, nil).Once()
	suite.mockTxnRepo.On("FindTransactions", mock.Anything).Return(txns, nil).Once()

	rows, err := suite.service.MemberReports(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Alice", rows[0].Member.FullName)
	suite.True(rows[0].Balance.Balance.Equal(decimal.NewFromInt(600)))
	// A member with no transactions still gets a zeroed row.
	suite.True(rows[1].Balance.TotalSavings.IsZero())
	suite.True(rows[1].Balance.Balance.IsZero())
}

func (suite *ReportServiceTestSuite) TestMemberBalance() {
	ctx := context.Background()
	memberID := uuid.NewString()
	member := &domain.Member{MemberID: memberID, FullName: "Alice"}
	txns := []domain.Transaction{
		savingTxn(memberID, 1000),
		savingTxn(memberID, 500),
		withdrawalTxn(memberID, 300),
	}

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(member, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByMemberID", ctx, memberID).Return(txns, nil).Once()

	balance, err := suite.service.MemberBalance(ctx, memberID)

	suite.Require().NoError(err)
	suite.True(balance.TotalSavings.Equal(decimal.NewFromInt(1500)))
	suite.True(balance.TotalWithdrawals.Equal(decimal.NewFromInt(300)))
	suite.True(balance.Balance.Equal(decimal.NewFromInt(1200)))
}

func (suite *ReportServiceTestSuite) TestMemberBalance_UnknownMember() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(nil, apperrors.ErrNotFound).Once()

	balance, err := suite.service.MemberBalance(ctx, memberID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(balance)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsByMemberID", mock.Anything, mock.Anything)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
