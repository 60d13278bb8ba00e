package services_test

import (
	"context"
	"testing"

	"github.com/akabanda/savings_group_app/internal/apperrors"
	"github.com/akabanda/savings_group_app/internal/core/domain"
	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/core/services"
	"github.com/akabanda/savings_group_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MemberServiceTestSuite struct {
	suite.Suite
	mockMemberRepo  *MockMemberRepository
	mockAccountRepo *MockAuthAccountRepository
	service         portssvc.MemberSvcFacade
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockAccountRepo = new(MockAuthAccountRepository)
	suite.service = services.NewMemberService(suite.mockMemberRepo, suite.mockAccountRepo)
}

// --- CreateMember Tests ---

func (suite *MemberServiceTestSuite) TestCreateMember_Success() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{
		FullName: "Jane Smith",
		Username: "jane_smith",
		Email:    "Jane.Smith@Example.com",
		Password: "password123",
	}

	suite.mockMemberRepo.On("FindMemberByUsername", ctx, "jane_smith").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMemberRepo.On("FindMemberByEmail", ctx, "jane.smith@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.AuthAccount) bool {
		return a.Email == "jane.smith@example.com" && a.PasswordHash != "" && a.PasswordHash != req.Password
	})).Return(nil).Once()
	suite.mockMemberRepo.On("SaveMember", ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.Username == "jane_smith" &&
			m.Email == "jane.smith@example.com" &&
			m.Role == domain.RoleMember &&
			m.IsActive &&
			m.CreatedBy == "admin-1"
	})).Return(nil).Once()

	member, err := suite.service.CreateMember(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(member)
	suite.Equal("Jane Smith", member.FullName)
	suite.NotEmpty(member.MemberID)
	suite.NotEmpty(member.DateJoined)
	suite.mockMemberRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestCreateMember_UsernameTakenCaseInsensitive() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{
		FullName: "Jane Smith",
		Username: "Jane_Smith", // differs only by case
		Email:    "jane@example.com",
		Password: "password123",
	}
	existing := &domain.Member{MemberID: uuid.NewString(), Username: "jane_smith"}

	// Pre-check runs against the normalized username.
	suite.mockMemberRepo.On("FindMemberByUsername", ctx, "jane_smith").Return(existing, nil).Once()

	member, err := suite.service.CreateMember(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.Nil(member)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)
	suite.mockMemberRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestCreateMember_InvalidInput() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{
		FullName: "J",
		Username: "x",
		Email:    "not-an-email",
		Password: "123",
	}

	member, err := suite.service.CreateMember(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.Nil(member)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "SaveMember", mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestCreateMember_ProfileSaveFailureDeletesAccount() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{
		FullName: "Jane Smith",
		Username: "jane_smith",
		Email:    "jane@example.com",
		Password: "password123",
	}

	suite.mockMemberRepo.On("FindMemberByUsername", ctx, "jane_smith").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMemberRepo.On("FindMemberByEmail", ctx, "jane@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.AuthAccount")).Return(nil).Once()
	suite.mockMemberRepo.On("SaveMember", ctx, mock.AnythingOfType("domain.Member")).Return(assert.AnError).Once()
	// The compensating delete must run so the identity is not orphaned.
	suite.mockAccountRepo.On("DeleteAccount", ctx, mock.AnythingOfType("string")).Return(nil).Once()

	member, err := suite.service.CreateMember(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.Nil(member)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- GetMemberByID Tests ---

func (suite *MemberServiceTestSuite) TestGetMemberByID_Success() {
	ctx := context.Background()
	memberID := uuid.NewString()
	expected := &domain.Member{MemberID: memberID, FullName: "Found Member"}

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(expected, nil).Once()

	member, err := suite.service.GetMemberByID(ctx, memberID)

	suite.Require().NoError(err)
	suite.Equal(expected, member)
}

func (suite *MemberServiceTestSuite) TestGetMemberByID_NotFound() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(nil, apperrors.ErrNotFound).Once()

	member, err := suite.service.GetMemberByID(ctx, memberID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(member)
}

// Reads do not modify anything: fetching the same member twice yields the
// same result and exactly two repository reads.
func (suite *MemberServiceTestSuite) TestGetMemberByID_Idempotent() {
	ctx := context.Background()
	memberID := uuid.NewString()
	expected := &domain.Member{MemberID: memberID, FullName: "Found Member"}

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(expected, nil).Twice()

	first, err1 := suite.service.GetMemberByID(ctx, memberID)
	second, err2 := suite.service.GetMemberByID(ctx, memberID)

	suite.Require().NoError(err1)
	suite.Require().NoError(err2)
	suite.Equal(first, second)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

// --- ListMembers Tests ---

func (suite *MemberServiceTestSuite) TestListMembers_StatusFilter() {
	ctx := context.Background()
	active := []domain.Member{{MemberID: "m1", IsActive: true}}

	suite.mockMemberRepo.On("FindMembers", ctx, mock.MatchedBy(func(p *bool) bool {
		return p != nil && *p
	})).Return(active, nil).Once()

	members, err := suite.service.ListMembers(ctx, dto.ListMembersParams{Status: "active"})

	suite.Require().NoError(err)
	suite.Len(members, 1)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestListMembers_NoFilter() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMembers", ctx, (*bool)(nil)).Return([]domain.Member{}, nil).Once()

	members, err := suite.service.ListMembers(ctx, dto.ListMembersParams{})

	suite.Require().NoError(err)
	suite.Empty(members)
}

// --- SuggestMembers Tests ---

func (suite *MemberServiceTestSuite) TestSuggestMembers_EmptyQuerySkipsSearch() {
	ctx := context.Background()

	members, err := suite.service.SuggestMembers(ctx, "   ")

	suite.Require().NoError(err)
	suite.Empty(members)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "SearchMembers", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestSuggestMembers_LimitsToTen() {
	ctx := context.Background()

	suite.mockMemberRepo.On("SearchMembers", ctx, "ja", 10).Return([]domain.Member{{MemberID: "m1"}}, nil).Once()

	members, err := suite.service.SuggestMembers(ctx, "ja")

	suite.Require().NoError(err)
	suite.Len(members, 1)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

// --- UpdateMember Tests ---

func (suite *MemberServiceTestSuite) TestUpdateMember_PartialUpdateKeepsOtherFields() {
	ctx := context.Background()
	memberID := uuid.NewString()
	existing := &domain.Member{
		MemberID:  memberID,
		FullName:  "Old Name",
		Username:  "oldname",
		Email:     "old@example.com",
		Residence: "Kampala",
		IsActive:  true,
	}
	newName := "New Name"

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(existing, nil).Once()
	suite.mockMemberRepo.On("UpdateMember", ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.FullName == newName &&
			m.Username == "oldname" &&
			m.Email == "old@example.com" &&
			m.Residence == "Kampala" &&
			m.UpdatedBy == "admin-1"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateMember(ctx, memberID, dto.UpdateMemberRequest{FullName: &newName}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(newName, updated.FullName)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestUpdateMember_EmailConflict() {
	ctx := context.Background()
	memberID := uuid.NewString()
	existing := &domain.Member{MemberID: memberID, Username: "jane", Email: "jane@example.com", IsActive: true}
	newEmail := "Taken@Example.com"
	other := &domain.Member{MemberID: uuid.NewString(), Email: "taken@example.com"}

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(existing, nil).Once()
	suite.mockMemberRepo.On("FindMemberByEmail", ctx, "taken@example.com").Return(other, nil).Once()

	updated, err := suite.service.UpdateMember(ctx, memberID, dto.UpdateMemberRequest{Email: &newEmail}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(updated)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "UpdateMember", mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_SameEmailUnchangedSkipsCheck() {
	ctx := context.Background()
	memberID := uuid.NewString()
	existing := &domain.Member{MemberID: memberID, Username: "jane", Email: "jane@example.com", IsActive: true}
	sameEmail := "Jane@Example.com" // normalizes to the stored value

	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(existing, nil).Once()
	suite.mockMemberRepo.On("UpdateMember", ctx, mock.AnythingOfType("domain.Member")).Return(nil).Once()

	_, err := suite.service.UpdateMember(ctx, memberID, dto.UpdateMemberRequest{Email: &sameEmail}, "admin-1")

	suite.Require().NoError(err)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "FindMemberByEmail", mock.Anything, mock.Anything)
}

// --- DeleteMember Tests ---

func (suite *MemberServiceTestSuite) TestDeleteMember_Success() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockMemberRepo.On("DeleteMember", ctx, memberID).Return(nil).Once()

	err := suite.service.DeleteMember(ctx, memberID, "admin-1")

	suite.Require().NoError(err)
	// The identity account is intentionally left alone.
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestDeleteMember_NotFound() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockMemberRepo.On("DeleteMember", ctx, memberID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteMember(ctx, memberID, "admin-1")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
