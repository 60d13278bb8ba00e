package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akabanda/savings_group_app/internal/apperrors"
	"github.com/akabanda/savings_group_app/internal/core/domain"
	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/dto"
	"github.com/akabanda/savings_group_app/internal/handlers"
	"github.com/akabanda/savings_group_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MemberService ---
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberService) SuggestMembers(ctx context.Context, query string) ([]domain.Member, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorID string) (*domain.Member, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, updaterID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) DeleteMember(ctx context.Context, memberID string, deleterID string) error {
	args := m.Called(ctx, memberID, deleterID)
	return args.Error(0)
}

var _ portssvc.MemberSvcFacade = (*MockMemberService)(nil)

// --- Test Suite ---
type MemberHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockMemberService *MockMemberService
	jwtSecret         string
}

func (suite *MemberHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "sga-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *MemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockMemberService = new(MockMemberService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterMemberRoutes(v1, suite.mockMemberService)
}

// --- Test Cases ---

func (suite *MemberHandlerTestSuite) TestListMembers_Success() {
	requestingUserID := uuid.NewString()
	members := []domain.Member{
		{MemberID: uuid.NewString(), FullName: "Alice A", Username: "alice", IsActive: true},
		{MemberID: uuid.NewString(), FullName: "Bob B", Username: "bob", IsActive: true},
	}

	suite.mockMemberService.On("ListMembers", mock.Anything, dto.ListMembersParams{Status: "active"}).
		Return(members, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/members?status=active", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListMembersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Members, 2)
	suite.Equal("Alice A", body.Members[0].FullName)
	suite.mockMemberService.AssertExpectations(suite.T())
}

func (suite *MemberHandlerTestSuite) TestListMembers_InvalidStatusRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/members?status=banana", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMemberService.AssertNotCalled(suite.T(), "ListMembers", mock.Anything, mock.Anything)
}

func (suite *MemberHandlerTestSuite) TestCreateMember_Conflict() {
	requestingUserID := uuid.NewString()
	reqBody := dto.CreateMemberRequest{
		FullName: "Jane Smith",
		Username: "jane_smith",
		Email:    "jane@example.com",
		Password: "password123",
	}

	suite.mockMemberService.On("CreateMember", mock.Anything, reqBody, requestingUserID).
		Return(nil, apperrors.NewConflictError("username is already taken")).Once()

	payload, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/members", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "username is already taken")
}

func (suite *MemberHandlerTestSuite) TestCreateMember_BindingRejectsBadUsername() {
	reqBody := dto.CreateMemberRequest{
		FullName: "Jane Smith",
		Username: "bad username!", // space and punctuation
		Email:    "jane@example.com",
		Password: "password123",
	}

	payload, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/members", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMemberService.AssertNotCalled(suite.T(), "CreateMember", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MemberHandlerTestSuite) TestGetMember_NotFound() {
	memberID := uuid.NewString()

	suite.mockMemberService.On("GetMemberByID", mock.Anything, memberID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/members/"+memberID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *MemberHandlerTestSuite) TestRequestWithoutTokenRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/members", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}
