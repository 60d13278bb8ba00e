package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/akabanda/savings_group_app/internal/apperrors"
	"github.com/akabanda/savings_group_app/internal/core/domain"
	portsrepo "github.com/akabanda/savings_group_app/internal/core/ports/repositories"
	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/platform/config"
	"github.com/akabanda/savings_group_app/internal/utils"
)

// authService is the session gateway. It resolves credentials to a principal
// and keeps the stored refresh-token state in sync. The configured
// administrator is matched before the identity accounts are consulted, so the
// group can always be bootstrapped without a seeded database.
type authService struct {
	BaseService
	cfg         *config.Config
	accountRepo portsrepo.AuthAccountRepository
	memberRepo  portsrepo.MemberRepositoryFacade
	googleOAuth portssvc.GoogleOAuthSvcFacade
}

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config, accountRepo portsrepo.AuthAccountRepository, memberRepo portsrepo.MemberRepositoryFacade, googleOAuth portssvc.GoogleOAuthSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		accountRepo: accountRepo,
		memberRepo:  memberRepo,
		googleOAuth: googleOAuth,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) adminPrincipal() *domain.Principal {
	return &domain.Principal{
		ID:          s.cfg.AdminUserID,
		Email:       strings.ToLower(s.cfg.AdminEmail),
		DisplayName: s.cfg.AdminName,
		Role:        domain.RoleAdmin,
	}
}

func (s *authService) isConfiguredAdmin(principalID string) bool {
	return s.cfg.AdminEmail != "" && s.cfg.AdminPassword != "" && principalID == s.cfg.AdminUserID
}

func principalFromMember(m *domain.Member) *domain.Principal {
	return &domain.Principal{
		ID:          m.MemberID,
		Email:       m.Email,
		DisplayName: m.FullName,
		Role:        m.Role,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.cfg.AdminEmail != "" && s.cfg.AdminPassword != "" &&
		email == strings.ToLower(strings.TrimSpace(s.cfg.AdminEmail)) {
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogInfo(ctx, "administrator login")
		return s.adminPrincipal(), nil
	}

	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "failed to look up account during login")
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return s.resolveMemberPrincipal(ctx, account.AccountID)
}

// LoginWithGoogle authenticates using a verified Google ID token. The token's
// email must belong to an existing member; there is no self-registration.
func (s *authService) LoginWithGoogle(ctx context.Context, idToken string) (*domain.Principal, error) {
	payload, err := s.googleOAuth.ValidateGoogleIDToken(ctx, idToken)
	if err != nil {
		s.LogWarn(ctx, "google ID token rejected", slog.String("error", err.Error()))
		return nil, apperrors.ErrUnauthorized
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, apperrors.ErrUnauthorized
	}
	email = strings.ToLower(strings.TrimSpace(email))

	member, err := s.memberRepo.FindMemberByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up member for google login: %w", err)
	}
	if !member.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}

	s.LogInfo(ctx, "google login", slog.String("member_id", member.MemberID))
	return principalFromMember(member), nil
}

// ResolvePrincipal re-resolves a principal from its ID on every authenticated
// request, so deactivation takes effect without waiting for token expiry.
func (s *authService) ResolvePrincipal(ctx context.Context, principalID string) (*domain.Principal, error) {
	if s.isConfiguredAdmin(principalID) {
		return s.adminPrincipal(), nil
	}
	return s.resolveMemberPrincipal(ctx, principalID)
}

func (s *authService) resolveMemberPrincipal(ctx context.Context, memberID string) (*domain.Principal, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		s.LogError(ctx, err, "failed to resolve member principal", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}
	if !member.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}
	return principalFromMember(member), nil
}

// Logout clears the stored refresh token. The administrator keeps no
// server-side session state, so admin logout is a no-op.
func (s *authService) Logout(ctx context.Context, principalID string) error {
	if s.isConfiguredAdmin(principalID) {
		return nil
	}
	if err := s.accountRepo.ClearRefreshToken(ctx, principalID); err != nil {
		s.LogError(ctx, err, "failed to clear refresh token", slog.String("principal_id", principalID))
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// Refresh validates the presented refresh token against the stored hash and
// expiry. Admin sessions carry no refresh token and must log in again.
func (s *authService) Refresh(ctx context.Context, principalID, refreshToken string) (*domain.Principal, error) {
	if s.isConfiguredAdmin(principalID) {
		return nil, apperrors.ErrUnauthorized
	}

	account, err := s.accountRepo.FindAccountByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up account for refresh: %w", err)
	}

	if account.RefreshTokenHash == "" || account.RefreshTokenExpiry == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*account.RefreshTokenExpiry) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !utils.CompareRefreshTokenHash(refreshToken, account.RefreshTokenHash) {
		s.LogWarn(ctx, "refresh token mismatch", slog.String("principal_id", principalID))
		return nil, apperrors.ErrUnauthorized
	}

	return s.resolveMemberPrincipal(ctx, principalID)
}

// tokenService issues signed access tokens and persists refresh-token hashes.
type tokenService struct {
	BaseService
	cfg         *config.Config
	accountRepo portsrepo.AuthAccountRepository
}

// NewTokenService creates the token service.
func NewTokenService(cfg *config.Config, accountRepo portsrepo.AuthAccountRepository) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		accountRepo: accountRepo,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, p *domain.Principal) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(p.ID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a raw refresh token and stores only its hash.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, p *domain.Principal) (string, time.Time, error) {
	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	tokenHash := utils.HashRefreshToken(rawToken)

	if err := s.accountRepo.UpdateRefreshToken(ctx, p.ID, tokenHash, expiryTime); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return rawToken, expiryTime, nil
}
