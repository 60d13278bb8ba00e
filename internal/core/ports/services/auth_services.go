package services

import (
	"context"
	"time"

	"github.com/akabanda/savings_group_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade is the session gateway: it turns credentials into a resolved
// principal and manages the server-side half of the session state.
type AuthSvcFacade interface {
	// Login authenticates email+password. The configured administrator is
	// matched before the identity accounts are consulted. A member whose
	// profile is missing fails with apperrors.ErrAccountNotFound; a
	// deactivated member fails with apperrors.ErrAccountDeactivated.
	Login(ctx context.Context, email, password string) (*domain.Principal, error)

	// LoginWithGoogle authenticates using a verified Google ID token whose
	// email must belong to an existing member profile.
	LoginWithGoogle(ctx context.Context, idToken string) (*domain.Principal, error)

	// ResolvePrincipal re-resolves a principal from its ID. It is idempotent
	// and is invoked on every authenticated request, so state changes such as
	// deactivation take effect without waiting for token expiry.
	ResolvePrincipal(ctx context.Context, principalID string) (*domain.Principal, error)

	// Logout clears the stored refresh token for the principal.
	Logout(ctx context.Context, principalID string) error

	// Refresh validates a refresh token and returns the principal it belongs
	// to, so a new access token can be issued.
	Refresh(ctx context.Context, principalID, refreshToken string) (*domain.Principal, error)
}

// TokenSvcFacade issues and persists session tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the principal.
	GenerateAccessToken(ctx context.Context, p *domain.Principal) (string, time.Time, error)

	// GenerateRefreshToken creates a refresh token, stores its hash for the
	// principal, and returns the raw token with its expiry.
	GenerateRefreshToken(ctx context.Context, p *domain.Principal) (string, time.Time, error)
}

// GoogleOAuthSvcFacade wraps the Google OAuth flow used for federated login.
type GoogleOAuthSvcFacade interface {
	GenerateStateString(ctx context.Context) (string, error)
	GetGoogleLoginURL(ctx context.Context, state string) string
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
