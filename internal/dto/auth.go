package dto

import (
	"time"

	"github.com/akabanda/savings_group_app/internal/core/domain"
)

// LoginRequest carries email+password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the frontend.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// PrincipalResponse is the API shape of the authenticated actor.
type PrincipalResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// ToPrincipalResponse converts a domain.Principal to its API shape.
func ToPrincipalResponse(p *domain.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        string(p.Role),
	}
}

// LoginResponse returns the access token and the resolved principal. The
// refresh token travels separately in an HTTP-only cookie.
type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expiresAt"`
	User      PrincipalResponse `json:"user"`
}
