package domain

import "time"

// Principal is the authenticated actor associated with the current session,
// either the configured administrator or a member resolved from their profile.
type Principal struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Role        MemberRole `json:"role"`
}

// AuthAccount is an identity-provider account: the credential record created
// alongside a member profile. It is stored separately from the profile and is
// not removed when the profile is deleted.
type AuthAccount struct {
	AccountID    string `json:"accountID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	RefreshTokenHash   string     `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume
// during federated sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
