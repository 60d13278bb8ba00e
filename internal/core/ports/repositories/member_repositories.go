package repositories

import (
	"context"

	"github.com/akabanda/savings_group_app/internal/core/domain"
)

// MemberReader defines read operations for member profiles.
type MemberReader interface {
	// FindMemberByID retrieves a specific member by their ID.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// FindMembers retrieves all members ordered by full name ascending.
	// When isActive is non-nil the result is filtered by activation state.
	FindMembers(ctx context.Context, isActive *bool) ([]domain.Member, error)

	// FindMemberByUsername retrieves a member by normalized (lower-cased,
	// trimmed) username. Returns apperrors.ErrNotFound when no match exists.
	FindMemberByUsername(ctx context.Context, username string) (*domain.Member, error)

	// FindMemberByEmail retrieves a member by normalized email.
	FindMemberByEmail(ctx context.Context, email string) (*domain.Member, error)

	// SearchMembers returns up to limit members whose full name, username or
	// email contains the query substring, case-insensitively.
	SearchMembers(ctx context.Context, query string, limit int) ([]domain.Member, error)
}

// MemberWriter defines write operations for member profiles.
type MemberWriter interface {
	// SaveMember persists a new member profile.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdateMember updates an existing member profile.
	UpdateMember(ctx context.Context, member domain.Member) error

	// DeleteMember removes a member profile. Hard delete, no retention.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberRepositoryFacade combines all member-related repository interfaces.
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
