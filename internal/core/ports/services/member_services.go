package services

import (
	"context"

	"github.com/akabanda/savings_group_app/internal/core/domain"
	"github.com/akabanda/savings_group_app/internal/dto"
)

// MemberReaderSvc defines read operations for member profiles.
type MemberReaderSvc interface {
	// GetMemberByID retrieves a member by ID.
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers retrieves members ordered by full name, optionally filtered
	// by activation status ("active" / "inactive").
	ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, error)

	// SuggestMembers returns up to ten members matching a substring query.
	SuggestMembers(ctx context.Context, query string) ([]domain.Member, error)
}

// MemberWriterSvc defines write operations for member profiles.
type MemberWriterSvc interface {
	// CreateMember creates an identity account plus a member profile.
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorID string) (*domain.Member, error)

	// UpdateMember applies a partial update to an existing member.
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, updaterID string) (*domain.Member, error)

	// DeleteMember removes the member profile. The identity account is kept.
	DeleteMember(ctx context.Context, memberID string, deleterID string) error
}

// MemberSvcFacade combines all member-related service interfaces.
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
