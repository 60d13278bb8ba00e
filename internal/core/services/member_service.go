package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/akabanda/savings_group_app/internal/apperrors"
	"github.com/akabanda/savings_group_app/internal/core/domain"
	portsrepo "github.com/akabanda/savings_group_app/internal/core/ports/repositories"
	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/dto"
	"github.com/akabanda/savings_group_app/internal/utils"
	"github.com/akabanda/savings_group_app/internal/utils/validation"
	"github.com/google/uuid"
)

const suggestionLimit = 10

// memberService implements member profile management over the member and
// identity-account repositories. Writes are strict: they validate, sanitize
// and enforce uniqueness before touching storage.
type memberService struct {
	BaseService
	memberRepo  portsrepo.MemberRepositoryFacade
	accountRepo portsrepo.AuthAccountRepository
}

// NewMemberService creates the member service.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade, accountRepo portsrepo.AuthAccountRepository) portssvc.MemberSvcFacade {
	return &memberService{
		memberRepo:  memberRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func normalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to get member", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to get member by ID: %w", err)
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, error) {
	var isActive *bool
	switch params.Status {
	case "active":
		v := true
		isActive = &v
	case "inactive":
		v := false
		isActive = &v
	}

	members, err := s.memberRepo.FindMembers(ctx, isActive)
	if err != nil {
		s.LogError(ctx, err, "failed to list members")
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *memberService) SuggestMembers(ctx context.Context, query string) ([]domain.Member, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Member{}, nil
	}

	members, err := s.memberRepo.SearchMembers(ctx, query, suggestionLimit)
	if err != nil {
		s.LogError(ctx, err, "failed to search members", slog.String("query", query))
		return nil, fmt.Errorf("failed to search members: %w", err)
	}
	return members, nil
}

// CreateMember registers a member in two steps: the identity account first,
// then the profile keyed by the account ID. If the profile write fails the
// account is deleted so a retry is not blocked by a half-created identity.
func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorID string) (*domain.Member, error) {
	fullName := validation.SanitizeInput(req.FullName)
	username := normalizeUsername(validation.SanitizeInput(req.Username))
	email := normalizeEmail(validation.SanitizeInput(req.Email))

	if errs := validation.Member(validation.MemberInput{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: req.Password,
	}); len(errs) > 0 {
		return nil, apperrors.NewBadRequestError(validation.FormatValidationErrors(errs))
	}

	if err := s.ensureUsernameAvailable(ctx, username, ""); err != nil {
		return nil, err
	}
	if err := s.ensureEmailAvailable(ctx, email, ""); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash member password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	accountID := uuid.NewString()

	account := domain.AuthAccount{
		AccountID:    accountID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("email is already registered")
		}
		s.LogError(ctx, err, "failed to save identity account", slog.String("email", email))
		return nil, fmt.Errorf("failed to create identity account: %w", err)
	}

	member := domain.Member{
		MemberID:   accountID,
		FullName:   fullName,
		Username:   username,
		Email:      email,
		Gender:     validation.SanitizeInput(req.Gender),
		Residence:  validation.SanitizeInput(req.Residence),
		Role:       domain.RoleMember,
		DateJoined: now.Format("2006-01-02"),
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: creatorID,
			UpdatedAt: now,
			UpdatedBy: creatorID,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		// Compensate so the orphaned account does not block a retry.
		if delErr := s.accountRepo.DeleteAccount(ctx, accountID); delErr != nil {
			s.LogError(ctx, delErr, "failed to delete account after profile creation failure",
				slog.String("account_id", accountID))
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("username or email is already taken")
		}
		s.LogError(ctx, err, "failed to save member profile", slog.String("member_id", accountID))
		return nil, fmt.Errorf("failed to create member profile: %w", err)
	}

	s.LogInfo(ctx, "member created",
		slog.String("member_id", member.MemberID),
		slog.String("username", member.Username))
	return &member, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, updaterID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load member for update: %w", err)
	}

	if req.FullName != nil {
		name := validation.SanitizeInput(*req.FullName)
		if !validation.Name(name) {
			return nil, apperrors.NewBadRequestError("Full name must be at least 2 characters long")
		}
		member.FullName = name
	}
	if req.Username != nil {
		username := normalizeUsername(validation.SanitizeInput(*req.Username))
		if !validation.Username(username) {
			return nil, apperrors.NewBadRequestError("Username must be 3-20 characters (letters, numbers, underscores only)")
		}
		if username != member.Username {
			if err := s.ensureUsernameAvailable(ctx, username, memberID); err != nil {
				return nil, err
			}
			member.Username = username
		}
	}
	if req.Email != nil {
		email := normalizeEmail(validation.SanitizeInput(*req.Email))
		if !validation.Email(email) {
			return nil, apperrors.NewBadRequestError("Valid email address is required")
		}
		if email != member.Email {
			if err := s.ensureEmailAvailable(ctx, email, memberID); err != nil {
				return nil, err
			}
			member.Email = email
		}
	}
	if req.Gender != nil {
		member.Gender = validation.SanitizeInput(*req.Gender)
	}
	if req.Residence != nil {
		member.Residence = validation.SanitizeInput(*req.Residence)
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	member.UpdatedAt = time.Now()
	member.UpdatedBy = updaterID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("username or email is already taken")
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to update member", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return member, nil
}

// DeleteMember removes the profile only. The identity account and the
// member's transactions are intentionally left in place; transaction reads
// fall back to a placeholder name for the dangling reference.
func (s *memberService) DeleteMember(ctx context.Context, memberID string, deleterID string) error {
	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "failed to delete member", slog.String("member_id", memberID))
		return fmt.Errorf("failed to delete member: %w", err)
	}
	s.LogInfo(ctx, "member deleted",
		slog.String("member_id", memberID),
		slog.String("deleted_by", deleterID))
	return nil
}

func (s *memberService) ensureUsernameAvailable(ctx context.Context, username, selfID string) error {
	existing, err := s.memberRepo.FindMemberByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing.MemberID != selfID {
		return apperrors.NewConflictError("username is already taken")
	}
	return nil
}

func (s *memberService) ensureEmailAvailable(ctx context.Context, email, selfID string) error {
	existing, err := s.memberRepo.FindMemberByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email availability: %w", err)
	}
	if existing.MemberID != selfID {
		return apperrors.NewConflictError("email is already registered")
	}
	return nil
}
