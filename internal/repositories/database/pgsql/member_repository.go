package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akabanda/savings_group_app/internal/apperrors"
	"github.com/akabanda/savings_group_app/internal/core/domain"
	portsrepo "github.com/akabanda/savings_group_app/internal/core/ports/repositories"
	"github.com/akabanda/savings_group_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(db *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository{Pool: db}}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepositoryFacade
var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func toModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:   d.MemberID,
		FullName:   d.FullName,
		Username:   d.Username,
		Email:      d.Email,
		Gender:     d.Gender,
		Residence:  d.Residence,
		Role:       string(d.Role),
		DateJoined: d.DateJoined,
		IsActive:   d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			CreatedBy: d.CreatedBy,
			UpdatedAt: d.UpdatedAt,
			UpdatedBy: d.UpdatedBy,
		},
	}
}

// toDomainMember applies the lenient-read defaults: blank role falls back to
// "member" so rows written before the role column existed still resolve.
func toDomainMember(m models.Member) domain.Member {
	role := domain.MemberRole(m.Role)
	if role == "" {
		role = domain.RoleMember
	}
	return domain.Member{
		MemberID:   m.MemberID,
		FullName:   m.FullName,
		Username:   m.Username,
		Email:      m.Email,
		Gender:     m.Gender,
		Residence:  m.Residence,
		Role:       role,
		DateJoined: m.DateJoined,
		IsActive:   m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			CreatedBy: m.CreatedBy,
			UpdatedAt: m.UpdatedAt,
			UpdatedBy: m.UpdatedBy,
		},
	}
}

const memberColumns = `
	member_id,
	COALESCE(full_name, ''),
	COALESCE(username, ''),
	COALESCE(email, ''),
	COALESCE(gender, ''),
	COALESCE(residence, ''),
	COALESCE(role, 'member'),
	COALESCE(date_joined, ''),
	COALESCE(is_active, TRUE),
	created_at, COALESCE(created_by, ''), updated_at, COALESCE(updated_by, '')`

func scanMember(row pgx.Row) (*models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID,
		&m.FullName,
		&m.Username,
		&m.Email,
		&m.Gender,
		&m.Residence,
		&m.Role,
		&m.DateJoined,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.UpdatedAt,
		&m.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := toModelMember(member)
	query := `
        INSERT INTO members (member_id, full_name, username, email, gender, residence, role, date_joined, is_active, created_at, created_by, updated_at, updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.MemberID, m.FullName, m.Username, m.Email, m.Gender, m.Residence,
		m.Role, m.DateJoined, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.UpdatedAt, m.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("member username or email already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1;`
	m, err := scanMember(r.Pool.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}
	member := toDomainMember(*m)
	return &member, nil
}

func (r *PgxMemberRepository) FindMembers(ctx context.Context, isActive *bool) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members`
	args := []any{}
	if isActive != nil {
		query += ` WHERE COALESCE(is_active, TRUE) = $1`
		args = append(args, *isActive)
	}
	query += ` ORDER BY full_name ASC, member_id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, toDomainMember(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", rows.Err())
	}
	return members, nil
}

func (r *PgxMemberRepository) FindMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	return r.findMemberByNormalizedField(ctx, "username", username)
}

func (r *PgxMemberRepository) FindMemberByEmail(ctx context.Context, email string) (*domain.Member, error) {
	return r.findMemberByNormalizedField(ctx, "email", email)
}

func (r *PgxMemberRepository) findMemberByNormalizedField(ctx context.Context, column, value string) (*domain.Member, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	query := `SELECT ` + memberColumns + ` FROM members WHERE LOWER(TRIM(` + column + `)) = $1;`
	m, err := scanMember(r.Pool.QueryRow(ctx, query, normalized))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by %s: %w", column, err)
	}
	member := toDomainMember(*m)
	return &member, nil
}

func (r *PgxMemberRepository) SearchMembers(ctx context.Context, query string, limit int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	sql := `SELECT ` + memberColumns + ` FROM members
		WHERE LOWER(full_name) LIKE $1 OR LOWER(username) LIKE $1 OR LOWER(email) LIKE $1
		ORDER BY full_name ASC, member_id ASC
		LIMIT $2;`

	rows, err := r.Pool.Query(ctx, sql, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search members: %w", err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, toDomainMember(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", rows.Err())
	}
	return members, nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := toModelMember(member)
	query := `
        UPDATE members
        SET full_name = $1, username = $2, email = $3, gender = $4, residence = $5,
            role = $6, is_active = $7, updated_at = $8, updated_by = $9
        WHERE member_id = $10;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.FullName, m.Username, m.Email, m.Gender, m.Residence,
		m.Role, m.IsActive, m.UpdatedAt, m.UpdatedBy, m.MemberID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("member username or email already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update member query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM members WHERE member_id = $1;`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
