package services

import (
	"context"

	"github.com/akabanda/savings_group_app/internal/core/domain"
)

// ReportingSvc produces aggregate financial reports over members and
// transactions. All aggregation is pure arithmetic over repository reads.
type ReportingSvc interface {
	// GroupSummary computes group-wide totals, optionally restricted to
	// transactions dated within [from, to]. Empty bounds mean no restriction.
	GroupSummary(ctx context.Context, from, to string) (*domain.GroupSummary, error)

	// MemberReports computes a per-member balance row for every member.
	MemberReports(ctx context.Context) ([]domain.MemberReportRow, error)

	// MemberBalance computes one member's aggregated position.
	MemberBalance(ctx context.Context, memberID string) (*domain.MemberBalance, error)
}
