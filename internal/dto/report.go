package dto

import (
	"github.com/akabanda/savings_group_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GroupSummaryResponse is the API shape of the group-wide report. Formatted
// fields carry the display rendering (zero decimals, thousands separators)
// of the headline totals.
type GroupSummaryResponse struct {
	domain.GroupSummary
	FormattedTotalSavings     string `json:"formattedTotalSavings"`
	FormattedTotalWithdrawals string `json:"formattedTotalWithdrawals"`
	FormattedNetBalance       string `json:"formattedNetBalance"`
}

// MemberReportResponse is one row of the per-member report.
type MemberReportResponse struct {
	ID               string          `json:"id"`
	FullName         string          `json:"fullName"`
	Username         string          `json:"username"`
	IsActive         bool            `json:"isActive"`
	TotalSavings     decimal.Decimal `json:"totalSavings"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	Balance          decimal.Decimal `json:"balance"`
}

// ToMemberReportResponses converts report rows to their API shape.
func ToMemberReportResponses(rows []domain.MemberReportRow) []MemberReportResponse {
	responses := make([]MemberReportResponse, len(rows))
	for i, row := range rows {
		responses[i] = MemberReportResponse{
			ID:               row.Member.MemberID,
			FullName:         row.Member.FullName,
			Username:         row.Member.Username,
			IsActive:         row.Member.IsActive,
			TotalSavings:     row.Balance.TotalSavings,
			TotalWithdrawals: row.Balance.TotalWithdrawals,
			Balance:          row.Balance.Balance,
		}
	}
	return responses
}
