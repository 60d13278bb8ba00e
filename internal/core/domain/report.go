package domain

import "github.com/shopspring/decimal"

// MemberBalance is the aggregated financial position of one member.
type MemberBalance struct {
	TotalSavings     decimal.Decimal `json:"totalSavings"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	Balance          decimal.Decimal `json:"balance"`
}

// GroupSummary is the group-wide financial report.
type GroupSummary struct {
	TotalMembers      int             `json:"totalMembers"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalWeeklySaving decimal.Decimal `json:"totalWeeklySaving"`
	TotalMunomukabi   decimal.Decimal `json:"totalMunomukabi"`
	TotalOtherSaving  decimal.Decimal `json:"totalOtherSaving"`
	TotalSavings      decimal.Decimal `json:"totalSavings"`
	TotalWithdrawals  decimal.Decimal `json:"totalWithdrawals"`
	NetBalance        decimal.Decimal `json:"netBalance"`
	AverageSavings    decimal.Decimal `json:"averageSavings"`
}

// MemberReportRow pairs a member with their aggregated balance.
type MemberReportRow struct {
	Member  Member        `json:"member"`
	Balance MemberBalance `json:"balance"`
}
