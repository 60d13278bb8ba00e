// Package reporting holds the pure aggregation arithmetic over transaction
// records. Functions here never touch storage and never mutate their inputs.
package reporting

import (
	"github.com/akabanda/savings_group_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavingValue is the value of a Saving transaction: the sum of its three
// saving categories. Amounts on off-type fields are ignored by the callers
// below, which branch on Type.
func SavingValue(txn domain.Transaction) decimal.Decimal {
	return txn.WeeklySaving.Add(txn.Munomukabi).Add(txn.OtherSaving)
}

// CalculateMemberBalance aggregates one member's transactions into totals
// and a running balance. Order independent: sums are commutative.
func CalculateMemberBalance(transactions []domain.Transaction) domain.MemberBalance {
	totalSavings := decimal.Zero
	totalWithdrawals := decimal.Zero

	for _, txn := range transactions {
		switch txn.Type {
		case domain.Saving:
			totalSavings = totalSavings.Add(SavingValue(txn))
		case domain.Withdrawal:
			totalWithdrawals = totalWithdrawals.Add(txn.Withdrawal)
		}
	}

	return domain.MemberBalance{
		TotalSavings:     totalSavings,
		TotalWithdrawals: totalWithdrawals,
		Balance:          totalSavings.Sub(totalWithdrawals),
	}
}

// CalculateGroupTotals aggregates all transactions into the group summary.
// AverageSavings is zero when there are no members.
func CalculateGroupTotals(transactions []domain.Transaction, members []domain.Member) domain.GroupSummary {
	totalWeeklySaving := decimal.Zero
	totalMunomukabi := decimal.Zero
	totalOtherSaving := decimal.Zero
	totalWithdrawals := decimal.Zero

	for _, txn := range transactions {
		switch txn.Type {
		case domain.Saving:
			totalWeeklySaving = totalWeeklySaving.Add(txn.WeeklySaving)
			totalMunomukabi = totalMunomukabi.Add(txn.Munomukabi)
			totalOtherSaving = totalOtherSaving.Add(txn.OtherSaving)
		case domain.Withdrawal:
			totalWithdrawals = totalWithdrawals.Add(txn.Withdrawal)
		}
	}

	totalSavings := totalWeeklySaving.Add(totalMunomukabi).Add(totalOtherSaving)
	netBalance := totalSavings.Sub(totalWithdrawals)

	averageSavings := decimal.Zero
	if len(members) > 0 {
		averageSavings = totalSavings.Div(decimal.NewFromInt(int64(len(members))))
	}

	return domain.GroupSummary{
		TotalMembers:      len(members),
		TotalTransactions: len(transactions),
		TotalWeeklySaving: totalWeeklySaving,
		TotalMunomukabi:   totalMunomukabi,
		TotalOtherSaving:  totalOtherSaving,
		TotalSavings:      totalSavings,
		TotalWithdrawals:  totalWithdrawals,
		NetBalance:        netBalance,
		AverageSavings:    averageSavings,
	}
}

// GroupTransactionsByMember buckets transactions by their member reference.
// Transactions with an empty member id (orphaned records) are skipped.
func GroupTransactionsByMember(transactions []domain.Transaction) map[string][]domain.Transaction {
	grouped := make(map[string][]domain.Transaction)
	for _, txn := range transactions {
		if txn.MemberID == "" {
			continue
		}
		grouped[txn.MemberID] = append(grouped[txn.MemberID], txn)
	}
	return grouped
}
