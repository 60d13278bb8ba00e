package reporting_test

import (
	"testing"

	"github.com/akabanda/savings_group_app/internal/core/domain"
	"github.com/akabanda/savings_group_app/internal/utils/reporting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestCalculateMemberBalance(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.Saving, WeeklySaving: d(1000), Munomukabi: d(500)},
		{Type: domain.Withdrawal, Withdrawal: d(300)},
	}

	got := reporting.CalculateMemberBalance(txns)

	assert.True(t, got.TotalSavings.Equal(d(1500)), "totalSavings = %s", got.TotalSavings)
	assert.True(t, got.TotalWithdrawals.Equal(d(300)), "totalWithdrawals = %s", got.TotalWithdrawals)
	assert.True(t, got.Balance.Equal(d(1200)), "balance = %s", got.Balance)
}

func TestCalculateMemberBalance_EmptyInput(t *testing.T) {
	got := reporting.CalculateMemberBalance(nil)

	assert.True(t, got.TotalSavings.IsZero())
	assert.True(t, got.TotalWithdrawals.IsZero())
	assert.True(t, got.Balance.IsZero())
}

func TestCalculateMemberBalance_OrderIndependent(t *testing.T) {
	a := domain.Transaction{Type: domain.Saving, WeeklySaving: d(700), OtherSaving: d(50)}
	b := domain.Transaction{Type: domain.Withdrawal, Withdrawal: d(200)}
	c := domain.Transaction{Type: domain.Saving, Munomukabi: d(350)}

	forward := reporting.CalculateMemberBalance([]domain.Transaction{a, b, c})
	backward := reporting.CalculateMemberBalance([]domain.Transaction{c, b, a})

	assert.True(t, forward.Balance.Equal(backward.Balance))
	assert.True(t, forward.TotalSavings.Equal(backward.TotalSavings))
}

// A Saving row carrying a stray withdrawal amount contributes nothing to
// withdrawals; the branch on Type ignores off-type fields.
func TestCalculateMemberBalance_IgnoresOffTypeAmounts(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.Saving, WeeklySaving: d(1000), Withdrawal: d(999)},
	}

	got := reporting.CalculateMemberBalance(txns)

	assert.True(t, got.TotalSavings.Equal(d(1000)))
	assert.True(t, got.TotalWithdrawals.IsZero())
}

func TestCalculateGroupTotals(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.Saving, WeeklySaving: d(1000), Munomukabi: d(500)},
		{Type: domain.Saving, WeeklySaving: d(2000), OtherSaving: d(250)},
		{Type: domain.Withdrawal, Withdrawal: d(700)},
	}
	members := []domain.Member{
		{MemberID: "m1"}, {MemberID: "m2"}, {MemberID: "m3"},
	}

	got := reporting.CalculateGroupTotals(txns, members)

	assert.Equal(t, 3, got.TotalMembers)
	assert.Equal(t, 3, got.TotalTransactions)
	assert.True(t, got.TotalWeeklySaving.Equal(d(3000)))
	assert.True(t, got.TotalMunomukabi.Equal(d(500)))
	assert.True(t, got.TotalOtherSaving.Equal(d(250)))
	assert.True(t, got.TotalSavings.Equal(d(3750)))
	assert.True(t, got.TotalWithdrawals.Equal(d(700)))
	assert.True(t, got.NetBalance.Equal(d(3050)))
	assert.True(t, got.AverageSavings.Equal(d(1250)))
}

func TestCalculateGroupTotals_NoMembers(t *testing.T) {
	got := reporting.CalculateGroupTotals(nil, nil)

	assert.Equal(t, 0, got.TotalMembers)
	assert.Equal(t, 0, got.TotalTransactions)
	assert.True(t, got.TotalSavings.IsZero())
	assert.True(t, got.AverageSavings.IsZero(), "average must be zero with no members")
}

func TestCalculateGroupTotals_DoesNotMutateInputs(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.Saving, WeeklySaving: d(100)},
	}
	original := txns[0]

	_ = reporting.CalculateGroupTotals(txns, []domain.Member{{MemberID: "m1"}})

	assert.Equal(t, original, txns[0])
}

func TestGroupTransactionsByMember(t *testing.T) {
	txns := []domain.Transaction{
		{TransactionID: "t1", MemberID: "m1"},
		{TransactionID: "t2", MemberID: "m2"},
		{TransactionID: "t3", MemberID: "m1"},
		{TransactionID: "t4"}, // orphaned, no member reference
	}

	grouped := reporting.GroupTransactionsByMember(txns)

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["m1"], 2)
	assert.Len(t, grouped["m2"], 1)
}
