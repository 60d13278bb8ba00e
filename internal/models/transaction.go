package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row for a recorded deposit or withdrawal.
// Dates are stored as ISO text so range filtering stays a lexicographic
// comparison, matching how callers supply them.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	MemberID      string          `db:"member_id"`
	MemberName    string          `db:"member_name"`
	Date          string          `db:"date"`
	Type          string          `db:"type"`
	WeeklySaving  decimal.Decimal `db:"weekly_saving"`
	Munomukabi    decimal.Decimal `db:"munomukabi"`
	OtherSaving   decimal.Decimal `db:"other_saving"`
	Withdrawal    decimal.Decimal `db:"withdrawal"`
	EnteredBy     string          `db:"entered_by"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
