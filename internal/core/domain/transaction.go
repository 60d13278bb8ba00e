package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of a recorded transaction.
type TransactionType string

const (
	Saving     TransactionType = "Saving"
	Withdrawal TransactionType = "Withdrawal"
)

// Transaction is a single deposit or withdrawal recorded for a member.
// A Saving transaction's value is split across the three saving categories;
// a Withdrawal transaction's value is the Withdrawal field. The aggregation
// engine branches on Type and ignores off-type amounts.
type Transaction struct {
	TransactionID string          `json:"id"`
	MemberID      string          `json:"memberId"`
	MemberName    string          `json:"memberName"` // snapshot at creation, never re-derived
	Date          string          `json:"date"`       // user-supplied calendar date (YYYY-MM-DD)
	Type          TransactionType `json:"type"`
	WeeklySaving  decimal.Decimal `json:"weeklySaving"`
	Munomukabi    decimal.Decimal `json:"munomukabi"` // rotating-fund contribution
	OtherSaving   decimal.Decimal `json:"otherSaving"`
	Withdrawal    decimal.Decimal `json:"withdrawal"`
	EnteredBy     string          `json:"enteredBy"`
	CreatedAt     time.Time       `json:"createdAt"` // server-assigned, immutable
	UpdatedAt     time.Time       `json:"updatedAt"`
}
