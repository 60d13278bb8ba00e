package dto

import (
	"time"

	"github.com/akabanda/savings_group_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest carries a new deposit or withdrawal record.
// Amount fields left out of the payload decode to zero, matching the
// rule that only the fields relevant to Type are expected to be set.
type CreateTransactionRequest struct {
	MemberID     string          `json:"memberId" binding:"required"`
	MemberName   string          `json:"memberName"`
	Date         string          `json:"date" binding:"required,isodate"`
	Type         string          `json:"type" binding:"required,oneof=Saving Withdrawal"`
	WeeklySaving decimal.Decimal `json:"weeklySaving"`
	Munomukabi   decimal.Decimal `json:"munomukabi"`
	OtherSaving  decimal.Decimal `json:"otherSaving"`
	Withdrawal   decimal.Decimal `json:"withdrawal"`
}

// UpdateTransactionRequest is a partial update. Pointer fields distinguish
// "not supplied" from "set to zero": fields that are nil keep their stored
// values, so an unrelated edit cannot silently reset the amounts.
type UpdateTransactionRequest struct {
	MemberID     *string          `json:"memberId"`
	MemberName   *string          `json:"memberName"`
	Date         *string          `json:"date" binding:"omitempty,isodate"`
	Type         *string          `json:"type" binding:"omitempty,oneof=Saving Withdrawal"`
	WeeklySaving *decimal.Decimal `json:"weeklySaving"`
	Munomukabi   *decimal.Decimal `json:"munomukabi"`
	OtherSaving  *decimal.Decimal `json:"otherSaving"`
	Withdrawal   *decimal.Decimal `json:"withdrawal"`
}

// DateRangeParams defines the inclusive date range filter. Dates must be
// ISO YYYY-MM-DD so the range comparison orders correctly.
type DateRangeParams struct {
	From string `form:"from" binding:"omitempty,isodate"`
	To   string `form:"to" binding:"omitempty,isodate"`
}

// TransactionResponse is the API shape of a transaction.
type TransactionResponse struct {
	ID           string          `json:"id"`
	MemberID     string          `json:"memberId"`
	MemberName   string          `json:"memberName"`
	Date         string          `json:"date"`
	Type         string          `json:"type"`
	WeeklySaving decimal.Decimal `json:"weeklySaving"`
	Munomukabi   decimal.Decimal `json:"munomukabi"`
	OtherSaving  decimal.Decimal `json:"otherSaving"`
	Withdrawal   decimal.Decimal `json:"withdrawal"`
	EnteredBy    string          `json:"enteredBy"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its API shape.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.TransactionID,
		MemberID:     t.MemberID,
		MemberName:   t.MemberName,
		Date:         t.Date,
		Type:         string(t.Type),
		WeeklySaving: t.WeeklySaving,
		Munomukabi:   t.Munomukabi,
		OtherSaving:  t.OtherSaving,
		Withdrawal:   t.Withdrawal,
		EnteredBy:    t.EnteredBy,
		CreatedAt:    t.CreatedAt,
	}
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts domain transactions to the list DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses}
}
