// Package export renders report data as downloadable CSV documents.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/akabanda/savings_group_app/internal/core/domain"
)

// TransactionsCSV writes a transaction listing as CSV.
func TransactionsCSV(w io.Writer, txns []domain.Transaction) error {
	cw := csv.NewWriter(w)
	header := []string{"Date", "Member", "Type", "Weekly Saving", "Munomukabi", "Other Saving", "Withdrawal", "Entered By"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, txn := range txns {
		record := []string{
			txn.Date,
			txn.MemberName,
			string(txn.Type),
			txn.WeeklySaving.StringFixed(0),
			txn.Munomukabi.StringFixed(0),
			txn.OtherSaving.StringFixed(0),
			txn.Withdrawal.StringFixed(0),
			txn.EnteredBy,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// MemberReportsCSV writes the per-member balance report as CSV.
func MemberReportsCSV(w io.Writer, rows []domain.MemberReportRow) error {
	cw := csv.NewWriter(w)
	header := []string{"Member", "Username", "Status", "Total Savings", "Total Withdrawals", "Balance"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		status := "active"
		if !row.Member.IsActive {
			status = "inactive"
		}
		record := []string{
			row.Member.FullName,
			row.Member.Username,
			status,
			row.Balance.TotalSavings.StringFixed(0),
			row.Balance.TotalWithdrawals.StringFixed(0),
			row.Balance.Balance.StringFixed(0),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
