package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cardstmt/internal"
)

const rule = "================================================================================"

func Summary(w io.Writer, records []internal.StatementRecord) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "PARSING SUMMARY")
	fmt.Fprintln(w, rule)

	for _, rec := range records {
		fmt.Fprintf(w, "\nFile: %s\n", rec.FileName)
		fmt.Fprintf(w, "Issuer: %s\n", rec.Issuer)
		fmt.Fprintf(w, "Status: %s\n", strings.ToUpper(string(rec.ParsingStatus)))
		fmt.Fprintln(w, strings.Repeat("-", 80))

		if rec.ParsingStatus != internal.StatusFailed {
			printField(w, "Card Number", rec.CardNumber)
			printField(w, "Statement Date", rec.StatementDate)
			printField(w, "Payment Due Date", rec.PaymentDueDate)
			printField(w, "Total Amount Due", rec.TotalAmountDue)
			printField(w, "Minimum Amount Due", rec.MinimumAmountDue)
			printField(w, "Credit Limit", rec.CreditLimit)
			printField(w, "Available Credit", rec.AvailableCredit)
			printField(w, "Previous Balance", rec.PreviousBalance)
		}

		if len(rec.Errors) > 0 {
			fmt.Fprintln(w, "\n  Warnings/Errors:")
			for _, note := range rec.Errors {
				fmt.Fprintf(w, "    - %s\n", note)
			}
		}
	}
}

func printField(w io.Writer, label string, value *string) {
	if value == nil {
		return
	}
	fmt.Fprintf(w, "  %-20s: %s\n", label, *value)
}

func Table(w io.Writer, records []internal.StatementRecord) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "PARSED DATA TABLE")
	fmt.Fprintln(w, rule)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Issuer", "Card Number", "Statement Date", "Due Date", "Total Due", "Min Due", "Status"})
	for _, rec := range records {
		table.Append([]string{
			rec.FileName,
			string(rec.Issuer),
			orBlank(rec.CardNumber),
			orBlank(rec.StatementDate),
			orBlank(rec.PaymentDueDate),
			orBlank(rec.TotalAmountDue),
			orBlank(rec.MinimumAmountDue),
			string(rec.ParsingStatus),
		})
	}
	table.Render()
}

func orBlank(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func JSON(records []internal.StatementRecord) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}

func WriteJSONFile(records []internal.StatementRecord, path string) error {
	blob, err := JSON(records)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, blob, 0o644)
}

func Totals(records []internal.StatementRecord) (total, success, partial, failed int) {
	total = len(records)
	for _, rec := range records {
		switch rec.ParsingStatus {
		case internal.StatusSuccess:
			success++
		case internal.StatusPartial:
			partial++
		case internal.StatusFailed:
			failed++
		}
	}
	return
}
