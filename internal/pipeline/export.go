package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"cardstmt/internal"
)

func ExportRecordsToXLSX(records []internal.StatementRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"file_name", "issuer", "card_number", "statement_date", "payment_due_date",
		"total_amount_due", "minimum_amount_due", "credit_limit", "available_credit",
		"previous_balance", "parsing_status", "errors",
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, record := range records {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, record.FileName)
		set(2, string(record.Issuer))
		set(3, derefString(record.CardNumber))
		set(4, derefString(record.StatementDate))
		set(5, derefString(record.PaymentDueDate))
		set(6, derefString(record.TotalAmountDue))
		set(7, derefString(record.MinimumAmountDue))
		set(8, derefString(record.CreditLimit))
		set(9, derefString(record.AvailableCredit))
		set(10, derefString(record.PreviousBalance))
		set(11, string(record.ParsingStatus))
		set(12, joinNotes(record.Errors))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func joinNotes(notes []string) string {
	return strings.Join(notes, "; ")
}
