package pipeline

import (
	"testing"

	"cardstmt/internal"
	"cardstmt/internal/issuer"
)

const iciciStatement = `ICICI Bank Credit Card Statement
STATEMENT DATE: 12 March, 2024
PAYMENT DUE DATE: 30 March, 2024
Card Number 4375XXXXXXXX1234
Total Amount due: ₹12,345.00
Minimum Amount due: ₹620.00
Credit Limit (Including cash): ₹1,00,000.00
Available Credit (Including cash): ₹87,655.00
Previous Balance: ₹8,900.00
Visit www.icicibank.com`

const axisStatement = `Axis Bank Credit Card Statement
Card No: 43750012****3456
Statement Generation Date: 15/03/2024
Payment Due Date: 04/04/2024
Total Payment Due: 23,456.78 Dr
Minimum Payment Due: 1,172.84 Dr
Credit Limit: 2,00,000.00
Available Credit Limit: 1,76,543.22
Previous Balance: - 15,000.00 Dr`

const idfcStatement = `IDFC FIRST Bank Credit Card
Card Number: XXXX 9876
01/02/2024 - 29/02/2024
Payment Due Date: 15/03/2024
Total Amount Due: r45,678.90
Minimum Amount Due: r2,283.95
Credit Limit: r3,50,000.00
Available Credit Limit: r3,04,321.10`

const rblStatement = `RBL Bank Ltd Credit Card Statement
4111 XXXX XXXX 2222
Credit Limit 3,00,000.00 0.00 0.00
Statement Period 01/03/2024 to 31/03/2024
Payment Due Date Immediate15/04/2024
Total Amount Due Minimum Amount Due Overlimit
5,432.10
250.00
0.00`

const amexStatement = `American Express Platinum Card
Account Ending 3-71002
Closing Date 03/15/24
Payment Due Date: 04/09/24
New Balance: $4,137.09
Minimum Payment Due: $39.00
Pay Over Time Limit: $10,000.00
Available Pay Over Time Limit: $5,862.91
Previous Balance: $1,000.00`

func parseOne(t *testing.T, name, text string) internal.StatementRecord {
	t.Helper()
	reg := issuer.NewRegistry()
	return ProcessDocument(reg, internal.Document{Name: name, Pages: []string{text}})
}

func fieldOrFatal(t *testing.T, v *string, field string) string {
	t.Helper()
	if v == nil {
		t.Fatalf("%s missing", field)
	}
	return *v
}

func TestExtractICICI(t *testing.T) {
	rec := parseOne(t, "icici.pdf", iciciStatement)
	if rec.Issuer != internal.IssuerICICI {
		t.Fatalf("issuer %q", rec.Issuer)
	}
	if rec.ParsingStatus != internal.StatusSuccess {
		t.Fatalf("status %q errors %v", rec.ParsingStatus, rec.Errors)
	}
	if got := fieldOrFatal(t, rec.CardNumber, "card_number"); got != "4375XXXXXXXX1234" {
		t.Fatalf("card %q", got)
	}
	if got := fieldOrFatal(t, rec.StatementDate, "statement_date"); got != "12 Mar 2024" {
		t.Fatalf("statement date %q", got)
	}
	if got := fieldOrFatal(t, rec.PaymentDueDate, "payment_due_date"); got != "30 Mar 2024" {
		t.Fatalf("due date %q", got)
	}
	if got := fieldOrFatal(t, rec.TotalAmountDue, "total_amount_due"); got != "12345.00" {
		t.Fatalf("total %q", got)
	}
	if got := fieldOrFatal(t, rec.CreditLimit, "credit_limit"); got != "100000.00" {
		t.Fatalf("limit %q", got)
	}
	if got := fieldOrFatal(t, rec.PreviousBalance, "previous_balance"); got != "8900.00" {
		t.Fatalf("previous %q", got)
	}
	if len(rec.Errors) != 0 {
		t.Fatalf("errors %v", rec.Errors)
	}
}

func TestExtractAxis(t *testing.T) {
	rec := parseOne(t, "axis.pdf", axisStatement)
	if rec.Issuer != internal.IssuerAxis {
		t.Fatalf("issuer %q", rec.Issuer)
	}
	if rec.ParsingStatus != internal.StatusSuccess {
		t.Fatalf("status %q errors %v", rec.ParsingStatus, rec.Errors)
	}
	if got := fieldOrFatal(t, rec.CardNumber, "card_number"); got != "43750012****3456" {
		t.Fatalf("card %q", got)
	}
	if got := fieldOrFatal(t, rec.StatementDate, "statement_date"); got != "15 Mar 2024" {
		t.Fatalf("statement date %q", got)
	}
	if got := fieldOrFatal(t, rec.TotalAmountDue, "total_amount_due"); got != "23456.78" {
		t.Fatalf("total %q", got)
	}
	if got := fieldOrFatal(t, rec.CreditLimit, "credit_limit"); got != "200000.00" {
		t.Fatalf("limit %q", got)
	}
	if got := fieldOrFatal(t, rec.PreviousBalance, "previous_balance"); got != "15000.00" {
		t.Fatalf("previous %q", got)
	}
}

func TestExtractIDFC(t *testing.T) {
	rec := parseOne(t, "idfc.pdf", idfcStatement)
	if rec.Issuer != internal.IssuerIDFC {
		t.Fatalf("issuer %q", rec.Issuer)
	}
	if rec.ParsingStatus != internal.StatusSuccess {
		t.Fatalf("status %q errors %v", rec.ParsingStatus, rec.Errors)
	}
	if got := fieldOrFatal(t, rec.CardNumber, "card_number"); got != "9876" {
		t.Fatalf("card %q", got)
	}
	if got := fieldOrFatal(t, rec.StatementDate, "statement_date"); got != "29 Feb 2024" {
		t.Fatalf("statement date %q", got)
	}
	if got := fieldOrFatal(t, rec.TotalAmountDue, "total_amount_due"); got != "45678.90" {
		t.Fatalf("total %q", got)
	}
	if got := fieldOrFatal(t, rec.CreditLimit, "credit_limit"); got != "350000.00" {
		t.Fatalf("limit %q", got)
	}
}

func TestExtractRBL(t *testing.T) {
	rec := parseOne(t, "rbl.pdf", rblStatement)
	if rec.Issuer != internal.IssuerRBL {
		t.Fatalf("issuer %q", rec.Issuer)
	}
	if rec.ParsingStatus != internal.StatusSuccess {
		t.Fatalf("status %q errors %v", rec.ParsingStatus, rec.Errors)
	}
	if got := fieldOrFatal(t, rec.CardNumber, "card_number"); got != "4111 XXXX XXXX 2222" {
		t.Fatalf("card %q", got)
	}
	if got := fieldOrFatal(t, rec.StatementDate, "statement_date"); got != "31 Mar 2024" {
		t.Fatalf("statement date %q", got)
	}
	if got := fieldOrFatal(t, rec.PaymentDueDate, "payment_due_date"); got != "15 Apr 2024" {
		t.Fatalf("due date %q", got)
	}
	if got := fieldOrFatal(t, rec.TotalAmountDue, "total_amount_due"); got != "250.00" {
		t.Fatalf("total %q", got)
	}
	if got := fieldOrFatal(t, rec.CreditLimit, "credit_limit"); got != "300000.00" {
		t.Fatalf("limit %q", got)
	}
}

func TestExtractAmex(t *testing.T) {
	rec := parseOne(t, "amex.pdf", amexStatement)
	if rec.Issuer != internal.IssuerAmex {
		t.Fatalf("issuer %q", rec.Issuer)
	}
	if rec.ParsingStatus != internal.StatusSuccess {
		t.Fatalf("status %q errors %v", rec.ParsingStatus, rec.Errors)
	}
	if got := fieldOrFatal(t, rec.CardNumber, "card_number"); got != "3-71002" {
		t.Fatalf("card %q", got)
	}
	if got := fieldOrFatal(t, rec.StatementDate, "statement_date"); got != "15 Mar 2024" {
		t.Fatalf("statement date %q", got)
	}
	if got := fieldOrFatal(t, rec.PaymentDueDate, "payment_due_date"); got != "09 Apr 2024" {
		t.Fatalf("due date %q", got)
	}
	if got := fieldOrFatal(t, rec.TotalAmountDue, "total_amount_due"); got != "4137.09" {
		t.Fatalf("total %q", got)
	}
	if got := fieldOrFatal(t, rec.CreditLimit, "credit_limit"); got != "10000.00" {
		t.Fatalf("limit %q", got)
	}
}

func TestExtractMissingFieldsDowngrade(t *testing.T) {
	text := `ICICI Bank Credit Card Statement
Total Amount due: ₹12,345.00`
	rec := parseOne(t, "sparse.pdf", text)
	if rec.Issuer != internal.IssuerICICI {
		t.Fatalf("issuer %q", rec.Issuer)
	}
	if rec.ParsingStatus != internal.StatusPartial {
		t.Fatalf("status %q", rec.ParsingStatus)
	}
	if got := fieldOrFatal(t, rec.TotalAmountDue, "total_amount_due"); got != "12345.00" {
		t.Fatalf("total %q", got)
	}
	wantNotes := map[string]bool{
		"card_number: not found":        true,
		"statement_date: not found":     true,
		"payment_due_date: not found":   true,
		"minimum_amount_due: not found": true,
	}
	seen := map[string]int{}
	for _, note := range rec.Errors {
		seen[note]++
	}
	for note := range wantNotes {
		if seen[note] != 1 {
			t.Fatalf("note %q seen %d times, errors %v", note, seen[note], rec.Errors)
		}
	}
}

func TestExtractFallbackCardNumber(t *testing.T) {
	text := `Some Generic Bank
Card Number 1234 XXXX XXXX 5678
Thank you for banking with us`
	rec := parseOne(t, "unknown.pdf", text)
	if rec.Issuer != internal.IssuerUnknown {
		t.Fatalf("issuer %q", rec.Issuer)
	}
	if rec.ParsingStatus != internal.StatusPartial {
		t.Fatalf("status %q errors %v", rec.ParsingStatus, rec.Errors)
	}
	if got := fieldOrFatal(t, rec.CardNumber, "card_number"); got != "1234 XXXX XXXX 5678" {
		t.Fatalf("card %q", got)
	}
}
