package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cardstmt/internal"
)

func sp(v string) *string { return &v }

func sampleRecords() []internal.StatementRecord {
	return []internal.StatementRecord{
		{
			FileName:       "icici.pdf",
			Issuer:         internal.IssuerICICI,
			CardNumber:     sp("4375XXXXXXXX1234"),
			StatementDate:  sp("12 Mar 2024"),
			PaymentDueDate: sp("30 Mar 2024"),
			TotalAmountDue: sp("12345.00"),
			ParsingStatus:  internal.StatusSuccess,
			Errors:         []string{},
		},
		{
			FileName:      "broken.pdf",
			Issuer:        internal.IssuerUnknown,
			ParsingStatus: internal.StatusFailed,
			Errors:        []string{"no text extracted"},
		},
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, sampleRecords())
	out := buf.String()
	for _, want := range []string{"PARSING SUMMARY", "icici.pdf", "SUCCESS", "Card Number", "4375XXXXXXXX1234", "broken.pdf", "FAILED", "no text extracted"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, sampleRecords())
	out := buf.String()
	for _, want := range []string{"icici.pdf", "ICICI Bank", "12345.00", "failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestJSONNullsForAbsentFields(t *testing.T) {
	blob, err := JSON(sampleRecords())
	if err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(blob, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len=%d", len(decoded))
	}
	if decoded[1]["card_number"] != nil {
		t.Fatalf("card_number %v", decoded[1]["card_number"])
	}
	if decoded[0]["total_amount_due"] != "12345.00" {
		t.Fatalf("total %v", decoded[0]["total_amount_due"])
	}
}

func TestTotals(t *testing.T) {
	total, success, partial, failed := Totals(sampleRecords())
	if total != 2 || success != 1 || partial != 0 || failed != 1 {
		t.Fatalf("got %d/%d/%d/%d", total, success, partial, failed)
	}
}
