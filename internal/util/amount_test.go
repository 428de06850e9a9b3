package util

import "testing"

func TestNormalizeAmount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "indian grouping", input: "1,00,000.00", want: "100000.00"},
		{name: "international grouping", input: "100,000.00", want: "100000.00"},
		{name: "already canonical", input: "12345.00", want: "12345.00"},
		{name: "no fraction", input: "12345", want: "12345.00"},
		{name: "trailing dot", input: "12345.", want: "12345.00"},
		{name: "rupee prefix", input: "₹12,345.00", want: "12345.00"},
		{name: "dollar prefix", input: "$1,234.56", want: "1234.56"},
		{name: "single fraction digit", input: "500.5", want: "500.50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeAmount(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeAmountIdempotent(t *testing.T) {
	once := NormalizeAmount("1,00,000.00")
	twice := NormalizeAmount(once)
	if once != twice {
		t.Fatalf("not idempotent: %q then %q", once, twice)
	}
}

func TestNormalizeAmountNonNumeric(t *testing.T) {
	if got := NormalizeAmount(" n/a "); got != "n/a" {
		t.Fatalf("got %q", got)
	}
}
