package issuer

import (
	"regexp"

	"cardstmt/internal"
)

type CleanKind int

const (
	CleanNone CleanKind = iota
	CleanAmount
	CleanDate
)

type ExtractionRule struct {
	Field       internal.Field
	Patterns    []*regexp.Regexp
	Clean       CleanKind
	DateLayouts []string
}

type Profile struct {
	Issuer  internal.Issuer
	Markers []*regexp.Regexp
	Rules   []ExtractionRule
}

var (
	indianDateLayouts = []string{"02/01/2006", "02-01-2006", "2/1/2006", "2-1-2006"}
	longDateLayouts   = []string{"2 January, 2006", "2 January 2006", "January 2, 2006", "2 Jan, 2006", "2 Jan 2006", "Jan 2, 2006"}
	amexDateLayouts   = []string{"01/02/06", "01/02/2006", "1/2/06", "1/2/2006"}
)

func rx(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

func iciciProfile() Profile {
	return Profile{
		Issuer: internal.IssuerICICI,
		Markers: []*regexp.Regexp{
			rx(`ICICI\s+Bank`),
			rx(`icicibank\.com`),
			rx(`CIN.*L65190GJ1994PLC021012`),
		},
		Rules: []ExtractionRule{
			{
				Field: internal.FieldCardNumber,
				Patterns: []*regexp.Regexp{
					rx(`(\d{4}X{8}\d{4})`),
					rx(`(\d{16})`),
				},
			},
			{
				Field: internal.FieldStatementDate,
				Patterns: []*regexp.Regexp{
					rx(`STATEMENT\s+DATE[:\s]*(\d{1,2}\s+\w+,?\s+\d{4})`),
					rx(`Statement\s+period\s*:.*to\s+(\w+\s+\d{1,2},\s+\d{4})`),
				},
				Clean:       CleanDate,
				DateLayouts: longDateLayouts,
			},
			{
				Field: internal.FieldPaymentDueDate,
				Patterns: []*regexp.Regexp{
					rx(`PAYMENT\s+DUE\s+DATE[:\s]*(\d{1,2}\s+\w+,?\s+\d{4})`),
					rx(`Payment\s+Due\s+Date[:\s]*(\w+\s+\d{1,2},\s+\d{4})`),
				},
				Clean:       CleanDate,
				DateLayouts: longDateLayouts,
			},
			{
				Field: internal.FieldTotalAmountDue,
				Patterns: []*regexp.Regexp{
					rx("Total\\s+Amount\\s+due[:\\s]*[₹`Rs.\\s]*([0-9,]+\\.?\\d{0,2})"),
					rx("Total\\s+Payment\\s+Due[:\\s]*[₹`Rs.\\s]*([0-9,]+\\.?\\d{0,2})"),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldMinimumAmountDue,
				Patterns: []*regexp.Regexp{
					rx("Minimum\\s+Amount\\s+due[:\\s]*[₹`Rs.\\s]*([0-9,]+\\.?\\d{0,2})"),
					rx("Minimum\\s+Payment\\s+Due[:\\s]*[₹`Rs.\\s]*([0-9,]+\\.?\\d{0,2})"),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldCreditLimit,
				Patterns: []*regexp.Regexp{
					rx("Credit\\s+Limit\\s*\\(Including\\s+cash\\)[:\\s]*[₹`Rs.\\s]*([0-9,]+\\.?\\d{0,2})"),
					rx("Credit\\s+Limit[:\\s]*[₹`Rs.\\s]*([0-9,]+\\.?\\d{0,2})"),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldAvailableCredit,
				Patterns: []*regexp.Regexp{
					rx("Available\\s+Credit\\s*\\(Including\\s+cash\\)[:\\s]*[₹`Rs.\\s]*([0-9,]+\\.?\\d{0,2})"),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldPreviousBalance,
				Patterns: []*regexp.Regexp{
					rx("Previous\\s+Balance[:\\s]*[₹`Rs.\\s]*([0-9,]+\\.?\\d{0,2})"),
				},
				Clean: CleanAmount,
			},
		},
	}
}

func axisProfile() Profile {
	return Profile{
		Issuer: internal.IssuerAxis,
		Markers: []*regexp.Regexp{
			rx(`Axis\s+Bank`),
			rx(`axisbank\.com`),
			rx(`AAACU2414K3ZD`),
		},
		Rules: []ExtractionRule{
			{
				Field: internal.FieldCardNumber,
				Patterns: []*regexp.Regexp{
					rx(`Card\s+No[:\s]*(\d{8}\*{4}\d{4})`),
					rx(`Card\s+No[:\s]*(\d{14}\*{4}\d{4})`),
					rx(`Credit\s+Card\s+Number[:\s]*(\d{8}\*{4}\d{4})`),
				},
			},
			{
				Field: internal.FieldStatementDate,
				Patterns: []*regexp.Regexp{
					rx(`Statement\s+Generation\s+Date[:\s]*(\d{2}[/\-]\d{2}[/\-]\d{4})`),
					rx(`(\d{2}[/\-]\d{2}[/\-]\d{4})\s*-\s*(\d{2}[/\-]\d{2}[/\-]\d{4})`),
				},
				Clean:       CleanDate,
				DateLayouts: indianDateLayouts,
			},
			{
				Field: internal.FieldPaymentDueDate,
				Patterns: []*regexp.Regexp{
					rx(`Payment\s+Due\s+Date[:\s]*(\d{2}[/\-]\d{2}[/\-]\d{4})`),
				},
				Clean:       CleanDate,
				DateLayouts: indianDateLayouts,
			},
			{
				Field: internal.FieldTotalAmountDue,
				Patterns: []*regexp.Regexp{
					rx(`Total\s+Payment\s+Due[:\s]*([0-9,]+\.?\d{0,2})\s*Dr`),
					rx(`Total\s+Amount\s+Due[:\s]*([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldMinimumAmountDue,
				Patterns: []*regexp.Regexp{
					rx(`Minimum\s+Payment\s+Due[:\s]*([0-9,]+\.?\d{0,2})\s*Dr`),
					rx(`Minimum\s+Amount\s+Due[:\s]*([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldCreditLimit,
				Patterns: []*regexp.Regexp{
					rx(`Credit\s+Limit[:\s]*([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldAvailableCredit,
				Patterns: []*regexp.Regexp{
					rx(`Available\s+Credit\s+Limit[:\s]*([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldPreviousBalance,
				Patterns: []*regexp.Regexp{
					rx(`Previous\s+Balance[:\s]*-?\s*([0-9,]+\.?\d{0,2})\s*Dr`),
				},
				Clean: CleanAmount,
			},
		},
	}
}

func idfcProfile() Profile {
	return Profile{
		Issuer: internal.IssuerIDFC,
		Markers: []*regexp.Regexp{
			rx(`IDFC\s+FIRST\s+Bank`),
			rx(`idfcfirstbank\.com`),
			rx(`IDFB0010225`),
		},
		Rules: []ExtractionRule{
			{
				Field: internal.FieldCardNumber,
				Patterns: []*regexp.Regexp{
					rx(`Card\s+Number[:\s]*XXXX\s*(\d{4})`),
					rx(`Account\s+Number[:\s]*(\d+)`),
				},
			},
			{
				Field: internal.FieldStatementDate,
				Patterns: []*regexp.Regexp{
					rx(`(\d{2}/\d{2}/\d{4})\s*-\s*(\d{2}/\d{2}/\d{4})`),
				},
				Clean:       CleanDate,
				DateLayouts: indianDateLayouts,
			},
			{
				Field: internal.FieldPaymentDueDate,
				Patterns: []*regexp.Regexp{
					rx(`Payment\s+Due\s+Date[:\s]*(\d{2}/\d{2}/\d{4})`),
				},
				Clean:       CleanDate,
				DateLayouts: indianDateLayouts,
			},
			{
				// IDFC statements render the rupee glyph as a bare "r".
				Field: internal.FieldTotalAmountDue,
				Patterns: []*regexp.Regexp{
					rx(`Total\s+Amount\s+Due[:\s]*r([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldMinimumAmountDue,
				Patterns: []*regexp.Regexp{
					rx(`Minimum\s+Amount\s+Due[:\s]*r([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldCreditLimit,
				Patterns: []*regexp.Regexp{
					rx(`Credit\s+Limit[:\s]*r([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldAvailableCredit,
				Patterns: []*regexp.Regexp{
					rx(`Available\s+Credit\s+Limit[:\s]*r([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
		},
	}
}

func rblProfile() Profile {
	return Profile{
		Issuer: internal.IssuerRBL,
		Markers: []*regexp.Regexp{
			rx(`RBL\s+Bank`),
			rx(`rblbank\.com`),
			rx(`L65191PN1943PLC007308`),
		},
		Rules: []ExtractionRule{
			{
				Field: internal.FieldCardNumber,
				Patterns: []*regexp.Regexp{
					rx(`(\d{4}\s*XXXX\s*XXXX\s*\d{4})`),
					rx(`(\d{4}\s*X{4}\s*X{4}\s*\d{4})`),
				},
			},
			{
				Field: internal.FieldStatementDate,
				Patterns: []*regexp.Regexp{
					rx(`(\d{2}/\d{2}/\d{4})\s*to\s*(\d{2}/\d{2}/\d{4})`),
				},
				Clean:       CleanDate,
				DateLayouts: indianDateLayouts,
			},
			{
				Field: internal.FieldPaymentDueDate,
				Patterns: []*regexp.Regexp{
					rx(`Immediate(\d{2}/\d{2}/\d{4})`),
				},
				Clean:       CleanDate,
				DateLayouts: indianDateLayouts,
			},
			{
				// RBL prints the dues block as bare numbers stacked in a
				// column; position identifies them.
				Field: internal.FieldTotalAmountDue,
				Patterns: []*regexp.Regexp{
					rx(`([0-9,]+\.?\d{0,2})\s*\n\s*([0-9,]+\.?\d{0,2})\s*\n\s*0\.00`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldMinimumAmountDue,
				Patterns: []*regexp.Regexp{
					rx(`Minimum[^0-9]*([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldCreditLimit,
				Patterns: []*regexp.Regexp{
					rx(`([0-9,]+\.?\d{0,2})\s*0\.00\s*0\.00`),
				},
				Clean: CleanAmount,
			},
		},
	}
}

func amexProfile() Profile {
	return Profile{
		Issuer: internal.IssuerAmex,
		Markers: []*regexp.Regexp{
			rx(`American\s+Express`),
			rx(`americanexpress\.com`),
			rx(`AMEX`),
		},
		Rules: []ExtractionRule{
			{
				Field: internal.FieldCardNumber,
				Patterns: []*regexp.Regexp{
					rx(`Account\s+Ending\s*(\d-\d{5})`),
					rx(`Card\s+Ending\s*(\d-\d{5})`),
				},
			},
			{
				Field: internal.FieldStatementDate,
				Patterns: []*regexp.Regexp{
					rx(`Closing\s+Date[:\s]*(\d{2}/\d{2}/\d{2,4})`),
				},
				Clean:       CleanDate,
				DateLayouts: amexDateLayouts,
			},
			{
				Field: internal.FieldPaymentDueDate,
				Patterns: []*regexp.Regexp{
					rx(`Payment\s+Due\s+Date[:\s]*(\d{2}/\d{2}/\d{2,4})`),
				},
				Clean:       CleanDate,
				DateLayouts: amexDateLayouts,
			},
			{
				Field: internal.FieldTotalAmountDue,
				Patterns: []*regexp.Regexp{
					rx(`New\s+Balance[:\s]*\$([0-9,]+\.?\d{0,2})`),
					rx(`Total[:\s]*\$([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldMinimumAmountDue,
				Patterns: []*regexp.Regexp{
					rx(`Minimum\s+Payment\s+Due[:\s]*\$([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldCreditLimit,
				Patterns: []*regexp.Regexp{
					rx(`Pay\s+Over\s+Time\s+Limit[:\s]*\$([0-9,]+\.?\d{0,2})`),
					rx(`Credit\s+Limit[:\s]*\$([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldAvailableCredit,
				Patterns: []*regexp.Regexp{
					rx(`Available\s+Pay\s+Over\s+Time\s+Limit[:\s]*\$([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldPreviousBalance,
				Patterns: []*regexp.Regexp{
					rx(`Previous\s+Balance[:\s]*\$([0-9,]+\.?\d{0,2})`),
				},
				Clean: CleanAmount,
			},
		},
	}
}

func fallbackProfile() Profile {
	fallbackDateLayouts := []string{"02/01/2006", "02-01-2006", "2 January 2006", "2 Jan 2006", "2 January, 2006"}
	return Profile{
		Issuer: internal.IssuerUnknown,
		Markers: []*regexp.Regexp{
			rx(`.`),
		},
		Rules: []ExtractionRule{
			{
				Field: internal.FieldCardNumber,
				Patterns: []*regexp.Regexp{
					rx(`(\d{4}\s*[X*]{4}\s*[X*]{4}\s*\d{4})`),
					rx(`(\d{4}[X*]{4,12}\d{4})`),
					rx(`(\d{8}[X*]{4}\d{4})`),
				},
			},
			{
				Field: internal.FieldStatementDate,
				Patterns: []*regexp.Regexp{
					rx(`Statement\s+Date[:\s]*(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`),
					rx(`Statement\s+Date[:\s]*(\d{1,2}\s+\w+,?\s+\d{4})`),
				},
				Clean:       CleanDate,
				DateLayouts: fallbackDateLayouts,
			},
			{
				Field: internal.FieldPaymentDueDate,
				Patterns: []*regexp.Regexp{
					rx(`Payment\s+Due\s+Date[:\s]*(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`),
					rx(`Payment\s+Due\s+Date[:\s]*(\d{1,2}\s+\w+,?\s+\d{4})`),
				},
				Clean:       CleanDate,
				DateLayouts: fallbackDateLayouts,
			},
			{
				Field: internal.FieldTotalAmountDue,
				Patterns: []*regexp.Regexp{
					rx("Total\\s+(?:Amount|Payment)\\s+Due[:\\s]*[₹$`Rs.\\s]*([0-9,]+\\.?\\d{0,2})"),
				},
				Clean: CleanAmount,
			},
			{
				Field: internal.FieldMinimumAmountDue,
				Patterns: []*regexp.Regexp{
					rx("Minimum\\s+(?:Amount|Payment)\\s+Due[:\\s]*[₹$`Rs.\\s]*([0-9,]+\\.?\\d{0,2})"),
				},
				Clean: CleanAmount,
			},
		},
	}
}
