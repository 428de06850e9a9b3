package pipeline

import (
	"fmt"

	"cardstmt/internal"
)

func BuildRecord(record internal.StatementRecord, detected internal.Issuer, results []FieldResult) internal.StatementRecord {
	record.Issuer = detected

	extracted := 0
	for _, res := range results {
		if !res.Found {
			record.Errors = append(record.Errors, fmt.Sprintf("%s: not found", res.Field))
			continue
		}
		record.SetField(res.Field, res.Value)
		extracted++
	}

	switch {
	case extracted == 0:
		record.ParsingStatus = internal.StatusFailed
	case detected == internal.IssuerUnknown:
		record.ParsingStatus = internal.StatusPartial
	case missingMandatory(&record):
		record.ParsingStatus = internal.StatusPartial
	default:
		record.ParsingStatus = internal.StatusSuccess
	}
	return record
}

func missingMandatory(record *internal.StatementRecord) bool {
	for _, f := range internal.MandatoryFields {
		if record.FieldValue(f) == nil {
			return true
		}
	}
	return false
}
