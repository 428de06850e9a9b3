package pipeline

import (
	"fmt"

	"cardstmt/internal"
	"cardstmt/internal/issuer"
)

func ProcessBatch(reg *issuer.Registry, docs []internal.Document) []internal.StatementRecord {
	records := make([]internal.StatementRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, processSafely(reg, doc))
	}
	return records
}

func processSafely(reg *issuer.Registry, doc internal.Document) (record internal.StatementRecord) {
	defer func() {
		if r := recover(); r != nil {
			record = internal.StatementRecord{
				FileName:      doc.Name,
				Issuer:        internal.IssuerUnknown,
				ParsingStatus: internal.StatusFailed,
				Errors:        []string{fmt.Sprintf("unexpected extraction failure: %v", r)},
			}
		}
	}()
	return ProcessDocument(reg, doc)
}

func ProcessDocument(reg *issuer.Registry, doc internal.Document) internal.StatementRecord {
	record := internal.StatementRecord{
		FileName: doc.Name,
		Issuer:   internal.IssuerUnknown,
		Errors:   []string{},
	}

	text := Normalize(doc.Pages)
	if text == "" {
		record.ParsingStatus = internal.StatusFailed
		record.Errors = append(record.Errors, "no text extracted")
		return record
	}

	detected := DetectIssuer(reg, text)
	profile := reg.ProfileFor(detected)
	if detected == internal.IssuerUnknown {
		record.Errors = append(record.Errors, "issuer not recognized, applying fallback rules")
	}

	results := ExtractFields(profile, text)
	return BuildRecord(record, detected, results)
}
