package pipeline

import (
	"strings"

	"cardstmt/internal"
	"cardstmt/internal/issuer"
	"cardstmt/internal/util"
)

type FieldResult struct {
	Field internal.Field
	Value string
	Found bool
}

func ExtractFields(profile issuer.Profile, text string) []FieldResult {
	results := make([]FieldResult, 0, len(profile.Rules))
	for _, rule := range profile.Rules {
		raw, ok := firstMatch(rule, text)
		if !ok {
			results = append(results, FieldResult{Field: rule.Field})
			continue
		}
		results = append(results, FieldResult{
			Field: rule.Field,
			Value: clean(rule, raw),
			Found: true,
		})
	}
	return results
}

func firstMatch(rule issuer.ExtractionRule, text string) (string, bool) {
	for _, pattern := range rule.Patterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for i := len(m) - 1; i >= 1; i-- {
			if m[i] != "" {
				return m[i], true
			}
		}
		return m[0], true
	}
	return "", false
}

func clean(rule issuer.ExtractionRule, raw string) string {
	switch rule.Clean {
	case issuer.CleanAmount:
		return util.NormalizeAmount(raw)
	case issuer.CleanDate:
		return util.NormalizeDate(raw, rule.DateLayouts)
	default:
		return strings.TrimSpace(raw)
	}
}
