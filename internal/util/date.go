package util

import (
	"strings"
	"time"
)

const canonicalDateLayout = "02 Jan 2006"

func NormalizeDate(raw string, layouts []string) string {
	s := strings.Join(strings.Fields(strings.TrimSpace(raw)), " ")
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(canonicalDateLayout)
		}
	}
	return s
}
