package pipeline

import (
	"regexp"
	"strings"
)

var innerSpaces = regexp.MustCompile(`[ \t\x{00A0}]+`)

func Normalize(pages []string) string {
	out := make([]string, 0, 64)
	for _, page := range pages {
		page = strings.ReplaceAll(page, "\r\n", "\n")
		for _, line := range strings.Split(page, "\n") {
			line = strings.TrimSpace(innerSpaces.ReplaceAllString(line, " "))
			if line == "" {
				continue
			}
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
