package extractor

import (
	"os"
	"path/filepath"
	"strings"
)

func PagesFromText(path string) ([]string, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(blob), "\f"), nil
}

func Pages(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PagesFromPDF(path)
	case ".html", ".htm":
		return PagesFromHTML(path)
	default:
		return PagesFromText(path)
	}
}
