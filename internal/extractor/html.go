package extractor

import (
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func PagesFromHTML(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}
	doc.Find("script,style").Remove()

	var b strings.Builder
	doc.Find("p, div, span, td, th, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		b.WriteString(text)
		b.WriteByte('\n')
	})

	if b.Len() == 0 {
		return []string{strings.TrimSpace(doc.Text())}, nil
	}
	return []string{b.String()}, nil
}
