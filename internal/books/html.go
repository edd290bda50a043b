package books

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const boilerplateSelector = "script, style, head, #pg-header, #pg-footer, .pg-boilerplate"

// htmlToText reduces an HTML book to blank-line separated paragraphs.
func htmlToText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("create document from reader: %w", err)
	}

	doc.Find(boilerplateSelector).Remove()

	var paragraphs []string
	doc.Find("p, h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		s.Find("br").Each(func(_ int, br *goquery.Selection) {
			br.ReplaceWithHtml("\n")
		})

		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	if len(paragraphs) == 0 {
		return strings.TrimSpace(doc.Find("body").Text()), nil
	}

	return strings.Join(paragraphs, "\n\n"), nil
}
