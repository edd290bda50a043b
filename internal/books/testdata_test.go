package books

import (
	"fmt"
	"strings"
)

var proseSentences = []string{
	"The old road wound between the hills and nobody could say who had first walked it.",
	"Courage is not the absence of fear; it is the judgement that something else matters more.",
	"Every evening the lamps were lit along the harbour and the boats came home slowly.",
	"She had learned that patience is a kind of strength that rarely announces itself.",
	"What do we owe to the people who will live after us, and how should we repay them?",
	"The forest kept its own time, measured in seasons rather than in hours or days.",
	"He wrote letters he never sent, and the drawer grew heavy with unsaid things.",
}

func proseParagraph(i int) string {
	parts := make([]string, 0, 4)
	for k := range 4 {
		parts = append(parts, proseSentences[(i+k)%len(proseSentences)])
	}

	return wrapLines(strings.Join(parts, " "), 70)
}

func wrapLines(text string, width int) string {
	var (
		b       strings.Builder
		lineLen int
	)

	for i, word := range strings.Fields(text) {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}

	return b.String()
}

const (
	startMarker = "*** START OF THE PROJECT GUTENBERG EBOOK A TEST BOOK ***"
	endMarker   = "*** END OF THE PROJECT GUTENBERG EBOOK A TEST BOOK ***"
)

func gutenbergText(paragraphs int) string {
	var b strings.Builder

	b.WriteString("The Project Gutenberg eBook of A Test Book\r\n\r\n")
	b.WriteString("This ebook is for the use of anyone anywhere in the United States and\r\n")
	b.WriteString("most other parts of the world at no cost. See www.gutenberg.org.\r\n\r\n")
	b.WriteString(startMarker + "\r\n\r\n")
	b.WriteString("CHAPTER I.\r\n\r\n")

	for i := range paragraphs {
		b.WriteString(strings.ReplaceAll(proseParagraph(i), "\n", "\r\n"))
		b.WriteString("\r\n\r\n")
	}

	b.WriteString(endMarker + "\r\n\r\n")
	b.WriteString("Section 1. General Terms of Use and Redistributing Project Gutenberg\r\n")
	b.WriteString("electronic works. Updated editions will replace the previous one.\r\n")

	return b.String()
}

func gutenbergHTML(paragraphs int) string {
	var b strings.Builder

	b.WriteString("<html><head><title>A Test Book</title><style>p { margin: 0 }</style></head><body>")
	b.WriteString(`<section id="pg-header"><p>The Project Gutenberg eBook of A Test Book, ` +
		`see https://www.gutenberg.org for the license that governs this file.</p></section>`)
	b.WriteString("<h2>CHAPTER I.</h2>")

	for i := range paragraphs {
		fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(proseParagraph(i+3), "\n", "<br>"))
	}

	b.WriteString(`<section id="pg-footer"><p>End of the Project Gutenberg eBook.</p></section>`)
	b.WriteString("</body></html>")

	return b.String()
}
