package books

import (
	"strings"
	"testing"
)

func TestHTMLToTextDropsBoilerplate(t *testing.T) {
	text, err := htmlToText(strings.NewReader(gutenbergHTML(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(text, "Project Gutenberg") || strings.Contains(text, "margin") {
		t.Fatalf("expected boilerplate to be removed, got %q", text)
	}

	paragraphs := strings.Split(text, "\n\n")
	if len(paragraphs) != 4 {
		t.Fatalf("expected heading and 3 paragraphs, got %d", len(paragraphs))
	}

	if paragraphs[0] != "CHAPTER I." {
		t.Fatalf("unexpected heading: %q", paragraphs[0])
	}

	if !strings.Contains(paragraphs[1], "\n") {
		t.Fatalf("expected line breaks to be preserved inside paragraphs")
	}
}

func TestHTMLToTextFallsBackToBody(t *testing.T) {
	text, err := htmlToText(strings.NewReader("<html><body><div>  Plain body text. </div></body></html>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "Plain body text." {
		t.Fatalf("unexpected text: %q", text)
	}
}
