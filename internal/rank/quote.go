package rank

import (
	"freeread/internal/domain"
	"strings"
	"unicode"
)

const (
	MinQuoteChars       = 40
	MaxQuoteChars       = 240
	DefaultExcerptChars = 420

	ellipsis         = "..."
	shareAttribution = "Shared from Free Read"
)

// BestSentence returns the highest scoring sentence whose length is within
// the quote bounds. Ties keep the earliest sentence.
func BestSentence(text string, category domain.Category) (string, bool) {
	var (
		best      string
		bestScore = -1.0
	)

	for _, s := range Sentences(text) {
		n := CharLen(s)
		if n < MinQuoteChars || n > MaxQuoteChars {
			continue
		}

		if score := Impact(s, category); score > bestScore {
			best, bestScore = s, score
		}
	}

	return best, bestScore >= 0
}

// Quote derives a short quotable line from text. The result ends in terminal
// punctuation and is at most MaxQuoteChars long.
func Quote(text string, category domain.Category) string {
	if s, ok := BestSentence(text, category); ok {
		return clampQuote(Terminate(s))
	}

	sentences := Sentences(text)
	if len(sentences) == 0 {
		return ""
	}

	quote := sentences[0]
	for _, s := range sentences[1:] {
		if CharLen(quote) >= MinQuoteChars {
			break
		}
		quote += " " + s
	}

	return clampQuote(Terminate(quote))
}

func clampQuote(quote string) string {
	if CharLen(quote) > MaxQuoteChars {
		return TruncateWords(quote, MaxQuoteChars)
	}

	return quote
}

// Excerpt returns the leading sentences of text that fit within maxChars.
func Excerpt(text string, maxChars int) string {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return ""
	}

	var (
		b      strings.Builder
		length int
	)

	for _, s := range sentences {
		n := CharLen(s)
		if length > 0 {
			n++
		}
		if length+n > maxChars {
			break
		}

		if length > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
		length += n
	}

	if length == 0 {
		return TruncateWords(sentences[0], maxChars)
	}

	return b.String()
}

// Terminate trims dangling punctuation and makes s end with ".", "!" or "?".
func Terminate(s string) string {
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == ':' || r == '-' || r == '—'
	})
	if s == "" {
		return ""
	}

	body := strings.TrimRightFunc(s, isCloser)
	if body != "" && isTerminal([]rune(body)[CharLen(body)-1]) {
		return s
	}

	return s + "."
}

// TruncateWords cuts s at a word boundary so that the result, including the
// trailing ellipsis, is at most maxChars long.
func TruncateWords(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}

	limit := max(maxChars-len(ellipsis), 0)
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}

	cut = strings.TrimRightFunc(cut, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})

	return cut + ellipsis
}

type ShareInput struct {
	Quote   string
	Excerpt string
	Source  string
	URL     string
}

// ShareText assembles the text handed to the system share sheet.
func ShareText(in ShareInput) string {
	var parts []string

	if q := strings.TrimSpace(in.Quote); q != "" {
		parts = append(parts, "\""+q+"\"")
	}

	if e := strings.TrimSpace(in.Excerpt); e != "" && e != strings.TrimSpace(in.Quote) {
		parts = append(parts, e)
	}

	var attribution []string
	if src := strings.TrimSpace(in.Source); src != "" {
		attribution = append(attribution, "— "+src)
	}
	if u := strings.TrimSpace(in.URL); u != "" {
		attribution = append(attribution, u)
	}
	if len(attribution) > 0 {
		parts = append(parts, strings.Join(attribution, "\n"))
	}

	parts = append(parts, shareAttribution)

	return strings.Join(parts, "\n\n")
}
