package books

import (
	"cmp"
	"freeread/internal/domain"
	"freeread/internal/rank"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"mvdan.cc/xurls/v2"
)

const (
	MinSectionChars = 700
	MaxSectionChars = 1150

	minValidParagraphChars = 180
	maxValidParagraphChars = 1400
	minSampledChars        = 80
	maxUpperRatio          = 0.3
	maxDigitRatio          = 0.08

	sectionJoin = "\n\n"
)

//nolint:gochecknoglobals // Compiled once.
var (
	startMarkerRe = regexp.MustCompile(`(?i)\*{3}\s*START OF (?:THE|THIS) PROJECT GUTENBERG[^\n]*`)
	endMarkerRe   = regexp.MustCompile(`(?i)\*{3}\s*END OF (?:THE|THIS) PROJECT GUTENBERG[^\n]*`)
	legacyEndRe   = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*End of (?:the )?Project Gutenberg(?:'s)?[^\n]*`)
	headingRe     = regexp.MustCompile(
		`(?i)^(?:chapter|book|part|section|volume|canto|letter|act|scene|preface|contents|introduction)\b`,
	)
	urlRe = xurls.Relaxed()
)

// Section is a readable excerpt starting at paragraph Index.
type Section struct {
	Index int
	Text  string
}

// StripBoilerplate removes the publisher header and license trailer.
func StripBoilerplate(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	if loc := startMarkerRe.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}

	if loc := endMarkerRe.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}

	if loc := legacyEndRe.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}

	text = startMarkerRe.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}

// ExtractSections picks up to n high-impact sections of a book body.
func ExtractSections(text string, category domain.Category, n int) []Section {
	paragraphs := rank.Paragraphs(StripBoilerplate(text))
	if len(paragraphs) == 0 || n <= 0 {
		return nil
	}

	starts := selectParagraphs(paragraphs, category, n)

	var (
		sections []Section
		next     int
	)

	for _, start := range starts {
		if start < next {
			continue
		}

		section, end, ok := expandSection(paragraphs, start)
		if !ok {
			continue
		}

		sections = append(sections, Section{Index: start, Text: section})
		next = end
	}

	return sections
}

func validParagraph(p string) bool {
	n := rank.CharLen(p)
	if n < minValidParagraphChars || n > maxValidParagraphChars {
		return false
	}

	if headingRe.MatchString(p) || !endsLikeProse(p) {
		return false
	}

	var letters, upper, digits int
	for _, r := range p {
		switch {
		case unicode.IsLetter(r):
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		case unicode.IsDigit(r):
			digits++
		}
	}

	if letters == 0 {
		return false
	}
	if float64(upper)/float64(letters) > maxUpperRatio {
		return false
	}
	if float64(digits)/float64(n) > maxDigitRatio {
		return false
	}

	if urlRe.MatchString(p) {
		return false
	}

	return !strings.Contains(strings.ToLower(p), "project gutenberg")
}

func endsLikeProse(p string) bool {
	trimmed := strings.TrimRightFunc(p, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("\"')]”’»_", r)
	})
	if trimmed == "" {
		return false
	}

	last := []rune(trimmed)[rank.CharLen(trimmed)-1]

	return last == '.' || last == '!' || last == '?'
}

type scoredParagraph struct {
	index int
	score float64
}

// selectParagraphs returns the indices of up to n non-adjacent top scoring
// valid paragraphs in document order. Without any valid paragraph it samples
// evenly spaced paragraphs instead.
func selectParagraphs(paragraphs []string, category domain.Category, n int) []int {
	var candidates []scoredParagraph
	for i, p := range paragraphs {
		if validParagraph(p) {
			candidates = append(candidates, scoredParagraph{index: i, score: rank.Impact(p, category)})
		}
	}

	if len(candidates) == 0 {
		return sampleEvenly(paragraphs, n)
	}

	slices.SortStableFunc(candidates, func(a, b scoredParagraph) int {
		return cmp.Compare(b.score, a.score)
	})

	var picked []int
	for _, c := range candidates {
		if len(picked) == n {
			break
		}

		adjacent := slices.ContainsFunc(picked, func(i int) bool {
			return c.index-i <= 1 && i-c.index <= 1
		})
		if !adjacent {
			picked = append(picked, c.index)
		}
	}

	slices.Sort(picked)

	return picked
}

func sampleEvenly(paragraphs []string, n int) []int {
	var eligible []int
	for i, p := range paragraphs {
		if rank.CharLen(p) >= minSampledChars {
			eligible = append(eligible, i)
		}
	}

	if len(eligible) <= n {
		return eligible
	}

	picked := make([]int, 0, n)
	for k := range n {
		picked = append(picked, eligible[(2*k+1)*len(eligible)/(2*n)])
	}

	return picked
}

// expandSection grows a section from paragraphs[start] until it reaches
// MinSectionChars and cuts it at the last sentence boundary within
// MaxSectionChars. It returns the index after the last consumed paragraph.
func expandSection(paragraphs []string, start int) (string, int, bool) {
	var (
		parts  []string
		length int
		end    = start
	)

	for ; end < len(paragraphs) && length < MinSectionChars; end++ {
		if length > 0 {
			length += len(sectionJoin)
		}
		parts = append(parts, paragraphs[end])
		length += rank.CharLen(paragraphs[end])
	}

	if length < MinSectionChars {
		return "", end, false
	}

	runes := []rune(strings.Join(parts, sectionJoin))
	cut := lastSentenceEnd(runes, MaxSectionChars)
	if cut < MinSectionChars {
		return "", end, false
	}

	return string(runes[:cut]), end, true
}

func lastSentenceEnd(runes []rune, limit int) int {
	best := -1

	for i := 0; i < len(runes) && i < limit; i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}

		end := i + 1
		for end < len(runes) && strings.ContainsRune("\"')]”’»", runes[end]) {
			end++
		}

		if end > limit {
			break
		}

		if end == len(runes) || unicode.IsSpace(runes[end]) {
			best = end
		}
	}

	return best
}
