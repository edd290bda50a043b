package rank

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinParagraphChars drops separators, page numbers and other noise.
	MinParagraphChars = 40

	// PassageSegmentChars is the target used when segmenting library passages.
	PassageSegmentChars = 760

	paragraphJoin = "\n\n"
)

var paragraphBreakRe = regexp.MustCompile(`\n[ \t\r]*\n`)

// Paragraphs splits text on blank lines, unwraps hard line breaks and drops
// paragraphs shorter than MinParagraphChars.
func Paragraphs(text string) []string {
	return splitParagraphs(text, MinParagraphChars)
}

func splitParagraphs(text string, minChars int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var paragraphs []string
	for _, raw := range paragraphBreakRe.Split(text, -1) {
		p := strings.Join(strings.Fields(raw), " ")
		if p == "" || CharLen(p) < minChars {
			continue
		}

		paragraphs = append(paragraphs, p)
	}

	return paragraphs
}

// Segment packs the paragraphs of text into segments near target characters.
func Segment(text string, target int) []string {
	return Pack(Paragraphs(text), target)
}

// Pack greedily joins consecutive paragraphs while the segment stays within
// target. A paragraph that alone exceeds target becomes its own segment.
func Pack(paragraphs []string, target int) []string {
	var (
		segments   []string
		current    strings.Builder
		currentLen int
	)

	for _, p := range paragraphs {
		pLen := CharLen(p)
		if currentLen > 0 && currentLen+len(paragraphJoin)+pLen > target {
			segments = append(segments, current.String())
			current.Reset()
			currentLen = 0
		}

		if currentLen > 0 {
			current.WriteString(paragraphJoin)
			currentLen += len(paragraphJoin)
		}

		current.WriteString(p)
		currentLen += pLen
	}

	if currentLen > 0 {
		segments = append(segments, current.String())
	}

	return segments
}

// SplitSegment returns the paragraphs a segment was packed from.
func SplitSegment(segment string) []string {
	return strings.Split(segment, paragraphJoin)
}

func CharLen(s string) int {
	return utf8.RuneCountInString(s)
}
