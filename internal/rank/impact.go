package rank

import (
	"freeread/internal/domain"
	"math"
	"strings"
	"unicode"
)

const (
	sweetSpotMinWords = 12
	sweetSpotMaxWords = 40
	nearSpotMinWords  = 6
	nearSpotMaxWords  = 70

	sweetSpotBonus = 0.25
	nearSpotBonus  = 0.12

	questionBonus = 0.05
	questionCap   = 0.10
	pauseBonus    = 0.03
	pauseCap      = 0.08

	lexiconBonus  = 0.06
	lexiconCap    = 0.35
	categoryBonus = 0.05
	categoryCap   = 0.20

	// MaxImpact is the upper bound of Impact.
	MaxImpact = 1.0
)

// Impact scores how quotable a text unit is. The result is in [0, MaxImpact]
// and depends only on text and category.
func Impact(text string, category domain.Category) float64 {
	words := tokenize(text)

	var score float64

	switch n := len(words); {
	case n >= sweetSpotMinWords && n <= sweetSpotMaxWords:
		score += sweetSpotBonus
	case n >= nearSpotMinWords && n <= nearSpotMaxWords:
		score += nearSpotBonus
	}

	score += min(float64(strings.Count(text, "?"))*questionBonus, questionCap)

	pauses := strings.Count(text, ";") +
		strings.Count(text, ":") +
		strings.Count(text, " - ") +
		strings.Count(text, "—")
	score += min(float64(pauses)*pauseBonus, pauseCap)

	categoryWords := categoryLexicons[category]

	var lexiconHits, categoryHits int
	for _, w := range words {
		if _, ok := impactLexicon[w]; ok {
			lexiconHits++
		}
		if _, ok := categoryWords[w]; ok {
			categoryHits++
		}
	}

	score += min(float64(lexiconHits)*lexiconBonus, lexiconCap)
	score += min(float64(categoryHits)*categoryBonus, categoryCap)

	score = max(0, min(score, MaxImpact))

	return math.Round(score*1e4) / 1e4
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	words := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			words = append(words, f)
		}
	}

	return words
}

// Sentences splits text on terminal punctuation followed by whitespace.
func Sentences(text string) []string {
	runes := []rune(strings.Join(strings.Fields(text), " "))

	var (
		sentences []string
		start     int
	)

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}

		end := i + 1
		for end < len(runes) && (isTerminal(runes[end]) || isCloser(runes[end])) {
			end++
		}

		if end < len(runes) && runes[end] != ' ' {
			i = end - 1
			continue
		}

		if s := strings.TrimSpace(string(runes[start:end])); s != "" {
			sentences = append(sentences, s)
		}

		start = end
		i = end - 1
	}

	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’', '»':
		return true
	}

	return false
}
