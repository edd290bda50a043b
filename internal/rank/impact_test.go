package rank

import (
	"freeread/internal/domain"
	"slices"
	"strings"
	"testing"
)

func TestImpactExactScore(t *testing.T) {
	if got := Impact("What is courage?", domain.CategoryPhilosophy); got != 0.11 {
		t.Fatalf("unexpected score: %v", got)
	}
}

func TestImpactBounded(t *testing.T) {
	texts := []string{
		"",
		"?",
		strings.Repeat("truth courage love fear death virtue reason justice? ; : ", 200),
		strings.Repeat("wealth labour trade market price capital money ", 50),
		"A plain sentence with no special words at all in it whatsoever.",
	}

	for _, text := range texts {
		for _, c := range append(domain.Categories, "") {
			score := Impact(text, c)
			if score < 0 || score > MaxImpact {
				t.Fatalf("score %v out of bounds for %.30q", score, text)
			}
		}
	}
}

func TestImpactCapsKeywordStuffing(t *testing.T) {
	stuffed := strings.Repeat("truth ", 100)
	modest := "truth courage love fear death life"

	if Impact(stuffed, domain.CategoryLiterature) > Impact(modest, domain.CategoryLiterature)+sweetSpotBonus {
		t.Fatalf("keyword stuffing should be capped")
	}
}

func TestImpactIsPure(t *testing.T) {
	text := "Habits are the invisible architecture of a life; attention is the mortar."

	first := Impact(text, domain.CategoryPsychology)
	for range 50 {
		if got := Impact(text, domain.CategoryPsychology); got != first {
			t.Fatalf("score changed between calls: %v vs %v", first, got)
		}
	}
}

func TestImpactRanksQuotableHigher(t *testing.T) {
	quotable := "Courage is not the absence of fear; it is the judgement that something else matters more."
	flat := "The committee met on a Tuesday in the second week of the month at the usual place."

	if Impact(quotable, domain.CategoryPhilosophy) <= Impact(flat, domain.CategoryPhilosophy) {
		t.Fatalf("expected quotable sentence to outrank flat one")
	}
}

func TestImpactUsesCategoryLexicon(t *testing.T) {
	text := "The market sets a price on labour, and wealth follows trade wherever it flows."

	if Impact(text, domain.CategoryEconomics) <= Impact(text, domain.CategoryPoetry) {
		t.Fatalf("expected category lexicon to add to the score")
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("He said \"stop.\" Then left. Pi is 3.14 exactly! Trailing words")
	want := []string{"He said \"stop.\"", "Then left.", "Pi is 3.14 exactly!", "Trailing words"}

	if !slices.Equal(got, want) {
		t.Fatalf("unexpected sentences:\n got %q\nwant %q", got, want)
	}
}
