package library

import (
	"freeread/internal/domain"
	"testing"
)

func TestDefaultLibraryCoversEveryCategory(t *testing.T) {
	lib := Default()

	seen := make(map[domain.Category]struct{})
	for _, p := range lib.Passages() {
		seen[p.Category] = struct{}{}
	}
	for _, c := range lib.Editorial() {
		seen[c.Category] = struct{}{}
	}

	for _, c := range domain.Categories {
		if _, ok := seen[c]; !ok {
			t.Fatalf("category %q has no content", c)
		}
	}
}

func TestDefaultLibraryPassagesAreWellFormed(t *testing.T) {
	ids := make(map[string]struct{})

	for _, p := range Default().Passages() {
		if _, ok := ids[p.ID]; ok {
			t.Fatalf("duplicate passage id %q", p.ID)
		}
		ids[p.ID] = struct{}{}

		if p.ReadMinutes < 1 {
			t.Fatalf("passage %q has no read time", p.ID)
		}

		for _, q := range p.Questions {
			if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
				t.Fatalf("passage %q has an out of range answer for %q", p.ID, q.Prompt)
			}
		}
	}
}

func TestPassageLookup(t *testing.T) {
	lib := Default()

	p, ok := lib.Passage(" habit-loop ")
	if !ok || p.Category != domain.CategoryPsychology {
		t.Fatalf("expected habit-loop passage, got %+v (ok = %t)", p, ok)
	}

	if _, ok = lib.Passage("missing"); ok {
		t.Fatalf("expected missing passage lookup to fail")
	}
}

func TestEstimateReadMinutes(t *testing.T) {
	tests := map[int]int{0: 1, 1: 1, 200: 1, 201: 2, 650: 4}

	for words, want := range tests {
		body := ""
		for range words {
			body += "w "
		}

		if got := EstimateReadMinutes(body); got != want {
			t.Fatalf("EstimateReadMinutes(%d words) = %d, want %d", words, got, want)
		}
	}
}

func TestLibraryReturnsCopies(t *testing.T) {
	lib := Default()

	passages := lib.Passages()
	passages[0].Title = "mutated"

	if lib.Passages()[0].Title == "mutated" {
		t.Fatalf("expected Passages to return a copy")
	}
}
