package library

import (
	"freeread/internal/domain"
	"strings"
)

const wordsPerMinute = 200

// EditorialCard is a hand-picked feed card shipped with the app.
type EditorialCard struct {
	ID       string
	Title    string
	Quote    string
	Body     string
	Category domain.Category
	Source   string
	URL      string
}

type Library struct {
	passages  []domain.Passage
	byID      map[string]int
	editorial []EditorialCard
}

// New builds a library from passages, filling in read times.
func New(passages []domain.Passage, editorial []EditorialCard) *Library {
	l := &Library{
		passages:  make([]domain.Passage, len(passages)),
		byID:      make(map[string]int, len(passages)),
		editorial: append([]EditorialCard(nil), editorial...),
	}

	for i, p := range passages {
		if p.ReadMinutes <= 0 {
			p.ReadMinutes = EstimateReadMinutes(p.Body)
		}

		l.passages[i] = p
		l.byID[p.ID] = i
	}

	return l
}

// Default returns the library compiled into the binary.
func Default() *Library {
	return New(defaultPassages(), defaultEditorial())
}

func (l *Library) Passages() []domain.Passage {
	return append([]domain.Passage(nil), l.passages...)
}

func (l *Library) Passage(id string) (domain.Passage, bool) {
	i, ok := l.byID[strings.TrimSpace(id)]
	if !ok {
		return domain.Passage{}, false
	}

	return l.passages[i], true
}

func (l *Library) Editorial() []EditorialCard {
	return append([]EditorialCard(nil), l.editorial...)
}

func EstimateReadMinutes(body string) int {
	words := len(strings.Fields(body))

	return max(1, (words+wordsPerMinute-1)/wordsPerMinute)
}
