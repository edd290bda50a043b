package books

import (
	"cmp"
	"freeread/internal/domain"
	"slices"
	"strings"
)

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	blockedTerms = []string{
		"juvenile", "children", "catalog", "dictionary", "encyclopedia",
		"index", "bibliography", "cookery", "cookbook", "periodicals",
		"magazine", "directory", "grammar", "handbook", "readers", "primer",
	}

	// categoryKeywords is checked in order; the first match wins.
	categoryKeywords = []struct {
		category domain.Category
		keywords []string
	}{
		{domain.CategoryPoetry, []string{"poetry", "poems", "verse", "sonnets", "ballads"}},
		{domain.CategoryPhilosophy, []string{"philosophy", "ethics", "stoic", "metaphysics", "moral"}},
		{domain.CategoryPsychology, []string{"psychology", "conduct of life", "emotions", "mind and body", "self-help"}},
		{domain.CategoryScience, []string{"science", "physics", "astronomy", "biology", "evolution", "chemistry", "mathematics"}},
		{domain.CategoryEconomics, []string{"economics", "political economy", "wealth", "commerce", "finance", "labor"}},
		{domain.CategoryHistory, []string{"history", "biography", "war", "civilization", "antiquities"}},
		{domain.CategoryNature, []string{"nature", "natural history", "animals", "birds", "botany", "mountains", "travel"}},
	}
)

// TextURL picks the best downloadable text format of a book, preferring
// UTF-8 plain text over other plain text over HTML. Zipped formats are
// skipped.
func TextURL(book domain.RemoteBook) (string, bool, bool) {
	mimeTypes := make([]string, 0, len(book.Formats))
	for mime := range book.Formats {
		mimeTypes = append(mimeTypes, mime)
	}
	slices.Sort(mimeTypes)

	var plain, utf8Plain, html string

	for _, mime := range mimeTypes {
		u := strings.TrimSpace(book.Formats[mime])
		if u == "" || strings.HasSuffix(strings.ToLower(u), ".zip") {
			continue
		}

		lower := strings.ToLower(mime)
		switch {
		case strings.HasPrefix(lower, "text/plain") && strings.Contains(lower, "utf-8"):
			if utf8Plain == "" {
				utf8Plain = u
			}
		case strings.HasPrefix(lower, "text/plain"):
			if plain == "" {
				plain = u
			}
		case strings.HasPrefix(lower, "text/html"):
			if html == "" {
				html = u
			}
		}
	}

	switch {
	case utf8Plain != "":
		return utf8Plain, false, true
	case plain != "":
		return plain, false, true
	case html != "":
		return html, true, true
	}

	return "", false, false
}

// FilterCandidates keeps books with a usable text format whose title and
// tags avoid the blocklist, deduplicated by id and ordered by popularity.
func FilterCandidates(books []domain.RemoteBook, maxBooks int) []domain.RemoteBook {
	seen := make(map[int]struct{}, len(books))
	candidates := make([]domain.RemoteBook, 0, len(books))

	for _, book := range books {
		if _, ok := seen[book.ID]; ok {
			continue
		}
		seen[book.ID] = struct{}{}

		if _, _, ok := TextURL(book); !ok {
			continue
		}

		if isBlocked(book) {
			continue
		}

		candidates = append(candidates, book)
	}

	slices.SortStableFunc(candidates, func(a, b domain.RemoteBook) int {
		if c := cmp.Compare(b.DownloadCount, a.DownloadCount); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return candidates[:min(len(candidates), max(maxBooks, 0))]
}

func isBlocked(book domain.RemoteBook) bool {
	fields := make([]string, 0, 1+len(book.Subjects)+len(book.Bookshelves))
	fields = append(fields, book.Title)
	fields = append(fields, book.Subjects...)
	fields = append(fields, book.Bookshelves...)

	for _, field := range fields {
		lower := strings.ToLower(field)
		for _, term := range blockedTerms {
			if strings.Contains(lower, term) {
				return true
			}
		}
	}

	return false
}

// InferCategory maps subject tags and bookshelves to a topic. Books without
// a match are literature.
func InferCategory(book domain.RemoteBook) domain.Category {
	tags := make([]string, 0, len(book.Subjects)+len(book.Bookshelves))
	for _, tag := range append(slices.Clone(book.Subjects), book.Bookshelves...) {
		tags = append(tags, strings.ToLower(tag))
	}

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			for _, tag := range tags {
				if strings.Contains(tag, keyword) {
					return entry.category
				}
			}
		}
	}

	return domain.CategoryLiterature
}
