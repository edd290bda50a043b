package domain

import "strings"

type Category string

const (
	CategoryPhilosophy Category = "philosophy"
	CategoryScience    Category = "science"
	CategoryHistory    Category = "history"
	CategoryPsychology Category = "psychology"
	CategoryLiterature Category = "literature"
	CategoryPoetry     Category = "poetry"
	CategoryEconomics  Category = "economics"
	CategoryNature     Category = "nature"
)

// Categories lists every topic in display order.
var Categories = []Category{ //nolint:gochecknoglobals // Fixed enumeration.
	CategoryPhilosophy,
	CategoryScience,
	CategoryHistory,
	CategoryPsychology,
	CategoryLiterature,
	CategoryPoetry,
	CategoryEconomics,
	CategoryNature,
}

// ParseCategory maps a stored or user-supplied name to a Category. Unknown
// names fall back to literature so that old cache entries keep decoding.
func ParseCategory(name string) Category {
	c, ok := LookupCategory(name)
	if !ok {
		return CategoryLiterature
	}

	return c
}

func LookupCategory(name string) (Category, bool) {
	normalized := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range Categories {
		if c == normalized {
			return c, true
		}
	}

	return "", false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type QuizQuestion struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
}

type Passage struct {
	ID          string         `json:"id"`
	Category    Category       `json:"category"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	Body        string         `json:"body"`
	ReadMinutes int            `json:"readMinutes"`
	Difficulty  Difficulty     `json:"difficulty"`
	Questions   []QuizQuestion `json:"questions"`
	Source      string         `json:"source"`
}

type FeedItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Quote     string   `json:"quote"`
	Excerpt   string   `json:"excerpt"`
	Body      string   `json:"body"`
	Category  Category `json:"category"`
	Source    string   `json:"source"`
	URL       string   `json:"url,omitempty"`
	LikeSeed  uint32   `json:"likeSeed"`
	ShareText string   `json:"shareText"`
}

type Person struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

type RemoteBook struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	Authors       []Person          `json:"authors"`
	Subjects      []string          `json:"subjects"`
	Bookshelves   []string          `json:"bookshelves"`
	Formats       map[string]string `json:"formats"`
	DownloadCount int               `json:"download_count"`
}

// AuthorNames returns author names joined for attribution lines.
func (b RemoteBook) AuthorNames() string {
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			names = append(names, name)
		}
	}

	return strings.Join(names, "; ")
}
