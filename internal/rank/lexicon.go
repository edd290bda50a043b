package rank

import "freeread/internal/domain"

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	impactLexicon = wordSet(
		"truth", "true", "courage", "love", "fear", "death", "life", "lives",
		"freedom", "free", "power", "wisdom", "wise", "soul", "heart", "mind",
		"never", "always", "every", "nothing", "everything", "must", "secret",
		"greatest", "great", "happiness", "happy", "suffering", "pain", "hope",
		"beauty", "beautiful", "strength", "change", "time", "world", "nature",
		"virtue", "character", "habit", "habits", "choose", "choice", "remember",
		"forget", "alone", "lost", "discover", "imagine", "believe", "doubt",
		"difficult", "simple", "enough", "ourselves", "yourself", "himself",
		"grief", "joy", "anger", "patience", "attention", "silence",
	)

	categoryLexicons = map[domain.Category]map[string]struct{}{
		domain.CategoryPhilosophy: wordSet(
			"reason", "virtue", "ethics", "moral", "good", "evil", "justice",
			"philosopher", "philosophy", "stoic", "duty", "existence", "meaning",
		),
		domain.CategoryScience: wordSet(
			"experiment", "theory", "evidence", "observe", "observation", "light",
			"energy", "atoms", "universe", "stars", "measure", "law", "discovery",
		),
		domain.CategoryHistory: wordSet(
			"empire", "war", "king", "revolution", "century", "ancient", "nation",
			"battle", "history", "people", "republic", "conquest", "age",
		),
		domain.CategoryPsychology: wordSet(
			"habit", "habits", "attention", "memory", "emotion", "emotions",
			"instinct", "behavior", "behaviour", "conscious", "unconscious",
			"feeling", "feelings", "desire",
		),
		domain.CategoryLiterature: wordSet(
			"story", "stories", "novel", "reader", "words", "character", "book",
			"books", "tale", "author", "voice", "page", "imagination",
		),
		domain.CategoryPoetry: wordSet(
			"song", "verse", "rhyme", "moon", "sea", "dream", "dreams", "rose",
			"night", "sorrow", "sweet", "heaven", "wind",
		),
		domain.CategoryEconomics: wordSet(
			"wealth", "labour", "labor", "trade", "market", "price", "capital",
			"money", "value", "profit", "industry", "wages", "exchange",
		),
		domain.CategoryNature: wordSet(
			"forest", "river", "mountain", "trees", "tree", "birds", "earth",
			"wild", "wilderness", "seasons", "spring", "winter", "animals",
		),
	}
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	return set
}
