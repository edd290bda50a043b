package pool

import (
	"cmp"
	"fmt"
	"freeread/internal/domain"
	"freeread/internal/library"
	"freeread/internal/rank"
	"slices"
	"strings"
)

const (
	// ScoreThreshold is the minimum impact a passage segment needs to be
	// featured on its own merit.
	ScoreThreshold = 0.35

	fallbackSegments      = 2
	maxSegmentsPerPassage = 3

	MinBodyChars = 120
	MaxBodyChars = 1600
)

// Scored pairs a feed item with the impact used to rank it.
type Scored struct {
	Item  domain.FeedItem
	Score float64
}

type Builder struct {
	segmentChars int
	excerptChars int
}

func NewBuilder() *Builder {
	return &Builder{
		segmentChars: rank.PassageSegmentChars,
		excerptChars: rank.DefaultExcerptChars,
	}
}

// Build turns the library into the local seed pool. The result only depends
// on its input.
func (b *Builder) Build(
	passages []domain.Passage,
	editorial []library.EditorialCard,
) []domain.FeedItem {
	var scored []Scored

	for _, card := range editorial {
		item, ok := NewItem(ItemInput{
			ID:       card.ID,
			Title:    card.Title,
			Quote:    card.Quote,
			Body:     card.Body,
			Category: card.Category,
			Source:   card.Source,
			URL:      card.URL,
		}, b.excerptChars)
		if !ok {
			continue
		}

		scored = append(scored, Scored{Item: item, Score: rank.Impact(item.Quote, card.Category)})
	}

	for _, p := range passages {
		scored = append(scored, b.fromPassage(p)...)
	}

	return Diversify(Dedup(scored))
}

type segmentCandidate struct {
	index int
	text  string
	score float64
}

func (b *Builder) fromPassage(p domain.Passage) []Scored {
	var candidates []segmentCandidate

	for i, segment := range rank.Segment(p.Body, b.segmentChars) {
		if n := rank.CharLen(segment); n < MinBodyChars || n > MaxBodyChars {
			continue
		}

		candidates = append(candidates, segmentCandidate{
			index: i,
			text:  segment,
			score: rank.Impact(segment, p.Category),
		})
	}

	kept := selectSegments(candidates)

	scored := make([]Scored, 0, len(kept))
	for _, c := range kept {
		item, ok := NewItem(ItemInput{
			ID:       fmt.Sprintf("passage-%s-%d", p.ID, c.index),
			Title:    p.Title,
			Body:     c.text,
			Category: p.Category,
			Source:   p.Source,
		}, b.excerptChars)
		if !ok {
			continue
		}

		scored = append(scored, Scored{Item: item, Score: c.score})
	}

	return scored
}

func selectSegments(candidates []segmentCandidate) []segmentCandidate {
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, func(a, b segmentCandidate) int {
		return cmp.Compare(b.score, a.score)
	})

	var kept []segmentCandidate
	for _, c := range ranked {
		if c.score >= ScoreThreshold {
			kept = append(kept, c)
		}
	}

	if len(kept) == 0 {
		kept = ranked[:min(fallbackSegments, len(ranked))]
	}

	kept = slices.Clone(kept[:min(maxSegmentsPerPassage, len(kept))])
	slices.SortFunc(kept, func(a, b segmentCandidate) int {
		return cmp.Compare(a.index, b.index)
	})

	return kept
}

type ItemInput struct {
	ID       string
	Title    string
	Quote    string
	Body     string
	Category domain.Category
	Source   string
	URL      string
}

// NewItem derives quote, excerpt, share text and like seed for a feed card.
// A supplied quote outside the quote bounds is replaced by one derived from
// the body. It reports false when the body is out of bounds or no quote
// within bounds can be derived.
func NewItem(in ItemInput, excerptChars int) (domain.FeedItem, bool) {
	body := strings.TrimSpace(in.Body)
	if n := rank.CharLen(body); n < MinBodyChars || n > MaxBodyChars {
		return domain.FeedItem{}, false
	}

	quote := strings.TrimSpace(in.Quote)
	if !quoteInBounds(quote) {
		quote = rank.Quote(body, in.Category)
	}
	if !quoteInBounds(quote) {
		return domain.FeedItem{}, false
	}

	excerpt := rank.Excerpt(body, excerptChars)
	source := strings.TrimSpace(in.Source)
	url := strings.TrimSpace(in.URL)

	return domain.FeedItem{
		ID:       in.ID,
		Title:    strings.TrimSpace(in.Title),
		Quote:    quote,
		Excerpt:  excerpt,
		Body:     body,
		Category: in.Category,
		Source:   source,
		URL:      url,
		LikeSeed: rank.Seed(in.ID),
		ShareText: rank.ShareText(rank.ShareInput{
			Quote:   quote,
			Excerpt: excerpt,
			Source:  source,
			URL:     url,
		}),
	}, true
}

func quoteInBounds(quote string) bool {
	n := rank.CharLen(quote)

	return n >= rank.MinQuoteChars && n <= rank.MaxQuoteChars
}
