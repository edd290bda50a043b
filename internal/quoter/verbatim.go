package quoter

import (
	"context"
	"freeread/internal/domain"
	"freeread/internal/rank"
	"log/slog"
	"strings"
)

// Picker prefers a Quoter's answer and falls back to the heuristic quote
// when no Quoter is configured or its answer is unusable.
type Picker struct {
	quoter Quoter
	log    *slog.Logger
}

func NewPicker(q Quoter, log *slog.Logger) *Picker {
	return &Picker{quoter: q, log: log}
}

func (p *Picker) Pick(ctx context.Context, input Input, category domain.Category) string {
	fallback := rank.Quote(input.Text, category)
	if p == nil || p.quoter == nil {
		return fallback
	}

	quote, err := p.quoter.Quote(ctx, input)
	if err != nil {
		p.log.WarnContext(ctx, "Failed to pick quote so fallback will be used",
			"error", err,
			"title", input.Title,
			"textLen", len(input.Text))

		return fallback
	}

	if !isVerbatim(quote, input.Text) {
		p.log.WarnContext(ctx, "Picked quote is not verbatim so fallback will be used",
			"title", input.Title,
			"quoteLen", len(quote))

		return fallback
	}

	quote = rank.Terminate(quote)
	if n := rank.CharLen(quote); n < rank.MinQuoteChars || n > rank.MaxQuoteChars {
		return fallback
	}

	return quote
}

func isVerbatim(quote, text string) bool {
	quote = strings.Join(strings.Fields(quote), " ")
	if quote == "" {
		return false
	}

	return strings.Contains(strings.Join(strings.Fields(text), " "), quote)
}
