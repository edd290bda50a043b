package quoter

import (
	"context"
)

// Input describes the section a quote is picked from.
type Input struct {
	// Text is the section body.
	Text string
	// Title is the book title, used as context only.
	Title string
	// SourceURL is optional metadata that helps the model reference the origin.
	SourceURL string
}

// Quoter picks the single most quotable sentence of a section, verbatim.
type Quoter interface {
	Quote(ctx context.Context, input Input) (string, error)
}
