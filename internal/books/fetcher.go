package books

import (
	"context"
	"errors"
	"fmt"
	"freeread/internal/domain"
	"freeread/internal/kvstore"
	"freeread/internal/pool"
	"freeread/internal/quoter"
	"freeread/internal/rank"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type Origin string

const (
	OriginRemote Origin = "remote"
	OriginCache  Origin = "cache"
	OriginLocal  Origin = "local"
)

var errNoCandidates = errors.New("no candidate books")

// Stories is the outcome of a fetch round.
type Stories struct {
	Items  []domain.FeedItem
	Origin Origin
}

type Options struct {
	MaxPages           int
	MaxBooks           int
	MaxConcurrentBooks int
	SectionsPerBook    int
}

func DefaultOptions() Options {
	return Options{
		MaxPages:           3,
		MaxBooks:           12,
		MaxConcurrentBooks: 4,
		SectionsPerBook:    3,
	}
}

type Fetcher struct {
	client *Client
	kv     kvstore.Store
	picker *quoter.Picker
	local  []domain.FeedItem
	texts  *bookTextCache
	opts   Options
	log    *slog.Logger
}

func NewFetcher(
	client *Client,
	kv kvstore.Store,
	picker *quoter.Picker,
	local []domain.FeedItem,
	opts Options,
	log *slog.Logger,
) *Fetcher {
	defaults := DefaultOptions()
	if opts.MaxPages <= 0 {
		opts.MaxPages = defaults.MaxPages
	}
	if opts.MaxBooks <= 0 {
		opts.MaxBooks = defaults.MaxBooks
	}
	if opts.MaxConcurrentBooks <= 0 {
		opts.MaxConcurrentBooks = defaults.MaxConcurrentBooks
	}
	if opts.SectionsPerBook <= 0 {
		opts.SectionsPerBook = defaults.SectionsPerBook
	}

	return &Fetcher{
		client: client,
		kv:     kv,
		picker: picker,
		local:  local,
		texts:  newBookTextCache(bookTextCacheMaxBytes),
		opts:   opts,
		log:    log,
	}
}

// FetchStories fetches and ranks remote stories. It never fails: on any
// remote failure it returns the cached stories, or the local pool when the
// cache is empty.
func (f *Fetcher) FetchStories(ctx context.Context) Stories {
	start := time.Now()

	items, err := f.fetchRemote(ctx)
	if err == nil && len(items) > 0 {
		f.saveCachedStories(ctx, items)

		f.log.InfoContext(ctx, "Remote stories are fetched",
			"storyCount", len(items),
			"durationSeconds", time.Since(start).Seconds())

		return Stories{Items: items, Origin: OriginRemote}
	}

	if cached := f.loadCachedStories(ctx); len(cached) > 0 {
		f.log.WarnContext(ctx, "Failed to fetch remote stories so cache will be used",
			"error", err,
			"storyCount", len(cached))

		return Stories{Items: cached, Origin: OriginCache}
	}

	f.log.WarnContext(ctx, "Failed to fetch remote stories so local pool will be used",
		"error", err,
		"storyCount", len(f.local))

	return Stories{Items: append([]domain.FeedItem(nil), f.local...), Origin: OriginLocal}
}

func (f *Fetcher) fetchRemote(ctx context.Context) ([]domain.FeedItem, error) {
	if f.client == nil {
		return nil, errors.New("remote client is disabled")
	}

	listed, listErr := f.client.ListBooks(ctx, f.opts.MaxPages)
	if listErr != nil {
		f.log.WarnContext(ctx, "Failed to list all book pages",
			"error", listErr,
			"bookCount", len(listed))
	}

	candidates := FilterCandidates(listed, f.opts.MaxBooks)
	if len(candidates) == 0 {
		return nil, errors.Join(errNoCandidates, listErr)
	}

	results := make([][]pool.Scored, len(candidates))

	var g errgroup.Group
	g.SetLimit(f.opts.MaxConcurrentBooks)

	for i, book := range candidates {
		g.Go(func() error {
			stories, err := f.bookStories(ctx, book)
			if err != nil {
				f.log.WarnContext(ctx, "Failed to extract book stories",
					"error", err,
					"bookID", book.ID,
					"title", book.Title)

				return nil
			}

			results[i] = stories

			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch books: %w", err)
	}

	var scored []pool.Scored
	for _, stories := range results {
		scored = append(scored, stories...)
	}

	return pool.Diversify(pool.Dedup(scored)), nil
}

func (f *Fetcher) bookStories(ctx context.Context, book domain.RemoteBook) ([]pool.Scored, error) {
	text, err := f.bookText(ctx, book)
	if err != nil {
		return nil, err
	}

	category := InferCategory(book)
	sections := ExtractSections(text, category, f.opts.SectionsPerBook)
	if len(sections) == 0 {
		return nil, fmt.Errorf("no sections (bookID = %d)", book.ID)
	}

	source := strings.TrimSpace(book.Title)
	if authors := book.AuthorNames(); authors != "" {
		source = fmt.Sprintf("%s by %s", source, authors)
	}
	ebookURL := EbookURL(book.ID)

	scored := make([]pool.Scored, 0, len(sections))
	for _, section := range sections {
		quote := f.picker.Pick(ctx, quoter.Input{
			Text:      section.Text,
			Title:     book.Title,
			SourceURL: ebookURL,
		}, category)

		item, ok := pool.NewItem(pool.ItemInput{
			ID:       fmt.Sprintf("gutenberg-%d-%d", book.ID, section.Index),
			Title:    book.Title,
			Quote:    quote,
			Body:     section.Text,
			Category: category,
			Source:   source,
			URL:      ebookURL,
		}, rank.DefaultExcerptChars)
		if !ok {
			continue
		}

		scored = append(scored, pool.Scored{Item: item, Score: rank.Impact(section.Text, category)})
	}

	return scored, nil
}

func (f *Fetcher) bookText(ctx context.Context, book domain.RemoteBook) (string, error) {
	now := time.Now().UTC()
	if text, ok := f.texts.get(book.ID, now); ok {
		return text, nil
	}

	text, err := f.client.FetchText(ctx, book)
	if err != nil {
		return "", fmt.Errorf("fetch text: %w", err)
	}

	f.texts.set(book.ID, text, now.Add(bookTextCacheTTL), now)

	return text, nil
}
