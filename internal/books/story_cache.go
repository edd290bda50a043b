package books

import (
	"context"
	"encoding/json"
	"fmt"
	"freeread/internal/domain"
	"freeread/internal/kvstore"
	"freeread/internal/pool"
	"freeread/internal/rank"
)

// cachedStory is the persisted form of a remote FeedItem. Category is stored
// by name so that unknown names from newer versions still decode.
type cachedStory struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Quote    string `json:"quote"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Source   string `json:"source"`
	URL      string `json:"url,omitempty"`
}

func encodeStories(items []domain.FeedItem) ([]byte, error) {
	records := make([]cachedStory, 0, len(items))
	for _, item := range items {
		records = append(records, cachedStory{
			ID:       item.ID,
			Title:    item.Title,
			Quote:    item.Quote,
			Body:     item.Body,
			Category: string(item.Category),
			Source:   item.Source,
			URL:      item.URL,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode stories: %w", err)
	}

	return data, nil
}

// decodeStories rebuilds feed items from a cache blob. Malformed blobs and
// incomplete records yield nothing.
func decodeStories(data []byte) []domain.FeedItem {
	var records []cachedStory
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}

	items := make([]domain.FeedItem, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			continue
		}

		item, ok := pool.NewItem(pool.ItemInput{
			ID:       r.ID,
			Title:    r.Title,
			Quote:    r.Quote,
			Body:     r.Body,
			Category: domain.ParseCategory(r.Category),
			Source:   r.Source,
			URL:      r.URL,
		}, rank.DefaultExcerptChars)
		if !ok {
			continue
		}

		items = append(items, item)
	}

	return items
}

func (f *Fetcher) loadCachedStories(ctx context.Context) []domain.FeedItem {
	data, ok, err := f.kv.Get(ctx, kvstore.KeyCachedStories)
	if err != nil {
		f.log.WarnContext(ctx, "Failed to read cached stories",
			"error", err,
			"key", kvstore.KeyCachedStories)

		return nil
	}
	if !ok {
		return nil
	}

	items := decodeStories(data)
	if len(items) == 0 {
		f.log.WarnContext(ctx, "Cached stories are empty or malformed so they will be dropped",
			"key", kvstore.KeyCachedStories,
			"blobLen", len(data))

		if err = f.kv.Delete(ctx, kvstore.KeyCachedStories); err != nil {
			f.log.WarnContext(ctx, "Failed to drop cached stories",
				"error", err,
				"key", kvstore.KeyCachedStories)
		}
	}

	return items
}

func (f *Fetcher) saveCachedStories(ctx context.Context, items []domain.FeedItem) {
	data, err := encodeStories(items)
	if err == nil {
		err = f.kv.Set(ctx, kvstore.KeyCachedStories, data)
	}

	if err != nil {
		f.log.WarnContext(ctx, "Failed to write cached stories",
			"error", err,
			"key", kvstore.KeyCachedStories,
			"storyCount", len(items))
	}
}
