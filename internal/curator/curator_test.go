package curator

import (
	"context"
	"fmt"
	"freeread/internal/books"
	"freeread/internal/domain"
	"freeread/internal/kvstore"
	"freeread/internal/pool"
	"freeread/internal/session"
	"log/slog"
	"testing"
)

type stubFetcher struct {
	stories books.Stories
	calls   int
}

func (f *stubFetcher) FetchStories(_ context.Context) books.Stories {
	f.calls++

	return f.stories
}

func feedItems(prefix string, n int) []domain.FeedItem {
	items := make([]domain.FeedItem, n)
	for i := range items {
		items[i] = domain.FeedItem{
			ID:       fmt.Sprintf("%s-%d", prefix, i),
			Category: domain.CategoryLiterature,
		}
	}

	return items
}

func newCurator(stories books.Stories, local []domain.FeedItem) (*Curator, *session.Session) {
	sess := session.New(context.Background(), local, kvstore.NewMemory(), session.Options{Seed: 7}, slog.Default())

	return New(&stubFetcher{stories: stories}, sess, local, slog.Default()), sess
}

func TestRefreshReplacesPoolWithEnoughRemote(t *testing.T) {
	local := feedItems("local", 10)
	c, sess := newCurator(books.Stories{Items: feedItems("remote", 30), Origin: books.OriginRemote}, local)

	got := c.Refresh(context.Background())
	if got.Origin != books.OriginRemote || got.Count != 30 {
		t.Fatalf("unexpected result: %+v", got)
	}

	if n := sess.ActiveCount(); n != 30 {
		t.Fatalf("expected 30 active items, got %d", n)
	}

	for _, item := range sess.NextBatch(30) {
		if item.ID[:6] != "remote" {
			t.Fatalf("unexpected local item %q after replacement", item.ID)
		}
	}
}

func TestRefreshPadsPartialRemote(t *testing.T) {
	local := feedItems("local", 10)
	c, sess := newCurator(books.Stories{Items: feedItems("remote", 5), Origin: books.OriginCache}, local)

	got := c.Refresh(context.Background())
	if got.Count != 15 {
		t.Fatalf("expected remote padded with local items, got %+v", got)
	}

	if n := sess.ActiveCount(); n != 15 {
		t.Fatalf("expected 15 active items, got %d", n)
	}
}

func TestRefreshLocalOriginKeepsLocalPool(t *testing.T) {
	local := feedItems("local", 10)
	c, sess := newCurator(books.Stories{Items: local, Origin: books.OriginLocal}, local)

	got := c.Refresh(context.Background())
	if got.Origin != books.OriginLocal || got.Count != len(local) {
		t.Fatalf("unexpected result: %+v", got)
	}

	if n := sess.ActiveCount(); n != len(local) {
		t.Fatalf("expected local pool, got %d active items", n)
	}
}

func TestRefreshWithoutStoriesKeepsPool(t *testing.T) {
	local := feedItems("local", 10)
	c, sess := newCurator(books.Stories{Origin: books.OriginLocal}, local)

	if got := c.Refresh(context.Background()); got.Count != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}

	if n := sess.ActiveCount(); n != len(local) {
		t.Fatalf("expected pool to be kept, got %d active items", n)
	}
}

func TestRefreshCapsPool(t *testing.T) {
	remote := feedItems("remote", pool.MaxPoolItems+20)
	c, _ := newCurator(books.Stories{Items: remote, Origin: books.OriginRemote}, nil)

	if got := c.Refresh(context.Background()); got.Count != pool.MaxPoolItems {
		t.Fatalf("expected pool capped at %d, got %d", pool.MaxPoolItems, got.Count)
	}
}

type cancelingFetcher struct {
	cancel  context.CancelFunc
	stories books.Stories
}

func (f *cancelingFetcher) FetchStories(_ context.Context) books.Stories {
	f.cancel()

	return f.stories
}

func TestRefreshCanceledKeepsPool(t *testing.T) {
	local := feedItems("local", 1)
	sess := session.New(context.Background(), local, kvstore.NewMemory(), session.Options{Seed: 7}, slog.Default())
	sess.SetPool(feedItems("remote", 30))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := &cancelingFetcher{
		cancel:  cancel,
		stories: books.Stories{Items: local, Origin: books.OriginLocal},
	}

	got := New(fetcher, sess, local, slog.Default()).Refresh(ctx)
	if got.Count != 0 {
		t.Fatalf("expected canceled refresh to report no stories, got %+v", got)
	}

	if n := sess.ActiveCount(); n != 30 {
		t.Fatalf("expected the 30-item pool to be kept, got %d active items", n)
	}
}
