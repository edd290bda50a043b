package session

import (
	"context"
	"errors"
	"fmt"
	"freeread/internal/domain"
	"freeread/internal/kvstore"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPool(n int) []domain.FeedItem {
	items := make([]domain.FeedItem, n)
	for i := range items {
		id := fmt.Sprintf("item-%02d", i)
		items[i] = domain.FeedItem{
			ID:        id,
			Quote:     "Quote " + id,
			Category:  domain.Categories[i%len(domain.Categories)],
			ShareText: "Share " + id,
		}
	}

	return items
}

func newSession(t *testing.T, items []domain.FeedItem, kv kvstore.Store) *Session {
	t.Helper()

	if kv == nil {
		kv = kvstore.NewMemory()
	}

	return New(context.Background(), items, kv, Options{Seed: 42}, slog.Default())
}

func TestNextBatchNeverExhausts(t *testing.T) {
	s := newSession(t, seedPool(5), nil)

	for range 20 {
		batch := s.AppendBatch()
		require.Len(t, batch, DefaultBatchSize)
	}

	assert.Len(t, s.Rendered(), 20*DefaultBatchSize)
}

func TestNextBatchEmptyPool(t *testing.T) {
	s := newSession(t, nil, nil)

	assert.Nil(t, s.AppendBatch())
	assert.Empty(t, s.Rendered())
	assert.Nil(t, s.Observe(context.Background(), 0))
}

func TestThreeBatchesCycleThroughPool(t *testing.T) {
	pool := seedPool(50)

	for seed := uint64(1); seed <= 500; seed++ {
		s := New(context.Background(), pool, kvstore.NewMemory(), Options{Seed: seed}, slog.Default())

		for range 3 {
			s.AppendBatch()
		}

		rendered := s.Rendered()
		require.Len(t, rendered, 72)

		firstCycle := make(map[string]struct{})
		for _, item := range rendered[:len(pool)] {
			firstCycle[item.ID] = struct{}{}
		}
		require.Len(t, firstCycle, len(pool), "seed %d: first cycle must show every item once", seed)

		secondCycle := make(map[string]struct{})
		for _, item := range rendered[len(pool):] {
			secondCycle[item.ID] = struct{}{}
		}
		require.Len(t, secondCycle, len(rendered)-len(pool), "seed %d: second cycle must not repeat items", seed)

		for i := 1; i < len(rendered); i++ {
			require.NotEqual(t, rendered[i-1].ID, rendered[i].ID, "seed %d: item repeated at %d", seed, i)
		}
	}
}

func TestSmallPoolNeverRepeatsAdjacent(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		s := New(context.Background(), seedPool(3), kvstore.NewMemory(), Options{Seed: seed}, slog.Default())

		var rendered []domain.FeedItem
		for range 4 {
			rendered = append(rendered, s.NextBatch(7)...)
		}

		for i := 1; i < len(rendered); i++ {
			require.NotEqual(t, rendered[i-1].ID, rendered[i].ID, "seed %d: item repeated at %d", seed, i)
		}
	}
}

func TestSameSeedSameOrder(t *testing.T) {
	pool := seedPool(30)

	first := newSession(t, pool, nil).NextBatch(60)
	second := newSession(t, pool, nil).NextBatch(60)

	assert.Equal(t, first, second)
}

func TestObservePrefetches(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, seedPool(50), nil)
	first := s.AppendBatch()

	assert.Nil(t, s.Observe(ctx, DefaultBatchSize-DefaultPrefetchThreshold-1))
	assert.True(t, s.IsRead(first[DefaultBatchSize-DefaultPrefetchThreshold-1].ID))

	appended := s.Observe(ctx, DefaultBatchSize-DefaultPrefetchThreshold)
	assert.Len(t, appended, DefaultBatchSize)
	assert.Len(t, s.Rendered(), 2*DefaultBatchSize)

	assert.Nil(t, s.Observe(ctx, 1000))
	assert.Nil(t, s.Observe(ctx, -1))
}

func TestRebuildFiltersCategories(t *testing.T) {
	s := newSession(t, seedPool(50), nil)
	s.AppendBatch()

	batch := s.Rebuild([]domain.Category{domain.CategoryPoetry, domain.CategoryNature})
	require.NotEmpty(t, batch)

	for _, item := range batch {
		assert.Contains(t, []domain.Category{domain.CategoryPoetry, domain.CategoryNature}, item.Category)
	}

	assert.Len(t, s.Rendered(), len(batch), "rebuild must reset the rendered list")
	assert.Equal(t, []domain.Category{domain.CategoryPoetry, domain.CategoryNature}, s.Categories())
}

func TestRebuildFallsBackToUnfiltered(t *testing.T) {
	pool := seedPool(50)
	for i := range pool {
		if pool[i].Category == domain.CategoryEconomics {
			pool[i].Category = domain.CategoryHistory
		}
	}

	s := newSession(t, pool, nil)

	s.Rebuild([]domain.Category{domain.CategoryEconomics})
	assert.Equal(t, len(pool), s.ActiveCount())

	s.Rebuild(nil)
	assert.Equal(t, len(pool), s.ActiveCount())
}

func TestActivePoolIsCapped(t *testing.T) {
	pool := seedPool(300)
	s := newSession(t, pool, nil)

	require.Equal(t, MaxActive, s.ActiveCount())

	allowed := make(map[string]struct{}, MaxActive)
	for _, item := range pool[:MaxActive] {
		allowed[item.ID] = struct{}{}
	}

	for _, item := range s.NextBatch(MaxActive) {
		_, ok := allowed[item.ID]
		assert.True(t, ok, "item %q is beyond the cap", item.ID)
	}
}

func TestSetPoolKeepsRendered(t *testing.T) {
	s := newSession(t, seedPool(10), nil)
	s.AppendBatch()

	fresh := []domain.FeedItem{{ID: "fresh", Category: domain.CategoryScience, ShareText: "fresh share"}}
	s.SetPool(fresh)

	assert.Len(t, s.Rendered(), DefaultBatchSize)
	assert.Equal(t, 1, s.ActiveCount())

	for _, item := range s.NextBatch(3) {
		assert.Equal(t, "fresh", item.ID)
	}

	text, ok := s.ShareText("item-00")
	assert.True(t, ok, "rendered items stay shareable after a pool swap")
	assert.Equal(t, "Share item-00", text)
}

func TestShareText(t *testing.T) {
	s := newSession(t, seedPool(3), nil)

	text, ok := s.ShareText("item-01")
	assert.True(t, ok)
	assert.Equal(t, "Share item-01", text)

	_, ok = s.ShareText("missing")
	assert.False(t, ok)
}

func TestToggleLikePersists(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	s := newSession(t, seedPool(3), kv)

	liked, err := s.ToggleLike(ctx, "item-02")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = s.ToggleLike(ctx, "item-00")
	require.NoError(t, err)
	assert.True(t, liked)

	data, ok, err := kv.Get(ctx, kvstore.KeyLikedItemIDs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["item-00","item-02"]`, string(data))

	reloaded := newSession(t, seedPool(3), kv)
	assert.True(t, reloaded.IsLiked("item-02"))
	assert.Equal(t, []string{"item-00", "item-02"}, reloaded.Liked())

	liked, err = reloaded.ToggleLike(ctx, "item-02")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.False(t, reloaded.IsLiked("item-02"))
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("disk on fire")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("disk on fire")
}

func TestLikedSetDegrades(t *testing.T) {
	ctx := context.Background()

	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(ctx, kvstore.KeyLikedItemIDs, []byte("{not json")))
	assert.Empty(t, newSession(t, seedPool(3), kv).Liked())

	s := newSession(t, seedPool(3), failingStore{})
	assert.Empty(t, s.Liked())

	liked, err := s.ToggleLike(ctx, "item-01")
	require.Error(t, err)
	assert.True(t, liked)
	assert.True(t, s.IsLiked("item-01"))
}

func TestConcurrentUse(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, seedPool(50), nil)
	s.AppendBatch()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			for j := range 20 {
				switch j % 4 {
				case 0:
					s.NextBatch(5)
				case 1:
					s.Observe(ctx, j)
				case 2:
					_, _ = s.ToggleLike(ctx, fmt.Sprintf("item-%02d", i))
				default:
					_ = s.Rendered()
				}
			}
		})
	}
	wg.Wait()

	assert.NotEmpty(t, s.Rendered())
}
