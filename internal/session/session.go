package session

import (
	"context"
	"encoding/json"
	"fmt"
	"freeread/internal/domain"
	"freeread/internal/kvstore"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
)

const (
	DefaultBatchSize         = 24
	DefaultPrefetchThreshold = 8
	MaxActive                = 180
)

type Options struct {
	BatchSize         int
	PrefetchThreshold int
	// Seed fixes the shuffle order. Zero picks a random seed.
	Seed uint64
}

// Session is an endless, shuffled feed over a pool of items. All state
// changes go through one mutex.
type Session struct {
	mu sync.Mutex

	master     []domain.FeedItem
	byID       map[string]domain.FeedItem
	categories []domain.Category
	active     []domain.FeedItem
	cursor     int
	rendered   []domain.FeedItem
	liked      map[string]struct{}
	read       map[string]struct{}
	rng        *rand.Rand

	kv   kvstore.Store
	opts Options
	log  *slog.Logger
}

// New creates a session over items and loads the liked set from kv.
func New(
	ctx context.Context,
	items []domain.FeedItem,
	kv kvstore.Store,
	opts Options,
	log *slog.Logger,
) *Session {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.PrefetchThreshold <= 0 {
		opts.PrefetchThreshold = DefaultPrefetchThreshold
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64() //nolint:gosec // Shuffle order is cosmetic.
	}

	s := &Session{
		liked: make(map[string]struct{}),
		read:  make(map[string]struct{}),
		rng:   rand.New(rand.NewPCG(seed, seed>>1|1)), //nolint:gosec // Shuffle order is cosmetic.
		kv:    kv,
		opts:  opts,
		log:   log,
	}

	s.loadLiked(ctx)
	s.setMasterLocked(items)
	s.rebuildLocked()

	return s
}

// AppendBatch draws one batch of BatchSize items onto the rendered list.
func (s *Session) AppendBatch() []domain.FeedItem {
	return s.NextBatch(s.opts.BatchSize)
}

// NextBatch draws n items (BatchSize when n <= 0) from the active pool,
// reshuffling whenever the pool is exhausted, and appends them to the
// rendered list. It returns nil only when the pool is empty.
func (s *Session) NextBatch(n int) []domain.FeedItem {
	if n <= 0 {
		n = s.opts.BatchSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.drawLocked(n)
}

// Rebuild filters the feed to categories, falling back to every category
// when the filter is empty or matches nothing. The rendered list is reset
// and the first batch of the new feed is returned.
func (s *Session) Rebuild(categories []domain.Category) []domain.FeedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = slices.Clone(categories)
	s.rebuildLocked()
	s.rendered = nil

	return s.drawLocked(s.opts.BatchSize)
}

// SetPool swaps the master pool and rebuilds the active pool with the
// current filter. Already rendered items stay rendered.
func (s *Session) SetPool(items []domain.FeedItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setMasterLocked(items)
	s.rebuildLocked()
}

// Observe records that the item at visibleIndex of the rendered list was
// shown. When visibleIndex is within PrefetchThreshold of the end, another
// batch is appended and returned.
func (s *Session) Observe(ctx context.Context, visibleIndex int) []domain.FeedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if visibleIndex < 0 || visibleIndex >= len(s.rendered) {
		s.log.DebugContext(ctx, "Ignoring observation outside rendered list",
			"visibleIndex", visibleIndex,
			"renderedCount", len(s.rendered))

		return nil
	}

	s.read[s.rendered[visibleIndex].ID] = struct{}{}

	if visibleIndex < len(s.rendered)-s.opts.PrefetchThreshold {
		return nil
	}

	return s.drawLocked(s.opts.BatchSize)
}

// Rendered returns a copy of the rendered list.
func (s *Session) Rendered() []domain.FeedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.rendered)
}

func (s *Session) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.categories)
}

func (s *Session) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.active)
}

func (s *Session) IsRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.read[id]

	return ok
}

// Item looks an item up in the master pool, then in the rendered list.
func (s *Session) Item(id string) (domain.FeedItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.itemLocked(id)
}

// ShareText returns the pre-rendered share text of an item.
func (s *Session) ShareText(id string) (string, bool) {
	item, ok := s.Item(id)
	if !ok {
		return "", false
	}

	return item.ShareText, true
}

func (s *Session) itemLocked(id string) (domain.FeedItem, bool) {
	if item, ok := s.byID[id]; ok {
		return item, true
	}

	for i := len(s.rendered) - 1; i >= 0; i-- {
		if s.rendered[i].ID == id {
			return s.rendered[i], true
		}
	}

	return domain.FeedItem{}, false
}

func (s *Session) setMasterLocked(items []domain.FeedItem) {
	s.master = slices.Clone(items)
	s.byID = make(map[string]domain.FeedItem, len(items))

	for _, item := range s.master {
		if _, ok := s.byID[item.ID]; !ok {
			s.byID[item.ID] = item
		}
	}
}

func (s *Session) rebuildLocked() {
	active := filterByCategories(s.master, s.categories)
	if len(active) == 0 {
		active = slices.Clone(s.master)
	}

	s.active = active[:min(len(active), MaxActive)]
	s.shuffleLocked()
	s.cursor = 0
}

func filterByCategories(items []domain.FeedItem, categories []domain.Category) []domain.FeedItem {
	if len(categories) == 0 {
		return nil
	}

	filtered := make([]domain.FeedItem, 0, len(items))
	for _, item := range items {
		if slices.Contains(categories, item.Category) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

func (s *Session) shuffleLocked() {
	s.rng.Shuffle(len(s.active), func(i, j int) {
		s.active[i], s.active[j] = s.active[j], s.active[i]
	})
}

func (s *Session) drawLocked(n int) []domain.FeedItem {
	if len(s.active) == 0 {
		return nil
	}

	batch := make([]domain.FeedItem, 0, n)
	for len(batch) < n {
		if s.cursor >= len(s.active) {
			s.reshuffleLocked(s.lastDrawnLocked(batch))
		}

		batch = append(batch, s.active[s.cursor])
		s.cursor++
	}

	s.rendered = append(s.rendered, batch...)

	return slices.Clone(batch)
}

// lastDrawnLocked returns the item shown right before the next draw.
func (s *Session) lastDrawnLocked(batch []domain.FeedItem) (domain.FeedItem, bool) {
	if len(batch) > 0 {
		return batch[len(batch)-1], true
	}

	if len(s.rendered) > 0 {
		return s.rendered[len(s.rendered)-1], true
	}

	return domain.FeedItem{}, false
}

// reshuffleLocked starts a new cycle. The last drawn item is kept away from
// the head of the new cycle so it is never shown twice in a row.
func (s *Session) reshuffleLocked(last domain.FeedItem, hasLast bool) {
	s.shuffleLocked()
	s.cursor = 0

	if !hasLast || len(s.active) < 2 {
		return
	}

	if s.active[0].ID == last.ID {
		end := len(s.active) - 1
		s.active[0], s.active[end] = s.active[end], s.active[0]
	}
}

func (s *Session) IsLiked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.liked[id]

	return ok
}

// Liked returns the liked item ids in sorted order.
func (s *Session) Liked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.likedIDsLocked()
}

// ToggleLike flips the like state of id and persists the liked set. The
// in-memory state changes even when persisting fails.
func (s *Session) ToggleLike(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, liked := s.liked[id]
	if liked {
		delete(s.liked, id)
	} else {
		s.liked[id] = struct{}{}
	}

	data, err := json.Marshal(s.likedIDsLocked())
	if err != nil {
		return !liked, fmt.Errorf("marshal liked ids: %w", err)
	}

	if err = s.kv.Set(ctx, kvstore.KeyLikedItemIDs, data); err != nil {
		return !liked, fmt.Errorf("set liked ids: %w", err)
	}

	return !liked, nil
}

func (s *Session) likedIDsLocked() []string {
	ids := make([]string, 0, len(s.liked))
	for id := range s.liked {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

func (s *Session) loadLiked(ctx context.Context) {
	data, ok, err := s.kv.Get(ctx, kvstore.KeyLikedItemIDs)
	if err != nil {
		s.log.WarnContext(ctx, "Failed to read liked ids so none will be used",
			"error", err,
			"key", kvstore.KeyLikedItemIDs)

		return
	}
	if !ok {
		return
	}

	var ids []string
	if err = json.Unmarshal(data, &ids); err != nil {
		s.log.WarnContext(ctx, "Failed to decode liked ids so none will be used",
			"error", err,
			"key", kvstore.KeyLikedItemIDs,
			"blobLen", len(data))

		return
	}

	for _, id := range ids {
		s.liked[id] = struct{}{}
	}
}
