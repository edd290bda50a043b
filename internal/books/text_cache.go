package books

import (
	"container/list"
	"sync"
	"time"
)

const (
	bookTextCacheMaxBytes = 64 << 20
	bookTextCacheTTL      = 24 * time.Hour
)

// bookTextCache keeps recently downloaded book bodies, bounded by their total
// size in bytes, so that scheduled refreshes do not download the same books
// again. Least recently used books are dropped first.
type bookTextCache struct {
	mu         sync.Mutex
	books      map[int]*list.Element
	recency    *list.List
	totalBytes int
	maxBytes   int
}

type cachedBookText struct {
	bookID    int
	text      string
	expiresAt time.Time
}

func newBookTextCache(maxBytes int) *bookTextCache {
	if maxBytes <= 0 {
		return nil
	}

	return &bookTextCache{
		books:    make(map[int]*list.Element),
		recency:  list.New(),
		maxBytes: maxBytes,
	}
}

func (c *bookTextCache) get(bookID int, now time.Time) (string, bool) {
	if c == nil {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.books[bookID]
	if !ok {
		return "", false
	}

	book := elem.Value.(*cachedBookText) //nolint:forcetypeassert // Only cachedBookText is stored.
	if now.After(book.expiresAt) {
		c.dropLocked(elem)

		return "", false
	}

	c.recency.MoveToFront(elem)

	return book.text, true
}

// set stores text for bookID. Texts larger than the whole budget are not
// cached.
func (c *bookTextCache) set(bookID int, text string, expiresAt, now time.Time) {
	if c == nil || text == "" || len(text) > c.maxBytes || !expiresAt.After(now) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.books[bookID]; ok {
		c.dropLocked(elem)
	}

	c.books[bookID] = c.recency.PushFront(&cachedBookText{
		bookID:    bookID,
		text:      text,
		expiresAt: expiresAt,
	})
	c.totalBytes += len(text)

	c.dropExpiredLocked(now)

	for c.totalBytes > c.maxBytes {
		c.dropLocked(c.recency.Back())
	}
}

func (c *bookTextCache) size() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.books), c.totalBytes
}

func (c *bookTextCache) dropExpiredLocked(now time.Time) {
	for elem := c.recency.Back(); elem != nil; {
		prev := elem.Prev()

		if now.After(elem.Value.(*cachedBookText).expiresAt) { //nolint:forcetypeassert // Only cachedBookText is stored.
			c.dropLocked(elem)
		}

		elem = prev
	}
}

func (c *bookTextCache) dropLocked(elem *list.Element) {
	book := elem.Value.(*cachedBookText) //nolint:forcetypeassert // Only cachedBookText is stored.

	delete(c.books, book.bookID)
	c.recency.Remove(elem)
	c.totalBytes -= len(book.text)
}
