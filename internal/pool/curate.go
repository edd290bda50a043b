package pool

import (
	"cmp"
	"freeread/internal/domain"
	"slices"
	"strings"
	"unicode"
)

const (
	// MinRemoteItems is how many remote stories it takes to replace the local
	// pool entirely.
	MinRemoteItems = 24
	MaxPoolItems   = 240
)

// Dedup drops items whose id or quote fingerprint was already taken by a
// higher scored item. Survivors keep their input order.
func Dedup(scored []Scored) []domain.FeedItem {
	order := make([]int, len(scored))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(scored[b].Score, scored[a].Score)
	})

	seenIDs := make(map[string]struct{}, len(scored))
	seenQuotes := make(map[string]struct{}, len(scored))
	keep := make([]bool, len(scored))

	for _, i := range order {
		item := scored[i].Item
		fp := Fingerprint(item.Quote)

		if _, ok := seenIDs[item.ID]; ok {
			continue
		}
		if _, ok := seenQuotes[fp]; ok && fp != "" {
			continue
		}

		seenIDs[item.ID] = struct{}{}
		seenQuotes[fp] = struct{}{}
		keep[i] = true
	}

	items := make([]domain.FeedItem, 0, len(scored))
	for i, s := range scored {
		if keep[i] {
			items = append(items, s.Item)
		}
	}

	return items
}

// Fingerprint normalizes text to lowercase letters and digits.
func Fingerprint(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Diversify interleaves items round-robin across categories, visiting
// categories in order of first appearance.
func Diversify(items []domain.FeedItem) []domain.FeedItem {
	var categories []domain.Category
	queues := make(map[domain.Category][]domain.FeedItem)

	for _, item := range items {
		if _, ok := queues[item.Category]; !ok {
			categories = append(categories, item.Category)
		}
		queues[item.Category] = append(queues[item.Category], item)
	}

	result := make([]domain.FeedItem, 0, len(items))
	for len(result) < len(items) {
		for _, c := range categories {
			if q := queues[c]; len(q) > 0 {
				result = append(result, q[0])
				queues[c] = q[1:]
			}
		}
	}

	return result
}

// Merge combines remote stories with the local pool. With at least minRemote
// remote stories the remote list replaces the pool; otherwise it is padded
// with local items not already present, up to maxItems.
func Merge(remote, local []domain.FeedItem, minRemote, maxItems int) []domain.FeedItem {
	if len(remote) >= minRemote {
		return slices.Clone(remote[:min(len(remote), max(maxItems, minRemote))])
	}

	merged := make([]domain.FeedItem, 0, min(len(remote)+len(local), maxItems))
	seen := make(map[string]struct{}, len(remote)+len(local))

	for _, group := range [][]domain.FeedItem{remote, local} {
		for _, item := range group {
			if len(merged) >= maxItems {
				return merged
			}
			if _, ok := seen[item.ID]; ok {
				continue
			}

			seen[item.ID] = struct{}{}
			merged = append(merged, item)
		}
	}

	return merged
}
