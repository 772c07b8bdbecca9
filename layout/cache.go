package layout

import (
	"container/list"
	"fmt"

	"github.com/wfouche/tamboui-sub004/geometry"
)

const defaultCacheSize = 256

// cacheKey identifies a Split call by its structural inputs; Constraint and
// geometry.Rect are plain comparable-by-value structs, so this is cheap to
// build and compare.
type cacheKey string

func keyFor(area geometry.Rect, l Layout) cacheKey {
	return cacheKey(fmt.Sprintf("%+v|%+v", area, l))
}

// Cache memoizes Split results: repeated re-layout of an unchanged
// subtree (common across consecutive frames) skips the simplex solve
// entirely. Bounded LRU so long-running programs that churn through many
// distinct areas don't grow the cache unbounded.
type Cache struct {
	capacity int
	ll       *list.List
	index    map[cacheKey]*list.Element
}

type cacheEntry struct {
	key   cacheKey
	rects []geometry.Rect
}

// NewCache returns a Cache holding at most capacity entries. A
// non-positive capacity uses defaultCacheSize.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = defaultCacheSize
	}
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[cacheKey]*list.Element),
	}
}

// Split behaves like the package-level Split, but serves repeated
// (area, Layout) pairs from cache.
func (c *Cache) Split(area geometry.Rect, l Layout) ([]geometry.Rect, error) {
	key := keyFor(area, l)
	if el, ok := c.index[key]; ok {
		c.ll.MoveToFront(el)
		return el.Value.(*cacheEntry).rects, nil
	}

	rects, err := Split(area, l)
	if err != nil {
		return nil, err
	}

	el := c.ll.PushFront(&cacheEntry{key: key, rects: rects})
	c.index[key] = el
	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.index, oldest.Value.(*cacheEntry).key)
		}
	}
	return rects, nil
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int { return c.ll.Len() }
