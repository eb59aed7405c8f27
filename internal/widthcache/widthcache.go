// Package widthcache caches text advance widths for one font.
//
// The cache does not know the font. Its owner resets it whenever the font
// changes; entries never outlive the font they were measured with.
package widthcache

// DefaultLimit is the soft limit used when New gets a non-positive value.
const DefaultLimit = 512

// Cache maps strings to measured widths with a soft limit.
// When the limit is exceeded, the least recently used quarter is evicted.
//
// Cache is not safe for concurrent use.
type Cache struct {
	entries   map[string]*entry
	softLimit int
	tick      int64 // monotonic access counter
	resets    int
}

type entry struct {
	width float64
	atime int64
}

// New creates an empty cache holding about softLimit strings.
func New(softLimit int) *Cache {
	if softLimit <= 0 {
		softLimit = DefaultLimit
	}
	return &Cache{
		entries:   make(map[string]*entry),
		softLimit: softLimit,
	}
}

// Get returns the cached width of s.
func (c *Cache) Get(s string) (float64, bool) {
	e, ok := c.entries[s]
	if !ok {
		return 0, false
	}
	c.tick++
	e.atime = c.tick
	return e.width, true
}

// Measure returns the cached width of s, calling measure on a miss.
func (c *Cache) Measure(s string, measure func(string) float64) float64 {
	if w, ok := c.Get(s); ok {
		return w
	}
	w := measure(s)
	c.tick++
	c.entries[s] = &entry{width: w, atime: c.tick}
	if len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return w
}

// Reset drops every entry. It is all or nothing: there is no per-string
// invalidation.
func (c *Cache) Reset() {
	c.entries = make(map[string]*entry)
	c.tick = 0
	c.resets++
}

// Len returns the number of cached strings.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Limit returns the soft limit.
func (c *Cache) Limit() int {
	return c.softLimit
}

// Resets returns how many times Reset was called.
func (c *Cache) Resets() int {
	return c.resets
}

// evictOldest removes entries until the cache is at 3/4 of the soft limit.
func (c *Cache) evictOldest() {
	target := c.softLimit * 3 / 4
	if target < 1 {
		target = 1
	}
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   string
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}

	// Selection sort is enough for the batch sizes involved.
	for i := 0; i < toEvict && i < len(all); i++ {
		oldest := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[oldest].atime {
				oldest = j
			}
		}
		all[i], all[oldest] = all[oldest], all[i]
		delete(c.entries, all[i].key)
	}
}
