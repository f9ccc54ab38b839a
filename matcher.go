package termpix

import "sync"

// Matcher maps arbitrary RGB colors to their nearest palette entry.
// Results are memoized: the first lookup for a color performs a linear
// scan over the palette, every later lookup is a map hit. The cache
// never evicts; the set of distinct colors in decoded images is small
// enough that unbounded growth is acceptable for a process lifetime.
//
// A Matcher is safe for concurrent use, which allows gallery thumbnails
// to share one matcher (and its warm cache) across goroutines.
type Matcher struct {
	palette Palette

	mu     sync.Mutex
	cache  map[RGB]PaletteEntry
	hits   int
	misses int
}

// NewMatcher creates a Matcher over the given palette. The palette must
// be non-empty and is not copied; callers must not mutate it afterwards.
func NewMatcher(palette Palette) *Matcher {
	return &Matcher{
		palette: palette,
		cache:   make(map[RGB]PaletteEntry),
	}
}

// Palette returns the palette the matcher resolves against.
func (m *Matcher) Palette() Palette {
	return m.palette
}

// Resolve returns the palette entry nearest to the given color by
// squared Euclidean distance in RGB space. Exact distance ties go to
// the entry with the lowest ANSI index. Resolve is a total function
// over the 24-bit color space and is deterministic: the same input
// always yields the same entry, within a run and across runs.
func (m *Matcher) Resolve(c RGB) PaletteEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.cache[c]; ok {
		m.hits++
		return entry
	}
	m.misses++

	best := m.palette[0]
	bestDist := c.distanceSq(best.Color)
	for _, entry := range m.palette[1:] {
		if d := c.distanceSq(entry.Color); d < bestDist {
			best = entry
			bestDist = d
		}
	}
	m.cache[c] = best
	return best
}

// CacheStats returns the cache hit/miss counters and the hit rate.
func (m *Matcher) CacheStats() (hits, misses int, hitRate float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := m.hits + m.misses
	if total == 0 {
		return 0, 0, 0
	}
	return m.hits, m.misses, float64(m.hits) / float64(total)
}
