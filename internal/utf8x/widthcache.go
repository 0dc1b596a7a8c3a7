package utf8x

// WidthCache is an open-addressed hash table mapping grapheme-cluster bytes
// to a measured terminal column width. Keyed by an FNV-1a 32-bit hash of the
// grapheme bytes; resizes at 75% load factor, doubling from a minimum of 8
// slots. Each entry owns a copy of its grapheme bytes.
//
// The cache only ever stores widths the terminal reported via a measure
// pass (see Measure in measure.go) — it is never pre-seeded from a Unicode
// width table, so a lookup miss always means "never measured", not "unknown
// to Unicode".
type WidthCache struct {
	slots []widthSlot
	count int
}

type widthSlot struct {
	used    bool
	graph   []byte
	width   int
	tombst  bool // removed marker, unused by current API but kept for open addressing correctness
}

const minWidthCacheSlots = 8

// NewWidthCache returns an empty cache with the minimum slot count.
func NewWidthCache() *WidthCache {
	return &WidthCache{slots: make([]widthSlot, minWidthCacheSlots)}
}

// fnv1a32 hashes b with 32-bit FNV-1a.
func fnv1a32(b []byte) uint32 {
	const (
		offset = 2166136261
		prime  = 16777619
	)
	h := uint32(offset)
	for _, c := range b {
		h ^= uint32(c)
		h *= prime
	}
	return h
}

// Lookup returns the cached width for grapheme g and whether it was found.
func (c *WidthCache) Lookup(g []byte) (int, bool) {
	if len(c.slots) == 0 {
		return 0, false
	}
	idx := c.find(g)
	if c.slots[idx].used && !c.slots[idx].tombst {
		return c.slots[idx].width, true
	}
	return 0, false
}

// Store records the measured width for grapheme g, growing the table first
// if the load factor would exceed 75%.
func (c *WidthCache) Store(g []byte, width int) {
	if (c.count+1)*4 > len(c.slots)*3 {
		c.grow()
	}
	idx := c.find(g)
	if c.slots[idx].used {
		c.slots[idx].width = width
		return
	}
	own := make([]byte, len(g))
	copy(own, g)
	c.slots[idx] = widthSlot{used: true, graph: own, width: width}
	c.count++
}

// find performs linear probing from the hash bucket, returning the slot
// index that either already matches g or is the first empty slot.
func (c *WidthCache) find(g []byte) int {
	n := len(c.slots)
	idx := int(fnv1a32(g)) % n
	if idx < 0 {
		idx += n
	}
	for {
		s := &c.slots[idx]
		if !s.used {
			return idx
		}
		if !s.tombst && bytesEqual(s.graph, g) {
			return idx
		}
		idx = (idx + 1) % n
	}
}

func (c *WidthCache) grow() {
	old := c.slots
	c.slots = make([]widthSlot, len(old)*2)
	c.count = 0
	for _, s := range old {
		if s.used && !s.tombst {
			c.Store(s.graph, s.width)
		}
	}
}

// Clear empties the cache back to its minimum size, releasing every owned
// grapheme byte slice.
func (c *WidthCache) Clear() {
	c.slots = make([]widthSlot, minWidthCacheSlots)
	c.count = 0
}

// Len reports the number of distinct graphemes currently cached.
func (c *WidthCache) Len() int { return c.count }

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
