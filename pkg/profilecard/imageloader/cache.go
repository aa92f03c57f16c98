package imageloader

const defaultMaxCacheSize = 32

// Cache is a small LRU keyed by string. Evicted values are handed to onEvict,
// which lets the SDL backend destroy textures as they fall out.
type Cache[V any] struct {
	values  map[string]V
	order   []string // tracks insertion order for LRU eviction
	maxSize int
	onEvict func(key string, value V)
}

func NewCache[V any](maxSize int, onEvict func(string, V)) *Cache[V] {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &Cache[V]{
		values:  make(map[string]V),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		onEvict: onEvict,
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	value, exists := c.values[key]
	if exists {
		c.moveToEnd(key)
	}
	return value, exists
}

func (c *Cache[V]) Set(key string, value V) {
	if old, exists := c.values[key]; exists {
		c.values[key] = value
		c.moveToEnd(key)
		if c.onEvict != nil {
			c.onEvict(key, old)
		}
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = value
	c.order = append(c.order, key)
}

func (c *Cache[V]) Len() int {
	return len(c.order)
}

func (c *Cache[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *Cache[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if value, exists := c.values[oldest]; exists {
		delete(c.values, oldest)
		if c.onEvict != nil {
			c.onEvict(oldest, value)
		}
	}
}

// Purge evicts everything.
func (c *Cache[V]) Purge() {
	if c.onEvict != nil {
		for key, value := range c.values {
			c.onEvict(key, value)
		}
	}
	c.values = make(map[string]V)
	c.order = c.order[:0]
}
