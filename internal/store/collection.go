package store

import "sync"

// collection is an insertion-ordered arena with an id index. Each collection
// carries its own lock so one store operation is atomic per collection.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
	id    func(T) string
	clone func(T) T
}

func newCollection[T any](id func(T) string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{
		index: make(map[string]int),
		id:    id,
		clone: clone,
	}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(c.items[i]), true
}

// insert assigns an id with newID, retrying on the unlikely collision, lets
// stamp fill in server-side fields, and appends the item.
func (c *collection[T]) insert(item T, newID func() string, stamp func(*T, string)) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := newID()
	for {
		if _, taken := c.index[id]; !taken {
			break
		}
		id = newID()
	}
	stamp(&item, id)
	item = c.clone(item)
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
	return c.clone(item)
}

// put appends item under its existing id, replacing an entry with that id.
func (c *collection[T]) put(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item = c.clone(item)
	id := c.id(item)
	if i, ok := c.index[id]; ok {
		c.items[i] = item
		return
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
}

func (c *collection[T]) update(id string, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	item := c.clone(c.items[i])
	fn(&item)
	c.items[i] = item
	return c.clone(item), true
}

// scan calls fn for each item in insertion order under the read lock. fn
// must not retain the item.
func (c *collection[T]) scan(fn func(T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		fn(item)
	}
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
