package library

// collection is an identifier-keyed map that remembers insertion order.
//
// Name-based reference resolution and export rendering both depend on a
// deterministic iteration order, so the plain map is paired with an order
// slice. Overwriting an existing id keeps its original slot.
type collection[T any] struct {
	items map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

// Put inserts or overwrites the value for id.
func (c *collection[T]) Put(id string, value T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = value
}

// PutIfAbsent inserts value only when id is not yet present and reports
// whether an insert happened.
func (c *collection[T]) PutIfAbsent(id string, value T) bool {
	if _, ok := c.items[id]; ok {
		return false
	}
	c.Put(id, value)
	return true
}

// Get returns the value for id.
func (c *collection[T]) Get(id string) (T, bool) {
	value, ok := c.items[id]
	return value, ok
}

// Has reports whether id is present.
func (c *collection[T]) Has(id string) bool {
	_, ok := c.items[id]
	return ok
}

// Len returns the number of stored values.
func (c *collection[T]) Len() int {
	return len(c.items)
}

// All returns the values in insertion order.
func (c *collection[T]) All() []T {
	values := make([]T, 0, len(c.order))
	for _, id := range c.order {
		values = append(values, c.items[id])
	}
	return values
}

// Find returns the first value in insertion order satisfying pred.
func (c *collection[T]) Find(pred func(T) bool) (T, bool) {
	for _, id := range c.order {
		if pred(c.items[id]) {
			return c.items[id], true
		}
	}
	var zero T
	return zero, false
}
