package store

// entity constrains collection members to store-managed models: anything
// embedding model.Base.
type entity[T any] interface {
	*T
	GetID() int64
	SetID(id int64)
}

// Collection is an insertion-ordered set of entities with a monotonic id
// counter. Ids start at 1, are unique per collection and are never reused,
// even across deletes and clears.
type Collection[T any, P entity[T]] struct {
	items  []T
	nextID int64
}

// Insert assigns the next id, appends the entity and returns the stored copy.
func (c *Collection[T, P]) Insert(item T) T {
	if c.nextID == 0 {
		c.nextID = 1
	}

	P(&item).SetID(c.nextID)
	c.nextID++

	c.items = append(c.items, item)

	return item
}

// Get returns the entity with the given id.
func (c *Collection[T, P]) Get(id int64) (T, bool) {
	for i := range c.items {
		if P(&c.items[i]).GetID() == id {
			return c.items[i], true
		}
	}

	var zero T

	return zero, false
}

// Update applies a partial mutation to the entity with the given id. The
// entity's id is not touched by apply; callers patch fields only.
func (c *Collection[T, P]) Update(id int64, apply func(P)) (T, bool) {
	for i := range c.items {
		if P(&c.items[i]).GetID() == id {
			apply(P(&c.items[i]))

			return c.items[i], true
		}
	}

	var zero T

	return zero, false
}

// Delete removes the entity with the given id, keeping insertion order.
func (c *Collection[T, P]) Delete(id int64) bool {
	for i := range c.items {
		if P(&c.items[i]).GetID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)

			return true
		}
	}

	return false
}

// DeleteWhere removes every entity matching the predicate and returns the
// number removed.
func (c *Collection[T, P]) DeleteWhere(match func(T) bool) int {
	kept := c.items[:0]
	removed := 0

	for i := range c.items {
		if match(c.items[i]) {
			removed++

			continue
		}

		kept = append(kept, c.items[i])
	}

	c.items = kept

	return removed
}

// Find returns the first entity matching the predicate, in insertion order.
func (c *Collection[T, P]) Find(match func(T) bool) (T, bool) {
	for i := range c.items {
		if match(c.items[i]) {
			return c.items[i], true
		}
	}

	var zero T

	return zero, false
}

// Items returns the collection in insertion order. The slice header is a
// copy; entity values are shared until the store snapshots them.
func (c *Collection[T, P]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)

	return out
}

func (c *Collection[T, P]) Len() int {
	return len(c.items)
}

// NextID returns the id the next insert would be assigned.
func (c *Collection[T, P]) NextID() int64 {
	if c.nextID == 0 {
		return 1
	}

	return c.nextID
}

// Reset empties the collection. The id counter is kept so later inserts
// continue from the prior high-water mark.
func (c *Collection[T, P]) Reset() {
	c.items = nil
}

// load replaces the collection contents and counter from a persisted
// document. A counter below the stored high-water mark is corrected so ids
// stay unique.
func (c *Collection[T, P]) load(items []T, nextID int64) {
	c.items = items
	c.nextID = nextID

	for i := range c.items {
		if id := P(&c.items[i]).GetID(); id >= c.nextID {
			c.nextID = id + 1
		}
	}
}
