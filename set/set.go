package set

// Set is an unordered hash set. It is the membership index behind
// orderedset.OrderedSet and is not safe for concurrent use.
//
// The zero value is an empty set ready to use.
type Set[T comparable] struct {
	m map[T]struct{}
}

// Ensure Set satisfies set.Interface at compile-time.
var _ Interface[string] = (*Set[string])(nil)

// New returns a set initialized with the provided items.
func New[T comparable](items ...T) *Set[T] {
	s := WithCapacity[T](len(items))

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// WithCapacity returns an empty set with room for n items.
func WithCapacity[T comparable](n int) *Set[T] {
	return &Set[T]{m: make(map[T]struct{}, n)}
}

// Add an item to the set. Reports whether the item was not present before.
func (s *Set[T]) Add(item T) bool {
	if s.m == nil {
		s.m = make(map[T]struct{})
	}

	before := len(s.m)
	s.m[item] = struct{}{}

	return before != len(s.m)
}

// Remove an item from the set. Reports whether the item was present.
func (s *Set[T]) Remove(item T) bool {
	before := len(s.m)
	delete(s.m, item)

	return before != len(s.m)
}

// Contains determines whether the provided items are in the set.
func (s *Set[T]) Contains(items ...T) bool {
	for _, item := range items {
		if !s.Has(item) {
			return false
		}
	}

	return true
}

// Has reports whether item is in the set.
func (s *Set[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

// Length returns the number of items in the set.
func (s *Set[T]) Length() int {
	return len(s.m)
}

// ForEach calls fn for every item until fn returns false. The order is
// unspecified.
func (s *Set[T]) ForEach(fn func(T) bool) {
	for item := range s.m {
		if !fn(item) {
			return
		}
	}
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	c := WithCapacity[T](len(s.m))

	for item := range s.m {
		c.m[item] = struct{}{}
	}

	return c
}

// IsSuperSet determines if every item in the provided set is in this set.
func (s *Set[T]) IsSuperSet(other Interface[T]) bool {
	if other.Length() > s.Length() {
		return false
	}

	return isContainedIn[T](other, s)
}

// IsSubSet determines if every item in this set is in the provided set.
func (s *Set[T]) IsSubSet(other Interface[T]) bool {
	if s.Length() > other.Length() {
		return false
	}

	return isContainedIn[T](s, other)
}

// IsStrictSuperSet is IsSuperSet with the extra requirement that this set
// has at least one item the other does not.
func (s *Set[T]) IsStrictSuperSet(other Interface[T]) bool {
	return s.Length() > other.Length() && s.IsSuperSet(other)
}

// IsStrictSubSet is IsSubSet with the extra requirement that the other set
// has at least one item this set does not.
func (s *Set[T]) IsStrictSubSet(other Interface[T]) bool {
	return s.Length() < other.Length() && s.IsSubSet(other)
}

// IsDisjoint determines if the two sets have no items in common.
func (s *Set[T]) IsDisjoint(other Interface[T]) bool {
	// Walk the smaller side.
	small, big := Interface[T](s), other
	if other.Length() < s.Length() {
		small, big = other, s
	}

	disjoint := true

	small.ForEach(func(item T) bool {
		if big.Contains(item) {
			disjoint = false
		}
		return disjoint
	})

	return disjoint
}

// Intersect returns a new set containing only the items that exist in both
// sets.
func (s *Set[T]) Intersect(other Interface[T]) *Set[T] {
	result := New[T]()

	// To eliminate looping over items of both sets, we can go over the
	// smallest set.
	small, big := Interface[T](s), other
	if other.Length() < s.Length() {
		small, big = other, s
	}

	small.ForEach(func(item T) bool {
		if big.Contains(item) {
			result.Add(item)
		}
		return true
	})

	return result
}

// Difference returns a new set with items contained in this set that are not
// present in the provided set.
func (s *Set[T]) Difference(other Interface[T]) *Set[T] {
	result := New[T]()

	for item := range s.m {
		if !other.Contains(item) {
			result.Add(item)
		}
	}

	return result
}

// SymmetricDifference returns a new set with all items which are in either set,
// but not both.
func (s *Set[T]) SymmetricDifference(other Interface[T]) *Set[T] {
	result := s.Difference(other)

	other.ForEach(func(item T) bool {
		if !s.Has(item) {
			result.Add(item)
		}
		return true
	})

	return result
}

func isContainedIn[T comparable](s, other Interface[T]) bool {
	contained := true

	s.ForEach(func(item T) bool {
		if !other.Contains(item) {
			contained = false
		}
		return contained
	})

	return contained
}
