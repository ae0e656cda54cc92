package set

// Interface is the read side of a membership set. Ordered containers that
// keep their own sequence satisfy it too, so predicates can be computed
// against either.
type Interface[T comparable] interface {
	// Returns whether the provided items are all in the set.
	Contains(...T) bool

	// Returns the number of items in the set.
	Length() int

	// Iterates over items and executes the provided function against each
	// item until it returns false.
	ForEach(func(T) bool)
}
