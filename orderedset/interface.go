package orderedset

import "iter"

type Interface[T comparable] interface {
	// Returns the number of items in the set.
	Len() int

	// Returns the item at the given position.
	At(int) (T, error)

	// Replaces the item at the given position.
	SetAt(int, T) error

	// Returns whether the provided item is in the set.
	Contains(T) bool

	// Adds an item to the end of the set unless it is already present.
	Insert(T) (bool, T)

	// Replaces an equal item in place or appends a new one.
	Update(T) (T, bool)

	// Removes an item from the set.
	Remove(T) (T, bool)

	// Removes all items from the set.
	Clear()

	// Iterates over items in order.
	Values() iter.Seq[T]

	// Returns the set as a slice, in order.
	ToSlice() []T

	// Returns a new set with the items of both sets.
	Union(*OrderedSet[T]) *OrderedSet[T]

	// Returns a new set containing only the items that exist in both sets.
	Intersection(*OrderedSet[T]) *OrderedSet[T]

	// Returns a new set with items contained in this set that are not present
	// in the provided set.
	Subtracting(*OrderedSet[T]) *OrderedSet[T]

	// Returns a new set with all items which are in either set, but not both.
	SymmetricDifference(*OrderedSet[T]) *OrderedSet[T]

	// Determines if every item in this set is in the provided set.
	IsSubset(*OrderedSet[T]) bool

	// Determines if every item in the provided set is in this set.
	IsSuperset(*OrderedSet[T]) bool

	// Determines if the two sets have no items in common.
	IsDisjoint(*OrderedSet[T]) bool

	// Determines if the two sets hold the same items in the same order.
	Equal(*OrderedSet[T]) bool
}
