package orderedset

import (
	"hash/maphash"
	"slices"

	"github.com/rdeusser/orderedset/set"
)

// Union returns a new set with the items of s followed by the items of other
// that s lacks, in other's order.
func (s *OrderedSet[T]) Union(other *OrderedSet[T]) *OrderedSet[T] {
	result := s.Clone()
	result.FormUnion(other)
	return result
}

// FormUnion appends the items of other that s lacks, in other's order.
func (s *OrderedSet[T]) FormUnion(other *OrderedSet[T]) {
	for _, v := range other.seq() {
		s.Insert(v)
	}
}

// Intersection returns a new set with the items of s that are also in
// other, in s's order.
func (s *OrderedSet[T]) Intersection(other *OrderedSet[T]) *OrderedSet[T] {
	result := s.Clone()
	result.FormIntersection(other)
	return result
}

// FormIntersection removes the items of s that are not in other.
func (s *OrderedSet[T]) FormIntersection(other *OrderedSet[T]) {
	s.retain(s.index().Intersect(other.index()), nil)
}

// Subtracting returns a new set with the items of s that are not in other,
// in s's order.
func (s *OrderedSet[T]) Subtracting(other *OrderedSet[T]) *OrderedSet[T] {
	result := s.Clone()
	result.Subtract(other)
	return result
}

// Subtract removes the items of other from s.
func (s *OrderedSet[T]) Subtract(other *OrderedSet[T]) {
	s.retain(s.index().Difference(other.index()), nil)
}

// SymmetricDifference returns a new set with the items that are in exactly
// one of s and other: first those of s in s's order, then those of other in
// other's order.
func (s *OrderedSet[T]) SymmetricDifference(other *OrderedSet[T]) *OrderedSet[T] {
	result := s.Clone()
	result.FormSymmetricDifference(other)
	return result
}

// FormSymmetricDifference removes the items s shares with other and appends
// the items of other that s lacks.
func (s *OrderedSet[T]) FormSymmetricDifference(other *OrderedSet[T]) {
	var added []T
	for _, v := range other.seq() {
		if !s.Contains(v) {
			added = append(added, v)
		}
	}

	s.retain(s.index().SymmetricDifference(other.index()), added)
}

// Filter returns a new set with the items for which keep returns true, in
// order.
func (s *OrderedSet[T]) Filter(keep func(T) bool) *OrderedSet[T] {
	result := &OrderedSet[T]{}
	for _, v := range s.seq() {
		if keep(v) {
			result.Insert(v)
		}
	}
	return result
}

// IsSubset determines if every item in s is in other.
func (s *OrderedSet[T]) IsSubset(other *OrderedSet[T]) bool {
	return s.index().IsSubSet(other.index())
}

// IsStrictSubset determines if s is a subset of other and other has at least
// one item s lacks.
func (s *OrderedSet[T]) IsStrictSubset(other *OrderedSet[T]) bool {
	return s.index().IsStrictSubSet(other.index())
}

// IsSuperset determines if every item in other is in s.
func (s *OrderedSet[T]) IsSuperset(other *OrderedSet[T]) bool {
	return s.index().IsSuperSet(other.index())
}

// IsStrictSuperset determines if s is a superset of other and s has at least
// one item other lacks.
func (s *OrderedSet[T]) IsStrictSuperset(other *OrderedSet[T]) bool {
	return s.index().IsStrictSuperSet(other.index())
}

// IsDisjoint determines if s and other have no items in common.
func (s *OrderedSet[T]) IsDisjoint(other *OrderedSet[T]) bool {
	return s.index().IsDisjoint(other.index())
}

// Equal determines if the two sets hold the same items in the same order.
//
// Note: unlike a mathematical set, order matters, so [3 2 5] and [2 3 5] are
// not equal.
func (s *OrderedSet[T]) Equal(other *OrderedSet[T]) bool {
	return slices.Equal(s.seq(), other.seq())
}

// Hash returns a hash of the items in order. Sets that are Equal hash to the
// same value for the same seed.
func (s *OrderedSet[T]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	seq := s.seq()
	for _, v := range seq {
		maphash.WriteComparable(&h, v)
	}
	maphash.WriteComparable(&h, len(seq))

	return h.Sum64()
}

// retain filters s down to the items in survivors, keeping their order, and
// appends tail. survivors must be exactly the members of the result, and it
// becomes the new index. Both are computed before s's storage is touched, so
// other may share storage with s or be s itself.
func (s *OrderedSet[T]) retain(survivors *set.Set[T], tail []T) {
	if len(tail) == 0 && survivors.Length() == s.Len() {
		return
	}

	b := s.mutable()
	b.seq = slices.DeleteFunc(b.seq, func(v T) bool {
		return !survivors.Has(v)
	})
	b.seq = append(b.seq, tail...)
	b.index = *survivors
}
