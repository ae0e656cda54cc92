package orderedset

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/rdeusser/orderedset/set"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// OrderedSet is a set that remembers insertion order and supports random
// access by position.
//
// The zero value is an empty set ready to use. A non-empty OrderedSet must
// not be copied by value and then mutated; use Clone instead.
type OrderedSet[T comparable] struct {
	addr *OrderedSet[T] // of receiver, to detect copies by value
	b    *backing[T]
}

// Ensure OrderedSet satisfies orderedset.Interface at compile-time.
var _ Interface[string] = (*OrderedSet[string])(nil)

// backing holds both views of the members. It is shared between clones and
// copied by the first clone that mutates it while refs > 1.
type backing[T comparable] struct {
	seq   []T
	index set.Set[T]
	refs  int
}

func (b *backing[T]) clone() *backing[T] {
	return &backing[T]{
		seq:   slices.Clone(b.seq),
		index: *b.index.Clone(),
		refs:  1,
	}
}

// New returns a set holding items in order. Later duplicates are dropped and
// the first occurrence keeps its position.
func New[T comparable](items ...T) *OrderedSet[T] {
	return FromSlice(items)
}

// FromSlice is New for an existing slice. The slice is not retained.
func FromSlice[T comparable](items []T) *OrderedSet[T] {
	seq, index := dedupe(items)
	s := &OrderedSet[T]{b: &backing[T]{seq: seq, index: *index, refs: 1}}
	s.copyCheck()
	return s
}

// Collect returns a set holding the values of seq in the order they are
// produced, dropping repeats.
func Collect[T comparable](seq iter.Seq[T]) *OrderedSet[T] {
	s := &OrderedSet[T]{}
	for v := range seq {
		s.Insert(v)
	}
	return s
}

// Clone returns an independent copy of s. The storage is shared until one of
// the two sets is mutated.
func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	if s.b == nil {
		return &OrderedSet[T]{}
	}
	s.b.refs++
	clone := &OrderedSet[T]{b: s.b}
	clone.copyCheck()
	return clone
}

// Len returns the number of items in the set.
func (s *OrderedSet[T]) Len() int {
	return len(s.seq())
}

// IsEmpty reports whether the set has no items.
func (s *OrderedSet[T]) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the item at position i.
func (s *OrderedSet[T]) At(i int) (T, error) {
	if err := s.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return s.b.seq[i], nil
}

// SetAt replaces the item at position i with v.
//
// If v is already a member at another position, the sequence is
// deduplicated afterwards keeping the earliest occurrence of every item. The
// set then shrinks by one, and the write at i is discarded when v already
// sat at an earlier position.
func (s *OrderedSet[T]) SetAt(i int, v T) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}

	b := s.mutable()
	b.index.Remove(b.seq[i])
	collides := b.index.Has(v)
	b.seq[i] = v
	b.index.Add(v)

	if collides {
		seq, index := dedupe(b.seq)
		b.seq, b.index = seq, *index
	}

	return nil
}

// RemoveAt removes and returns the item at position i. Later items shift
// down by one position.
func (s *OrderedSet[T]) RemoveAt(i int) (T, error) {
	if err := s.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	b := s.mutable()
	v := b.seq[i]
	b.seq = slices.Delete(b.seq, i, i+1)
	b.index.Remove(v)

	return v, nil
}

// IndexOf returns the position of v, or -1 if v is not a member.
func (s *OrderedSet[T]) IndexOf(v T) int {
	if !s.Contains(v) {
		return -1
	}
	return slices.Index(s.b.seq, v)
}

// First returns the oldest item.
func (s *OrderedSet[T]) First() (T, bool) {
	seq := s.seq()
	if len(seq) == 0 {
		var zero T
		return zero, false
	}
	return seq[0], true
}

// Last returns the newest item.
func (s *OrderedSet[T]) Last() (T, bool) {
	seq := s.seq()
	if len(seq) == 0 {
		var zero T
		return zero, false
	}
	return seq[len(seq)-1], true
}

// Contains reports whether v is a member.
func (s *OrderedSet[T]) Contains(v T) bool {
	return s.b != nil && s.b.index.Has(v)
}

// ContainsAll reports whether every one of items is a member.
func (s *OrderedSet[T]) ContainsAll(items ...T) bool {
	return s.index().Contains(items...)
}

// Insert appends v unless it is already a member. It reports whether v was
// added and returns the member equal to v after the call.
func (s *OrderedSet[T]) Insert(v T) (inserted bool, member T) {
	if s.Contains(v) {
		return false, v
	}

	b := s.mutable()
	b.seq = append(b.seq, v)
	b.index.Add(v)

	return true, v
}

// Update replaces the member equal to v in place and returns the replaced
// value. When there is no such member v is appended and ok is false.
func (s *OrderedSet[T]) Update(v T) (old T, ok bool) {
	if !s.Contains(v) {
		s.Insert(v)
		return old, false
	}

	b := s.mutable()
	i := slices.Index(b.seq, v)
	old = b.seq[i]
	b.seq[i] = v
	b.index.Add(v)

	return old, true
}

// Remove deletes v and returns the removed value. Later items shift down by
// one position.
func (s *OrderedSet[T]) Remove(v T) (T, bool) {
	if !s.Contains(v) {
		var zero T
		return zero, false
	}

	b := s.mutable()
	i := slices.Index(b.seq, v)
	removed := b.seq[i]
	b.seq = slices.Delete(b.seq, i, i+1)
	b.index.Remove(v)

	return removed, true
}

// Clear removes all items from the set.
func (s *OrderedSet[T]) Clear() {
	s.release()
}

// All iterates over positions and items in order. The set must not be
// mutated while iterating.
func (s *OrderedSet[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.seq() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates over items in order. The set must not be mutated while
// iterating.
func (s *OrderedSet[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.seq() {
			if !yield(v) {
				return
			}
		}
	}
}

// ForEach calls fn for every item in order until fn returns false.
func (s *OrderedSet[T]) ForEach(fn func(T) bool) {
	for _, v := range s.seq() {
		if !fn(v) {
			return
		}
	}
}

// ToSlice returns the items in order. The slice is a copy.
func (s *OrderedSet[T]) ToSlice() []T {
	seq := s.seq()
	out := make([]T, len(seq))
	copy(out, seq)
	return out
}

// String provides a string representation of the set.
func (s *OrderedSet[T]) String() string {
	return fmt.Sprintf("OrderedSet%v", s.seq())
}

func (s *OrderedSet[T]) seq() []T {
	if s.b == nil {
		return nil
	}
	return s.b.seq
}

// index returns the membership index for reading.
func (s *OrderedSet[T]) index() *set.Set[T] {
	if s.b == nil {
		return &set.Set[T]{}
	}
	return &s.b.index
}

// mutable returns storage owned by s alone, copying it when it is shared
// with a clone.
func (s *OrderedSet[T]) mutable() *backing[T] {
	s.copyCheck()

	switch {
	case s.b == nil:
		s.b = &backing[T]{refs: 1}
	case s.b.refs > 1:
		s.b.refs--
		s.b = s.b.clone()
	}
	return s.b
}

// replace makes s hold the storage of other, which must not be used again.
func (s *OrderedSet[T]) replace(other *OrderedSet[T]) {
	s.copyCheck()
	s.release()
	s.b = other.b
	other.b = nil
}

func (s *OrderedSet[T]) release() {
	if s.b != nil {
		s.copyCheck()
		s.b.refs--
		s.b = nil
	}
}

func (s *OrderedSet[T]) checkIndex(i int) error {
	if n := s.Len(); i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}
	return nil
}

// copyCheck panics when s is a by-value copy of another set. Such a copy
// shares storage without holding a reference, so writing through it would
// change the original.
func (s *OrderedSet[T]) copyCheck() {
	if s.addr == nil {
		s.addr = s
	} else if s.addr != s {
		panic("orderedset: illegal use of non-zero OrderedSet copied by value")
	}
}
