package orderedset

import "github.com/rdeusser/orderedset/set"

// RemovingDuplicates returns the first occurrence of every item in items,
// keeping their relative order. items is left untouched.
func RemovingDuplicates[T comparable](items []T) []T {
	out, _ := dedupe(items)
	return out
}

// dedupe also returns the set of seen items, which is exactly the
// membership index for the returned slice.
func dedupe[T comparable](items []T) ([]T, *set.Set[T]) {
	seen := set.WithCapacity[T](len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		if seen.Add(item) {
			out = append(out, item)
		}
	}

	return out, seen
}
