// Package orderedset provides OrderedSet, a container that is both a set and
// an indexable sequence.
//
// Members are unique and membership is answered from a hash index in O(1),
// while iteration, positional access and encoding follow insertion order.
// Set algebra (union, intersection, subtraction, symmetric difference) keeps
// the order of the receiver first and appends new members from the other
// operand in that operand's order.
//
// An OrderedSet is not safe for concurrent use. Copies are made with Clone,
// which shares storage until either side is mutated.
package orderedset
