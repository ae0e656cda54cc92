package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAdd(t *testing.T) {
	s := New("foo", "bar")
	assert.Equal(t, 2, s.Length())
	assert.True(t, s.Add("baz"))
	assert.Equal(t, 3, s.Length())
	assert.False(t, s.Add("baz"))
	assert.Equal(t, 3, s.Length())
}

func TestZeroValue(t *testing.T) {
	var s Set[int]
	assert.False(t, s.Has(1))
	assert.False(t, s.Remove(1))
	assert.True(t, s.Add(1))
	assert.True(t, s.Has(1))
}

func TestRemove(t *testing.T) {
	s := New("foo", "bar", "baz")
	assert.Equal(t, 3, s.Length())
	assert.True(t, s.Remove("baz"))
	assert.Equal(t, 2, s.Length())
	assert.False(t, s.Remove("baz"))
}

func TestContains(t *testing.T) {
	s := New("foo", "bar", "baz")
	assert.True(t, s.Contains("foo"))
	assert.True(t, s.Contains("foo", "bar"))
	assert.True(t, s.Contains("foo", "bar", "baz"))
	assert.False(t, s.Contains("foo", "qux"))
}

func TestClone(t *testing.T) {
	s := New(1, 2, 3)
	c := s.Clone()
	c.Add(4)
	s.Remove(1)
	assert.Equal(t, New(2, 3), s)
	assert.Equal(t, New(1, 2, 3, 4), c)
}

func TestForEachStops(t *testing.T) {
	s := New(1, 2, 3, 4)
	calls := 0
	s.ForEach(func(int) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestIsSuperSet(t *testing.T) {
	s := New("foo", "bar", "baz")
	o := New("foo")
	assert.True(t, s.IsSuperSet(o))
	assert.True(t, s.IsStrictSuperSet(o))
	assert.True(t, s.IsSuperSet(s))
	assert.False(t, s.IsStrictSuperSet(s))
	assert.False(t, o.IsSuperSet(s))
}

func TestIsSubSet(t *testing.T) {
	s := New("foo")
	o := New("foo", "bar", "baz")
	assert.True(t, s.IsSubSet(o))
	assert.True(t, s.IsStrictSubSet(o))
	assert.True(t, o.IsSubSet(o))
	assert.False(t, o.IsStrictSubSet(o))
	assert.False(t, o.IsSubSet(s))
}

func TestIsDisjoint(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set[string]
		o        *Set[string]
		want     bool
	}{
		{
			"disjoint",
			New("foo", "bar"),
			New("baz", "qux", "quux"),
			true,
		},
		{
			"overlapping",
			New("foo", "bar", "baz"),
			New("baz"),
			false,
		},
		{
			"empty",
			New[string](),
			New("foo"),
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.IsDisjoint(tc.o))
			assert.Equal(t, tc.want, tc.o.IsDisjoint(tc.s))
		})
	}
}

func TestIntersect(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set[string]
		o        *Set[string]
		want     *Set[string]
	}{
		{
			"one item",
			New("foo"),
			New("foo", "bar", "baz"),
			New("foo"),
		},
		{
			"two items",
			New("foo", "bar", "baz"),
			New("foo", "bar", "qux"),
			New("foo", "bar"),
		},
		{
			"same items",
			New("foo", "bar", "baz"),
			New("foo", "bar", "baz"),
			New("foo", "bar", "baz"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Intersect(tc.o))
		})
	}
}

func TestDifference(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set[string]
		o        *Set[string]
		want     *Set[string]
	}{
		{
			"one item",
			New("foo", "bar", "baz"),
			New("foo", "bar", "qux"),
			New("baz"),
		},
		{
			"two items",
			New("foo", "bar", "baz", "qux", "quux"),
			New("foo", "bar", "baz"),
			New("qux", "quux"),
		},
		{
			"same items",
			New("foo", "bar", "baz"),
			New("foo", "bar", "baz"),
			New[string](),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Difference(tc.o))
		})
	}
}

func TestSymmetricDifference(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set[string]
		o        *Set[string]
		want     *Set[string]
	}{
		{
			"one item",
			New("foo", "bar", "baz"),
			New("foo", "bar", "baz", "qux"),
			New("qux"),
		},
		{
			"both sides",
			New("foo", "bar", "baz"),
			New("foo", "qux", "quux"),
			New("bar", "baz", "qux", "quux"),
		},
		{
			"same items",
			New("foo", "bar", "baz"),
			New("foo", "bar", "baz"),
			New[string](),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.SymmetricDifference(tc.o))
		})
	}
}
