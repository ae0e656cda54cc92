package safepool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type item struct {
	n int
}

func TestGetCreatesFreshValues(t *testing.T) {
	created := 0
	pool := New(func() *item {
		created++
		return &item{n: created}
	})

	a := pool.Get()
	b := pool.Get()

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, created)
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 2, b.n)
}

func TestPutAndGet(t *testing.T) {
	pool := New(func() *item { return &item{} })

	v := pool.Get()
	v.n = 7
	pool.Put(v)

	// sync.Pool may drop v at any time, so only check Get still works.
	assert.NotNil(t, pool.Get())
}
