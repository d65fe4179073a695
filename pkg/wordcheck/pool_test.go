package wordcheck

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	matches []Match
}

func (s *stubChecker) Check(string) ([]Match, error) {
	return s.matches, nil
}

func TestPoolLazyConstruction(t *testing.T) {
	t.Parallel()

	var built atomic.Int32
	pool := NewPool(4, func() Checker {
		built.Add(1)
		return &stubChecker{}
	})

	c, err := pool.Checkout(context.Background())
	require.NoError(t, err)
	pool.Checkin(c)

	c, err = pool.Checkout(context.Background())
	require.NoError(t, err)
	pool.Checkin(c)

	assert.Equal(t, int32(1), built.Load(), "returned checker should be reused before building a new one")
}

func TestPoolCapacityInvariant(t *testing.T) {
	t.Parallel()

	const size = 3
	var built atomic.Int32
	var inUse atomic.Int32
	var maxInUse atomic.Int32

	pool := NewPool(size, func() Checker {
		built.Add(1)
		return &stubChecker{}
	})

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pool.With(context.Background(), func(Checker) error {
				n := inUse.Add(1)
				for {
					prev := maxInUse.Load()
					if n <= prev || maxInUse.CompareAndSwap(prev, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inUse.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, built.Load(), int32(size))
	assert.LessOrEqual(t, maxInUse.Load(), int32(size))
}

func TestPoolCheckoutTimeout(t *testing.T) {
	t.Parallel()

	pool := NewPool(1, func() Checker { return &stubChecker{} })

	c, err := pool.Checkout(context.Background())
	require.NoError(t, err)

	_, err = pool.CheckoutTimeout(context.Background(), 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrCheckoutTimeout)

	pool.Checkin(c)

	c2, err := pool.CheckoutTimeout(context.Background(), time.Second)
	require.NoError(t, err)
	pool.Checkin(c2)
}

func TestPoolCheckoutCanceled(t *testing.T) {
	t.Parallel()

	pool := NewPool(1, func() Checker { return &stubChecker{} })

	c, err := pool.Checkout(context.Background())
	require.NoError(t, err)
	defer pool.Checkin(c)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = pool.Checkout(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
