package wordcheck

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCheckoutTimeout is returned when a bounded checkout could not obtain a
// checker in time. Callers should skip the check rather than fail the run.
var ErrCheckoutTimeout = errors.New("wordcheck: checker checkout timed out")

// Pool is a fixed-size pool of Checker instances. Checkers are constructed
// lazily up to the pool's capacity; once all exist, Checkout blocks until one
// is returned. A checked-out checker is exclusively owned by the caller until
// Checkin.
type Pool struct {
	free    chan Checker
	factory func() Checker

	mu      sync.Mutex
	created int
	size    int
}

// NewPool creates a pool that owns at most size checkers built by factory.
// Size is clamped to a minimum of 1.
func NewPool(size int, factory func() Checker) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		free:    make(chan Checker, size),
		factory: factory,
		size:    size,
	}
}

// Checkout obtains a checker, blocking until one is free or ctx is done.
func (p *Pool) Checkout(ctx context.Context) (Checker, error) {
	// Fast path: a returned checker is already waiting.
	select {
	case c := <-p.free:
		return c, nil
	default:
	}

	// Construct lazily while under capacity.
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return p.factory(), nil
	}
	p.mu.Unlock()

	select {
	case c := <-p.free:
		return c, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CheckoutTimeout is Checkout with a bounded wait. It returns
// ErrCheckoutTimeout when no checker frees up within d.
func (p *Pool) CheckoutTimeout(ctx context.Context, d time.Duration) (Checker, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	c, err := p.Checkout(timeoutCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrCheckoutTimeout
		}
		return nil, err
	}
	return c, nil
}

// Checkin returns a checker to the pool. Every successful Checkout must be
// paired with exactly one Checkin, including on error paths.
func (p *Pool) Checkin(c Checker) {
	if c == nil {
		return
	}
	// The channel capacity equals the pool size, so this never blocks for a
	// correctly paired checkin.
	select {
	case p.free <- c:
	default:
	}
}

// With runs fn with a checked-out checker and guarantees the checkin on
// every exit path.
func (p *Pool) With(ctx context.Context, fn func(c Checker) error) error {
	c, err := p.Checkout(ctx)
	if err != nil {
		return err
	}
	defer p.Checkin(c)
	return fn(c)
}
