package resilience

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Client bounds calls to one dependency with a timeout and a breaker.
// It never retries.
type Client struct {
	breaker *Breaker
	timeout time.Duration
}

func NewClient(breaker *Breaker, timeout time.Duration) *Client {
	return &Client{
		breaker: breaker,
		timeout: timeout,
	}
}

// Breaker exposes the underlying breaker for introspection.
func (c *Client) Breaker() *Breaker {
	return c.breaker
}

// Do runs fn with a deadline under the client's breaker. A rejected call
// returns CircuitOpen without invoking fn; a call that outlives the timeout
// counts as a failure.
func Do[T any](ctx context.Context, c *Client, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T

	err := c.breaker.Execute(func() error {
		callCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		res, err := fn(callCtx)
		if err != nil {
			if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
				return errors.Wrapf(err, "call to %s timed out after %s", c.breaker.Name(), c.timeout)
			}
			return err
		}

		result = res
		return nil
	})

	return result, err
}
