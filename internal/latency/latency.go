// Package latency simulates the response time of a remote backend in front of
// the in-memory store.
package latency

import (
	"context"
	"strings"
	"time"
)

// Op names an access-layer operation, e.g. "transactions.list".
type Op string

// Delayer pauses an access-layer call before it touches the store.
type Delayer interface {
	Wait(ctx context.Context, op Op) error
}

// Profile maps operations to fixed delays. Operations not listed use the
// list or mutation fallback depending on their suffix.
type Profile struct {
	Delays   map[Op]time.Duration
	List     time.Duration
	Mutation time.Duration
}

// Default returns the response times of the demo backend.
func Default() Profile {
	return Profile{
		Delays: map[Op]time.Duration{
			"transactions.list": 500 * time.Millisecond,
			"compliance.list":   500 * time.Millisecond,
			"strains.list":      400 * time.Millisecond,
			"customers.list":    600 * time.Millisecond,
		},
		List:     500 * time.Millisecond,
		Mutation: 300 * time.Millisecond,
	}
}

// For returns the delay configured for op.
func (p Profile) For(op Op) time.Duration {
	if d, ok := p.Delays[op]; ok {
		return d
	}
	if strings.HasSuffix(string(op), ".list") {
		return p.List
	}
	return p.Mutation
}

func (p Profile) Wait(ctx context.Context, op Op) error {
	return sleep(ctx, p.For(op))
}

// Fixed waits the same duration for every operation.
type Fixed time.Duration

func (f Fixed) Wait(ctx context.Context, _ Op) error {
	return sleep(ctx, time.Duration(f))
}

// None never waits. Tests use it to run the access layer synchronously.
var None Delayer = Fixed(0)

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
