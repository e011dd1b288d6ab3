package latency

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestProfile_For(t *testing.T) {
	p := Default()

	cases := map[Op]time.Duration{
		"customers.list":      600 * time.Millisecond,
		"strains.list":        400 * time.Millisecond,
		"tasks.list":          500 * time.Millisecond,
		"customers.create":    300 * time.Millisecond,
		"transactions.delete": 300 * time.Millisecond,
	}
	for op, want := range cases {
		if got := p.For(op); got != want {
			t.Errorf("For(%s) = %v, want %v", op, got, want)
		}
	}
}

func TestNone_DoesNotWait(t *testing.T) {
	start := time.Now()
	if err := None.Wait(context.Background(), "tasks.list"); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if time.Since(start) > 50*time.Millisecond {
		t.Fatalf("None waited too long")
	}
}

func TestFixed_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Fixed(time.Hour).Wait(ctx, "tasks.list")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
