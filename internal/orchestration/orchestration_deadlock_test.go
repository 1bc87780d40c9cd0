package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/curve"
	"github.com/agbru/ecccalc/internal/progress"
)

// behaviorMultiplier simulates strategy behaviors for deadlock testing.
type behaviorMultiplier struct {
	name     string
	behavior string // "instant", "slow", "error", "progress_flood"
	delay    time.Duration
}

func (m *behaviorMultiplier) Multiply(ctx context.Context, p curve.Point, _ bignum.Nat, cb progress.ProgressCallback) (curve.Point, error) {
	switch m.behavior {
	case "slow":
		for i := 0; i < 100; i++ {
			if err := ctx.Err(); err != nil {
				return curve.Point{}, err
			}
			cb(float64(i) / 100.0)
			time.Sleep(m.delay)
		}
	case "error":
		return curve.Point{}, fmt.Errorf("simulated error")
	case "progress_flood":
		for i := 0; i < 10000; i++ {
			cb(float64(i) / 10000.0)
		}
	}
	return p, nil
}

func (m *behaviorMultiplier) Name() string { return m.name }

// blockingReporter drains the channel slowly to provoke back-pressure.
type blockingReporter struct{}

func (blockingReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		time.Sleep(100 * time.Microsecond)
	}
}

// TestOrchestrationNoDeadlock_MixedBehaviors verifies that ExecuteMultiplications
// completes under various strategy behavior combinations.
func TestOrchestrationNoDeadlock_MixedBehaviors(t *testing.T) {
	testCases := []struct {
		name        string
		multipliers []Multiplier
	}{
		{
			name: "all_instant",
			multipliers: []Multiplier{
				&behaviorMultiplier{name: "m1", behavior: "instant"},
				&behaviorMultiplier{name: "m2", behavior: "instant"},
				&behaviorMultiplier{name: "m3", behavior: "instant"},
			},
		},
		{
			name: "mixed_instant_and_slow",
			multipliers: []Multiplier{
				&behaviorMultiplier{name: "fast", behavior: "instant"},
				&behaviorMultiplier{name: "slow", behavior: "slow", delay: time.Millisecond},
			},
		},
		{
			name: "mixed_with_errors",
			multipliers: []Multiplier{
				&behaviorMultiplier{name: "ok", behavior: "instant"},
				&behaviorMultiplier{name: "err", behavior: "error"},
			},
		},
		{
			name: "progress_flood",
			multipliers: []Multiplier{
				&behaviorMultiplier{name: "flood1", behavior: "progress_flood"},
				&behaviorMultiplier{name: "flood2", behavior: "progress_flood"},
			},
		},
		{
			name:        "single_strategy",
			multipliers: []Multiplier{&behaviorMultiplier{name: "solo", behavior: "instant"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			done := make(chan struct{})
			go func() {
				defer close(done)
				ExecuteMultiplications(ctx, tc.multipliers, curve.Point{}, bignum.NatFromDigit(7), blockingReporter{}, io.Discard)
			}()

			select {
			case <-done:
			case <-time.After(10 * time.Second):
				t.Fatal("DEADLOCK: ExecuteMultiplications did not complete within timeout")
			}
		})
	}
}

// TestOrchestrationNoDeadlock_ContextCancellation verifies that cancelling
// the context during execution does not cause a deadlock.
func TestOrchestrationNoDeadlock_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ms := []Multiplier{
		&behaviorMultiplier{name: "slow1", behavior: "slow", delay: 100 * time.Millisecond},
		&behaviorMultiplier{name: "slow2", behavior: "slow", delay: 100 * time.Millisecond},
	}

	done := make(chan []CalculationResult)
	go func() {
		done <- ExecuteMultiplications(ctx, ms, curve.Point{}, bignum.NatFromDigit(7), NullProgressReporter{}, io.Discard)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case results := <-done:
		for _, r := range results {
			if r.Err == nil {
				t.Errorf("%s should report cancellation", r.Name)
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("DEADLOCK after context cancellation")
	}
}
