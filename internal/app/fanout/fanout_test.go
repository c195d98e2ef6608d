package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []string{}, func(_ context.Context, _ string) (int, error) {
		t.Fatal("fn should not be called for empty items")
		return 0, nil
	})

	if results == nil || len(results) != 0 {
		t.Fatalf("results = %v, want empty non-nil slice", results)
	}
}

func TestRun_PartialFailure(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	items := []string{"task-1", "task-2", "task-3"}

	results := fanout.Run(context.Background(), 2, items, func(_ context.Context, id string) (string, error) {
		if id == "task-2" {
			return "", errBoom
		}
		return id + ":done", nil
	})

	if results[0].Err != nil || results[0].Value != "task-1:done" {
		t.Errorf("results[0] = %+v, want task-1:done", results[0])
	}
	if !errors.Is(results[1].Err, errBoom) {
		t.Errorf("results[1].Err = %v, want %v", results[1].Err, errBoom)
	}
	if results[2].Err != nil || results[2].Value != "task-3:done" {
		t.Errorf("results[2] = %+v, want task-3:done", results[2])
	}
}

func TestRun_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	items := []time.Duration{30 * time.Millisecond, 5 * time.Millisecond, 15 * time.Millisecond}

	results := fanout.Run(context.Background(), len(items), items, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	for i, r := range results {
		if r.Err != nil || r.Value != items[i] {
			t.Errorf("results[%d] = %+v, want %v", i, r, items[i])
		}
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		maxWorkers int
		wantPeak   int32
	}{
		{name: "three workers", maxWorkers: 3, wantPeak: 3},
		{name: "zero is clamped to one", maxWorkers: 0, wantPeak: 1},
		{name: "negative is clamped to one", maxWorkers: -2, wantPeak: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var peak, active atomic.Int32
			items := make([]int, 12)

			fanout.Run(context.Background(), tt.maxWorkers, items, func(_ context.Context, _ int) (int, error) {
				cur := active.Add(1)
				defer active.Add(-1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				return 0, nil
			})

			if p := peak.Load(); p > tt.wantPeak {
				t.Errorf("peak concurrency = %d, want <= %d", p, tt.wantPeak)
			}
		})
	}
}

func TestRun_CanceledWhileWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, _ int) (int, error) {
		if calls.Add(1) == 1 {
			cancel()
			time.Sleep(30 * time.Millisecond)
		}
		return 1, nil
	})

	var canceled int
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	if canceled == 0 {
		t.Error("expected at least one result with context.Canceled")
	}
	if int(calls.Load())+canceled != 3 {
		t.Errorf("calls %d + canceled %d != 3", calls.Load(), canceled)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	items := []string{"a", "b", "c", "d"}
	results := []fanout.Result[int]{
		{Value: 1},
		{Err: errBoom},
		{Value: 3},
		{Err: context.Canceled},
	}

	ok, failed := fanout.Split(items, results)

	if len(ok) != 2 || ok[0] != 1 || ok[1] != 3 {
		t.Errorf("ok = %v, want [1 3]", ok)
	}
	if len(failed) != 2 {
		t.Fatalf("len(failed) = %d, want 2", len(failed))
	}
	if failed[0].Item != "b" || !errors.Is(failed[0].Err, errBoom) {
		t.Errorf("failed[0] = %+v", failed[0])
	}
	if failed[1].Item != "d" || !errors.Is(failed[1].Err, context.Canceled) {
		t.Errorf("failed[1] = %+v", failed[1])
	}
}
