package harness

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBenchmark_TimesEachAction(t *testing.T) {
	b := NewBenchmark("timing")
	calls := 0
	b.AddTest("sleep", func() { calls++; time.Sleep(2 * time.Millisecond) })
	b.AddTest("noop", func() { calls++ })

	res, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run err: %v", err)
	}
	if calls != 2 || len(res) != 2 {
		t.Fatalf("calls %d results %d", calls, len(res))
	}
	if res[0].Name != "sleep" || res[0].Suite != "timing" || res[0].Elapsed < 2*time.Millisecond {
		t.Fatalf("unexpected first result %+v", res[0])
	}
}

func TestBenchmark_StopsOnCancel(t *testing.T) {
	b := NewBenchmark("cancel")
	ctx, cancel := context.WithCancel(context.Background())
	b.AddTest("first", cancel)
	b.AddTest("second", func() { t.Fatalf("ran after cancel") })
	res, err := b.Run(ctx)
	if !errors.Is(err, context.Canceled) || len(res) != 1 {
		t.Fatalf("res %+v err %v", res, err)
	}
}

func TestTimer(t *testing.T) {
	tm := StartTimer("op")
	time.Sleep(time.Millisecond)
	if d := tm.Stop(); d < time.Millisecond {
		t.Fatalf("elapsed %v", d)
	}
}

// A failing or panicking action stops the run and is reported as an error.
func TestBenchmark_FailingActions(t *testing.T) {
	boom := errors.New("setup failed")
	tests := []struct {
		name string
		add  func(b *Benchmark)
		want error
	}{
		{"error", func(b *Benchmark) { b.AddCheckedTest("bad", func() error { return boom }) }, boom},
		{"panic", func(b *Benchmark) {
			b.AddTest("bad", func() {
				var p *int
				_ = *p
			})
		}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBenchmark("failing")
			b.AddTest("ok", func() {})
			tc.add(b)
			b.AddTest("after", func() { t.Fatalf("ran after failure") })
			res, err := b.Run(context.Background())
			if err == nil || len(res) != 1 || res[0].Name != "ok" {
				t.Fatalf("res %+v err %v", res, err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("err %v does not wrap %v", err, tc.want)
			}
		})
	}
}
