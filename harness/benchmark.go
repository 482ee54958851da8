package harness

import (
	"context"
	"fmt"
	log "log/slog"
	"time"
)

// Timer measures the wall time of one operation.
type Timer struct {
	name  string
	start time.Time
}

// StartTimer starts timing the named operation.
func StartTimer(name string) *Timer {
	return &Timer{name: name, start: time.Now()}
}

// Stop returns the elapsed time and logs it as "<name> took <ms>ms".
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	log.Info(fmt.Sprintf("%s took %.3fms", t.name, float64(d.Nanoseconds())/1e6), "operation", t.name, "elapsed", d)
	return d
}

// BenchmarkResult is the wall time of one benchmark action.
type BenchmarkResult struct {
	Suite   string        `json:"suite"`
	Name    string        `json:"name"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

type benchmarkAction struct {
	name string
	fn   func() error
}

// Benchmark times named actions, in registration order.
type Benchmark struct {
	name    string
	actions []benchmarkAction
}

// NewBenchmark creates an empty benchmark suite.
func NewBenchmark(name string) *Benchmark {
	return &Benchmark{name: name}
}

// Name returns the benchmark suite name.
func (b *Benchmark) Name() string {
	return b.name
}

// AddTest registers fn under name.
func (b *Benchmark) AddTest(name string, fn func()) {
	b.AddCheckedTest(name, func() error {
		fn()
		return nil
	})
}

// AddCheckedTest registers an action that can fail, for example when its setup cannot allocate.
func (b *Benchmark) AddCheckedTest(name string, fn func() error) {
	b.actions = append(b.actions, benchmarkAction{name: name, fn: fn})
}

// Run times each action once and returns the results. It stops early, returning the results
// gathered so far, once ctx is done or an action fails. A panicking action counts as failed.
func (b *Benchmark) Run(ctx context.Context) ([]BenchmarkResult, error) {
	log.Info("running benchmark suite", "suite", b.name, "benchmarks", len(b.actions))
	results := make([]BenchmarkResult, 0, len(b.actions))
	for _, a := range b.actions {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		t := StartTimer(a.name)
		err := runTest(a.fn)
		elapsed := t.Stop()
		if err != nil {
			log.Warn("benchmark failed", "suite", b.name, "benchmark", a.name, "error", err)
			return results, fmt.Errorf("benchmark %q: %w", a.name, err)
		}
		results = append(results, BenchmarkResult{Suite: b.name, Name: a.name, Elapsed: elapsed})
	}
	return results, nil
}
