package harness

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/sharedcode/collections"
)

// Test is a named zero-argument check.
type Test struct {
	Name string
	Fn   func() error
}

// Failure records why a test failed.
type Failure struct {
	Test  string `json:"test"`
	Error string `json:"error"`
}

// Summary is the outcome of one TestSuite run.
type Summary struct {
	Suite    string           `json:"suite"`
	RunID    collections.UUID `json:"run_id"`
	Passed   int              `json:"passed"`
	Failed   int              `json:"failed"`
	Total    int              `json:"total"`
	Failures []Failure        `json:"failures,omitempty"`
	Elapsed  time.Duration    `json:"elapsed_ns"`
}

// OK reports whether every test passed.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// TestSuite holds tests in registration order.
type TestSuite struct {
	name  string
	tests []Test
}

// NewTestSuite creates an empty suite.
func NewTestSuite(name string) *TestSuite {
	return &TestSuite{name: name}
}

// Name returns the suite name.
func (s *TestSuite) Name() string {
	return s.name
}

// Len returns the number of registered tests.
func (s *TestSuite) Len() int {
	return len(s.tests)
}

// AddTest registers fn under name. Tests run in the order they were added.
func (s *TestSuite) AddTest(name string, fn func() error) {
	s.tests = append(s.tests, Test{Name: name, Fn: fn})
}

// Run executes every test and returns the counts. A test that panics counts as failed.
// Once ctx is done the remaining tests are not started and count as failed with ctx's error.
func (s *TestSuite) Run(ctx context.Context) Summary {
	sum := Summary{
		Suite: s.name,
		RunID: collections.NewUUID(),
		Total: len(s.tests),
	}
	start := time.Now()
	log.Info("running test suite", "suite", s.name, "run_id", sum.RunID, "tests", len(s.tests))

	for _, tc := range s.tests {
		err := ctx.Err()
		if err == nil {
			err = runTest(tc.Fn)
		}
		if err != nil {
			sum.Failed++
			sum.Failures = append(sum.Failures, Failure{Test: tc.Name, Error: err.Error()})
			log.Warn("FAILED", "suite", s.name, "test", tc.Name, "error", err)
			continue
		}
		sum.Passed++
		log.Info("PASSED", "suite", s.name, "test", tc.Name)
	}

	sum.Elapsed = time.Since(start)
	log.Info("test summary", "suite", s.name, "passed", sum.Passed, "failed", sum.Failed, "total", sum.Total)
	return sum
}

func runTest(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
