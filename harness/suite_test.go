package harness

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestTestSuite_CountsPassAndFail(t *testing.T) {
	s := NewTestSuite("mixed")
	var order []string
	s.AddTest("passes", func() error { order = append(order, "passes"); return nil })
	s.AddTest("fails", func() error { order = append(order, "fails"); return AssertEqual(1, 2) })
	s.AddTest("panics", func() error { order = append(order, "panics"); panic("runtime_error") })
	s.AddTest("panics with error", func() error { panic(errors.New("boxed")) })
	s.AddTest("passes too", func() error { return nil })

	sum := s.Run(context.Background())
	if sum.Passed != 2 || sum.Failed != 3 || sum.Total != 5 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.OK() {
		t.Fatalf("OK() true with failures")
	}
	if sum.Suite != "mixed" || sum.RunID.IsNil() {
		t.Fatalf("suite name or run id missing: %+v", sum)
	}
	if strings.Join(order, ",") != "passes,fails,panics" {
		t.Fatalf("tests ran out of order: %v", order)
	}
	if len(sum.Failures) != 3 || sum.Failures[0].Test != "fails" || !strings.Contains(sum.Failures[1].Error, "runtime_error") {
		t.Fatalf("failures = %+v", sum.Failures)
	}
}

func TestTestSuite_CancelledContext(t *testing.T) {
	s := NewTestSuite("cancelled")
	ran := false
	s.AddTest("never runs", func() error { ran = true; return nil })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum := s.Run(ctx)
	if ran {
		t.Fatalf("test ran after cancellation")
	}
	if sum.Failed != 1 || !strings.Contains(sum.Failures[0].Error, context.Canceled.Error()) {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestTestSuite_Empty(t *testing.T) {
	sum := NewTestSuite("empty").Run(context.Background())
	if sum.Total != 0 || !sum.OK() {
		t.Fatalf("summary = %+v", sum)
	}
}
