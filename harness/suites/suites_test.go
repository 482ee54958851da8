package suites

import (
	"context"
	"errors"
	"testing"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/darray"
	"github.com/sharedcode/collections/harness"
)

func TestSuites_AllPass(t *testing.T) {
	tests := []struct {
		name  string
		suite *harness.TestSuite
	}{
		{"array defaults", ArraySuite(darray.DefaultOptions())},
		{"array custom", ArraySuite(darray.Options{InitialCapacity: 10, MinCapacity: 4, GrowthFactor: 3, ShrinkDivisor: 3})},
		{"singly", SinglySuite()},
		{"doubly", DoublySuite()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sum := tc.suite.Run(context.Background())
			if !sum.OK() || sum.Total == 0 {
				t.Fatalf("suite %q: %+v", sum.Suite, sum)
			}
		})
	}
}

func TestSuites_RunConcurrently(t *testing.T) {
	sums, err := harness.RunSuites(context.Background(), 0,
		ArraySuite(darray.DefaultOptions()), SinglySuite(), DoublySuite())
	if err != nil {
		t.Fatalf("RunSuites err: %v", err)
	}
	if harness.Failed(sums) {
		t.Fatalf("failures: %+v", sums)
	}
}

func TestBenchmarks_Run(t *testing.T) {
	gen := harness.NewSeededRandomGenerator(1, 1)
	for _, b := range []*harness.Benchmark{
		ArrayBenchmark(darray.DefaultOptions(), 1000, gen),
		ListBenchmark(1000),
	} {
		res, err := b.Run(context.Background())
		if err != nil || len(res) != 3 {
			t.Fatalf("%s: %d results, err %v", b.Name(), len(res), err)
		}
	}
}

// Unusable sizing options surface as an error from the benchmark run.
func TestArrayBenchmark_InvalidOptions(t *testing.T) {
	b := ArrayBenchmark(darray.Options{GrowthFactor: 1}, 10, harness.NewSeededRandomGenerator(1, 1))
	res, err := b.Run(context.Background())
	if !errors.Is(err, collections.ErrInvalidOptions) {
		t.Fatalf("err = %v, want invalid options", err)
	}
	if len(res) != 0 {
		t.Fatalf("results = %+v", res)
	}
}

func TestArrayBenchmark_Empty(t *testing.T) {
	res, err := ArrayBenchmark(darray.DefaultOptions(), 0, harness.NewSeededRandomGenerator(1, 1)).Run(context.Background())
	if err != nil || len(res) != 3 {
		t.Fatalf("%d results, err %v", len(res), err)
	}
}
