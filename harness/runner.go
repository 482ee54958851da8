package harness

import (
	"context"

	"github.com/sharedcode/collections"
)

// RunSuites runs the suites concurrently, at most maxParallel at a time (no limit when <= 0).
// Tests inside one suite still run sequentially. Summaries are returned in the order of suites.
// When ctx ends before every suite was started, the error is ctx's and the summaries cover
// only the suites that started.
func RunSuites(ctx context.Context, maxParallel int, suites ...*TestSuite) ([]Summary, error) {
	summaries := make([]Summary, len(suites))
	tr := collections.NewTaskRunner(ctx, maxParallel)
	for i, s := range suites {
		if err := ctx.Err(); err != nil {
			_ = tr.Wait()
			return summaries[:i], err
		}
		tr.Go(func(ctx context.Context) error {
			summaries[i] = s.Run(ctx)
			return nil
		})
	}
	if err := tr.Wait(); err != nil {
		return summaries, err
	}
	return summaries, nil
}

// Failed reports whether any summary has a failed test.
func Failed(summaries []Summary) bool {
	for _, s := range summaries {
		if !s.OK() {
			return true
		}
	}
	return false
}
