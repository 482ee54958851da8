// Command collections runs the container test suites and, optionally, the benchmarks,
// and can write the results as a JSON report.
package main

import (
	"context"
	"flag"
	"fmt"
	log "log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/darray"
	"github.com/sharedcode/collections/encoding"
	"github.com/sharedcode/collections/harness"
	"github.com/sharedcode/collections/harness/suites"
)

var (
	flagRun      string
	flagBench    bool
	flagBenchN   int
	flagReport   string
	flagOptions  string
	flagParallel int
	flagDemo     bool
)

func init() {
	flag.StringVar(&flagRun, "run", "all", "containers to test: comma separated list of array, slist, dlist, or all")
	flag.BoolVar(&flagBench, "bench", false, "run the benchmark suites after the tests")
	flag.IntVar(&flagBenchN, "n", 100000, "number of elements used by the benchmarks")
	flag.StringVar(&flagReport, "report", "", "write a JSON report to this file")
	flag.StringVar(&flagOptions, "options", "", "JSON file with the growable array sizing options")
	flag.IntVar(&flagParallel, "parallel", 0, "maximum number of suites run at once (0 = no limit)")
	flag.BoolVar(&flagDemo, "demo", false, "print a walkthrough of each container before testing")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nRuns the growable array and linked list test suites.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nThe log level is read from COLLECTIONS_LOG_LEVEL (DEBUG, INFO, WARN, ERROR).")
	}
	flag.Parse()
	collections.ConfigureLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx)
	stop()
	if err != nil {
		log.Error("collections run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	opts, err := loadOptions(flagOptions)
	if err != nil {
		return err
	}
	selected, err := parseSelection(flagRun)
	if err != nil {
		return err
	}

	if flagDemo {
		if err := demo(opts, selected); err != nil {
			return err
		}
	}

	var toRun []*harness.TestSuite
	if selected["array"] {
		toRun = append(toRun, suites.ArraySuite(opts))
	}
	if selected["slist"] {
		toRun = append(toRun, suites.SinglySuite())
	}
	if selected["dlist"] {
		toRun = append(toRun, suites.DoublySuite())
	}

	summaries, err := harness.RunSuites(ctx, flagParallel, toRun...)
	if err != nil {
		return fmt.Errorf("running suites: %w", err)
	}

	var results []harness.BenchmarkResult
	if flagBench {
		var benches []*harness.Benchmark
		if selected["array"] {
			benches = append(benches, suites.ArrayBenchmark(opts, flagBenchN, harness.NewRandomGenerator()))
		}
		if selected["slist"] || selected["dlist"] {
			benches = append(benches, suites.ListBenchmark(flagBenchN))
		}
		for _, b := range benches {
			r, err := b.Run(ctx)
			results = append(results, r...)
			if err != nil {
				return fmt.Errorf("running %s: %w", b.Name(), err)
			}
		}
	}

	if flagReport != "" {
		if err := writeReport(flagReport, harness.NewReport(summaries, results)); err != nil {
			return err
		}
	}

	if harness.Failed(summaries) {
		return fmt.Errorf("some tests failed")
	}
	return nil
}

// parseSelection turns the -run value into a set of container names.
func parseSelection(v string) (map[string]bool, error) {
	all := map[string]bool{"array": true, "slist": true, "dlist": true}
	sel := map[string]bool{}
	for _, name := range strings.Split(v, ",") {
		name = strings.TrimSpace(name)
		switch {
		case name == "all":
			return all, nil
		case all[name]:
			sel[name] = true
		default:
			return nil, fmt.Errorf("unknown container %q in -run", name)
		}
	}
	return sel, nil
}

// loadOptions reads darray options from a JSON file, or returns the defaults when path is empty.
func loadOptions(path string) (darray.Options, error) {
	opts := darray.DefaultOptions()
	if path == "" {
		return opts, nil
	}
	if err := encoding.ReadFile(path, &opts, nil); err != nil {
		return opts, fmt.Errorf("loading options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("options %s: %w", path, err)
	}
	return opts, nil
}

func writeReport(path string, r harness.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := harness.WriteReport(f, r, encoding.NewIndentMarshaler("", "  ")); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
