// Package harness runs named zero-argument checks and timings against the containers.
//
// A TestSuite collects tests registered as func() error and reports how many passed and failed;
// a test fails by returning an error, typically one produced by the Assert helpers, or by panicking.
// A Benchmark times named actions and reports the wall time of each. Results are logged through
// slog and can be written out as a Report.
package harness
