package harness

import (
	"fmt"
	"io"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/encoding"
)

// Report is the persisted outcome of a harness run.
type Report struct {
	Version    string            `json:"version"`
	Summaries  []Summary         `json:"summaries"`
	Benchmarks []BenchmarkResult `json:"benchmarks,omitempty"`
}

// NewReport stamps the module version on the given results.
func NewReport(summaries []Summary, benchmarks []BenchmarkResult) Report {
	return Report{Version: collections.Version(), Summaries: summaries, Benchmarks: benchmarks}
}

// WriteReport encodes r with m, or encoding.DefaultMarshaler when m is nil, and writes it to w.
func WriteReport(w io.Writer, r Report, m encoding.Marshaler) error {
	ba, err := encoding.Encode(r, m)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if _, err := w.Write(ba); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ReadReport decodes a report written by WriteReport.
func ReadReport(rd io.Reader, m encoding.Marshaler) (Report, error) {
	var r Report
	ba, err := io.ReadAll(rd)
	if err != nil {
		return r, fmt.Errorf("read report: %w", err)
	}
	if err := encoding.Decode(ba, &r, m); err != nil {
		return r, fmt.Errorf("unmarshal report: %w", err)
	}
	return r, nil
}
