package collections

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version reports the module version stamped on harness reports.
func Version() string {
	return strings.TrimSpace(rawVersion)
}
