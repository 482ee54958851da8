// Package collections holds the pieces shared by the container packages: the coded error type
// and its sentinels, logging setup, UUIDs used to tag containers in log records, and the
// TaskRunner used by the harness to run independent suites side by side.
//
// The containers live in subpackages: darray (growable array) and list (singly and doubly
// linked lists). The harness package provides the test suite and benchmark runners that
// exercise them, and cmd/collections is a small driver over all of it.
//
// None of the containers are safe for concurrent use. Each is a single-owner value with an
// explicit Destroy; any use after Destroy fails with an error carrying the UseAfterDestroy code.
package collections
