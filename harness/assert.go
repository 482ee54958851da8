package harness

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// AssertionError is returned by the Assert helpers when a check does not hold.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

func assertionFailed(format string, args []any, msg []string) error {
	s := "assertion failed: " + fmt.Sprintf(format, args...)
	if m := strings.Join(msg, " "); m != "" {
		s += " - " + m
	}
	return &AssertionError{Message: s}
}

// AssertEqual fails when actual differs from expected.
func AssertEqual[T comparable](expected, actual T, msg ...string) error {
	if expected != actual {
		return assertionFailed("expected %v, got %v", []any{expected, actual}, msg)
	}
	return nil
}

// AssertNotEqual fails when actual equals unexpected.
func AssertNotEqual[T comparable](unexpected, actual T, msg ...string) error {
	if unexpected == actual {
		return assertionFailed("unexpected %v", []any{unexpected}, msg)
	}
	return nil
}

// AssertTrue fails when condition is false.
func AssertTrue(condition bool, msg ...string) error {
	if !condition {
		return assertionFailed("expected true", nil, msg)
	}
	return nil
}

// AssertFalse fails when condition is true.
func AssertFalse(condition bool, msg ...string) error {
	if condition {
		return assertionFailed("expected false", nil, msg)
	}
	return nil
}

// AssertNoError fails when err is not nil.
func AssertNoError(err error, msg ...string) error {
	if err != nil {
		return assertionFailed("unexpected error %v", []any{err}, msg)
	}
	return nil
}

// AssertError fails unless errors.Is(err, target).
func AssertError(err, target error, msg ...string) error {
	if !errors.Is(err, target) {
		return assertionFailed("expected error %v, got %v", []any{target, err}, msg)
	}
	return nil
}

// AssertSeqEqual fails unless seq yields exactly the elements of expected, in order.
func AssertSeqEqual[T comparable](expected []T, seq iter.Seq[T], msg ...string) error {
	actual := slices.Collect(seq)
	if !slices.Equal(expected, actual) {
		return assertionFailed("expected %v, got %v", []any{expected, actual}, msg)
	}
	return nil
}

// All returns the first non-nil error among errs. It lets a test chain several assertions:
//
//	return harness.All(harness.AssertEqual(1, a), harness.AssertTrue(ok))
func All(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
