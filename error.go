package collections

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the failures a container operation can report.
type ErrorCode int

const (
	Unknown ErrorCode = iota
	// AllocationFailure means backing storage could not be obtained at create or grow time.
	AllocationFailure
	// IndexOutOfRange means an index was outside [0, size).
	IndexOutOfRange
	// EmptyStructure means a removal was attempted on an empty container.
	EmptyStructure
	// UseAfterDestroy means the container was used after Destroy was called on it.
	UseAfterDestroy
	// InvalidOptions means a container was constructed with unusable options.
	InvalidOptions
	// NotFound means no element matched a search predicate.
	NotFound
)

// String returns a human-readable name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case AllocationFailure:
		return "allocation failure"
	case IndexOutOfRange:
		return "index out of range"
	case EmptyStructure:
		return "empty structure"
	case UseAfterDestroy:
		return "use after destroy"
	case InvalidOptions:
		return "invalid options"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by Error so callers can use errors.Is.
var (
	ErrAllocation     = errors.New("allocation failed")
	ErrOutOfBounds    = errors.New("index out of bounds")
	ErrEmpty          = errors.New("container is empty")
	ErrDestroyed      = errors.New("container already destroyed")
	ErrInvalidOptions = errors.New("invalid options")
	ErrNotFound       = errors.New("no matching element")
)

// Error is the custom error returned by the containers.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

func (e Error) Error() string {
	if e.UserData == nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %v, user data: %v", e.Code, e.Err, e.UserData)
}

// Unwrap returns the wrapped error so errors.Is matches the sentinels.
func (e Error) Unwrap() error {
	return e.Err
}

// BoundsError is the data attached to IndexOutOfRange errors.
type BoundsError struct {
	Index int
	Size  int
}

func (b BoundsError) String() string {
	return fmt.Sprintf("index %d, size %d", b.Index, b.Size)
}

// NewBoundsError reports index as outside [0, size).
func NewBoundsError(index, size int) error {
	return Error{Code: IndexOutOfRange, Err: ErrOutOfBounds, UserData: BoundsError{Index: index, Size: size}}
}

// NewAllocationError reports that n elements could not be allocated.
func NewAllocationError(n int, cause error) error {
	err := ErrAllocation
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrAllocation, cause)
	}
	return Error{Code: AllocationFailure, Err: err, UserData: n}
}

// NewEmptyError reports a removal from an empty container. op names the operation.
func NewEmptyError(op string) error {
	return Error{Code: EmptyStructure, Err: ErrEmpty, UserData: op}
}

// NewDestroyedError reports use of a destroyed container identified by id.
func NewDestroyedError(id UUID) error {
	return Error{Code: UseAfterDestroy, Err: ErrDestroyed, UserData: id}
}

// CodeOf returns the ErrorCode carried by err, or Unknown.
func CodeOf(err error) ErrorCode {
	var e Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}
