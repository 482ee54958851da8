package darray

import (
	"fmt"
	"math"

	"github.com/sharedcode/collections"
)

const (
	// DefaultMinCapacity is the floor capacity an Array never goes below once created.
	DefaultMinCapacity = 8
	// DefaultGrowthFactor multiplies the capacity when an append finds the buffer full.
	DefaultGrowthFactor = 2
	// DefaultShrinkDivisor sets the shrink threshold: removals that leave size below
	// capacity/DefaultShrinkDivisor halve the capacity.
	DefaultShrinkDivisor = 4
)

// Options holds the sizing policy of an Array. Zero values take the defaults.
type Options struct {
	// InitialCapacity is the requested starting capacity. It is clamped to MinCapacity.
	InitialCapacity int `json:"initial_capacity,omitempty"`
	// MinCapacity is the floor capacity.
	MinCapacity int `json:"min_capacity,omitempty"`
	// GrowthFactor is the capacity multiplier applied on a full append. Must be at least 2.
	GrowthFactor int `json:"growth_factor,omitempty"`
	// ShrinkDivisor sets the shrink threshold to capacity/ShrinkDivisor. Must be at least 2.
	ShrinkDivisor int `json:"shrink_divisor,omitempty"`
}

// DefaultOptions returns the options used by New.
func DefaultOptions() Options {
	return Options{
		MinCapacity:   DefaultMinCapacity,
		GrowthFactor:  DefaultGrowthFactor,
		ShrinkDivisor: DefaultShrinkDivisor,
	}
}

// Validate reports an InvalidOptions error when no Array can be built from o.
func (o Options) Validate() error {
	_, err := o.normalize()
	return err
}

// normalize fills zero fields with defaults and validates the result.
func (o Options) normalize() (Options, error) {
	if o.InitialCapacity < 0 || o.MinCapacity < 0 || o.GrowthFactor < 0 || o.ShrinkDivisor < 0 {
		return o, invalidOptions(o, "negative value")
	}
	if o.MinCapacity == 0 {
		o.MinCapacity = DefaultMinCapacity
	}
	if o.GrowthFactor == 0 {
		o.GrowthFactor = DefaultGrowthFactor
	}
	if o.ShrinkDivisor == 0 {
		o.ShrinkDivisor = DefaultShrinkDivisor
	}
	if o.GrowthFactor < 2 {
		return o, invalidOptions(o, "growth factor must be at least 2")
	}
	if o.ShrinkDivisor < 2 {
		return o, invalidOptions(o, "shrink divisor must be at least 2")
	}
	o.InitialCapacity = max(o.InitialCapacity, o.MinCapacity)
	return o, nil
}

// grow returns the capacity after one growth step, or an error when it would overflow int.
func (o Options) grow(capacity int) (int, error) {
	if capacity > math.MaxInt/o.GrowthFactor {
		return 0, collections.NewAllocationError(capacity, fmt.Errorf("capacity %d * %d overflows", capacity, o.GrowthFactor))
	}
	return capacity * o.GrowthFactor, nil
}

func invalidOptions(o Options, reason string) error {
	return collections.Error{
		Code:     collections.InvalidOptions,
		Err:      fmt.Errorf("%w: %s", collections.ErrInvalidOptions, reason),
		UserData: o,
	}
}
