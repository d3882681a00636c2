// Package safe provides helpers for safe numeric conversions and arithmetic with overflow checks.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is wrapped by every conversion or arithmetic error in this package.
var ErrOutOfRange = errors.New("value out of range")

type integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T integer](v T) (uint32, error) {
	wide, err := Uint64(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOutOfRange, v)
	}
	if wide > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOutOfRange, v)
	}
	return uint32(wide), nil
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d does not fit uint64", ErrOutOfRange, v)
	}
	return uint64(v), nil
}

// Int64 converts integers to int64, rejecting unsigned values above math.MaxInt64.
func Int64[T integer](v T) (int64, error) {
	if v < 0 {
		return int64(v), nil
	}
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d does not fit int64", ErrOutOfRange, v)
	}
	return int64(v), nil
}
