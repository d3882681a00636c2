package safe

import (
	"fmt"
	"math"
)

// AddInt64 returns a+b or an error wrapping ErrOutOfRange when the sum would wrap.
func AddInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d overflows int64", ErrOutOfRange, a, b)
	}
	return a + b, nil
}

// SubInt64 returns a-b or an error wrapping ErrOutOfRange when the difference would wrap.
func SubInt64(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, fmt.Errorf("%w: %d - %d overflows int64", ErrOutOfRange, a, b)
	}
	return a - b, nil
}

// AddUint64 returns a+b or an error wrapping ErrOutOfRange when the sum would wrap.
func AddUint64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fmt.Errorf("%w: %d + %d overflows uint64", ErrOutOfRange, a, b)
	}
	return a + b, nil
}
