package consensus

import (
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/safe"
)

// sumAmounts range-checks n amounts and accumulates them with overflow detection. The
// aggregate is range-checked only after the loop, so a sum can overflow int64 before the
// supply limit rejects it.
func (v *Validator) sumAmounts(side Side, n int, valueAt func(int) int64) (int64, error) {
	var total int64
	for i := 0; i < n; i++ {
		value := valueAt(i)
		if value < 0 || value > v.params.MaxMoney {
			return 0, &AmountOutOfRangeError{Side: side, Index: i, Value: value, Max: v.params.MaxMoney}
		}
		next, err := safe.AddInt64(total, value)
		if err != nil {
			return 0, &OverflowError{Side: side, Index: i, Sum: total, Addend: value}
		}
		total = next
	}
	if total > v.params.MaxMoney {
		return 0, &AmountOutOfRangeError{Side: side, Index: -1, Value: total, Max: v.params.MaxMoney}
	}
	return total, nil
}
