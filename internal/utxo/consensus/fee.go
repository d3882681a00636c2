package consensus

import (
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/safe"
)

// fee expects both totals to be range-checked already.
func fee(totalIn, totalOut int64) (uint64, error) {
	if totalOut > totalIn {
		return 0, &NegativeFeeError{TotalIn: totalIn, TotalOut: totalOut}
	}
	diff, err := safe.SubInt64(totalIn, totalOut)
	if err != nil {
		return 0, &OverflowError{Side: SideInput, Index: -1, Sum: totalIn, Addend: -totalOut}
	}
	return safe.Uint64(diff)
}
