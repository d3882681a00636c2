package consensus

import (
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

func (v *Validator) checkCoinbaseMaturity(tx *model.Transaction, block model.BlockContext) error {
	for i, in := range tx.Inputs {
		prev := in.PreviousOutput
		if !prev.IsCoinbase {
			continue
		}
		depth := int64(block.Height) - int64(prev.BlockHeight)
		if depth < int64(v.params.CoinbaseMaturity) {
			return &ImmatureCoinbaseError{
				Index:        i,
				OriginHeight: prev.BlockHeight,
				BlockHeight:  block.Height,
				Maturity:     v.params.CoinbaseMaturity,
			}
		}
	}
	return nil
}
