package consensus

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

// Weight returns the consensus weight of tx: base bytes count WitnessScaleFactor times,
// witness bytes once.
func Weight(tx *model.Transaction) int64 {
	return blockchain.GetTransactionWeight(btcutil.NewTx(tx.MsgTx()))
}

func (v *Validator) checkWeight(tx *model.Transaction) (int64, error) {
	weight := Weight(tx)
	if weight > v.params.MaxTxWeight {
		return 0, &WeightExceededError{Weight: weight, Max: v.params.MaxTxWeight}
	}
	return weight, nil
}
