package consensus

import (
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

// Verdict describes a transaction that passed validation.
type Verdict struct {
	Fee      uint64
	Weight   int64
	TotalIn  int64
	TotalOut int64
}

// Validator runs the consensus checks. It holds no mutable state and is safe for
// concurrent use.
type Validator struct {
	params Params
}

// NewValidator constructs a Validator for params.
func NewValidator(params Params) *Validator {
	return &Validator{params: params}
}

// Params returns the parameters the validator was built with.
func (v *Validator) Params() Params {
	return v.params
}

// Validate checks tx for inclusion in block and returns its fee.
func (v *Validator) Validate(tx *model.Transaction, block model.BlockContext) (uint64, error) {
	verdict, err := v.Evaluate(tx, block)
	if err != nil {
		return 0, err
	}
	return verdict.Fee, nil
}

// Evaluate runs every check in order and stops at the first violation.
func (v *Validator) Evaluate(tx *model.Transaction, block model.BlockContext) (Verdict, error) {
	if err := v.checkStructure(tx); err != nil {
		return Verdict{}, err
	}

	coinbase := tx.IsCoinbase()

	totalOut, err := v.sumAmounts(SideOutput, len(tx.Outputs), func(i int) int64 {
		return tx.Outputs[i].Value
	})
	if err != nil {
		return Verdict{}, err
	}

	var totalIn int64
	if !coinbase {
		totalIn, err = v.sumAmounts(SideInput, len(tx.Inputs), func(i int) int64 {
			return tx.Inputs[i].PreviousOutput.Data.Value
		})
		if err != nil {
			return Verdict{}, err
		}
	}

	weight, err := v.checkWeight(tx)
	if err != nil {
		return Verdict{}, err
	}

	if err = v.checkFinality(tx, block); err != nil {
		return Verdict{}, err
	}

	if !coinbase {
		if err = v.checkCoinbaseMaturity(tx, block); err != nil {
			return Verdict{}, err
		}
	}

	verdict := Verdict{Weight: weight, TotalIn: totalIn, TotalOut: totalOut}
	if coinbase {
		return verdict, nil
	}

	verdict.Fee, err = fee(totalIn, totalOut)
	if err != nil {
		return Verdict{}, err
	}
	return verdict, nil
}
