package consensus

import (
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

func (v *Validator) checkStructure(tx *model.Transaction) error {
	if len(tx.Inputs) == 0 {
		return &StructuralError{Reason: ReasonNoInputs, Index: -1}
	}
	if len(tx.Outputs) == 0 {
		return &StructuralError{Reason: ReasonNoOutputs, Index: -1}
	}
	if tx.IsCoinbase() {
		return nil
	}

	var seen map[model.OutPointKey]struct{}
	if v.params.CheckDuplicateInputs {
		seen = make(map[model.OutPointKey]struct{}, len(tx.Inputs))
	}
	for i, in := range tx.Inputs {
		if in.PreviousOutput.IsNull() {
			return &StructuralError{Reason: ReasonNullPrevOut, Index: i}
		}
		if seen == nil {
			continue
		}
		key := in.PreviousOutput.Key()
		if _, dup := seen[key]; dup {
			return &StructuralError{Reason: ReasonDuplicateInput, Index: i}
		}
		seen[key] = struct{}{}
	}
	return nil
}
