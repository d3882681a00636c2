package consensus

import (
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

// relativeLockMinVersion is the first transaction version whose input sequences carry
// relative lock times. The version is compared unsigned, so negative versions qualify.
const relativeLockMinVersion uint32 = 2

func (v *Validator) checkFinality(tx *model.Transaction, block model.BlockContext) error {
	if err := v.checkLockTime(tx, block); err != nil {
		return err
	}
	if !v.params.EnforceRelativeLockTime || uint32(tx.Version) < relativeLockMinVersion || tx.IsCoinbase() {
		return nil
	}
	return checkSequenceLocks(tx, block)
}

func (v *Validator) checkLockTime(tx *model.Transaction, block model.BlockContext) error {
	lockTime := tx.LockTime
	if lockTime == 0 {
		return nil
	}

	rule := RuleAbsoluteHeight
	current := int64(block.Height)
	if lockTime >= v.params.LockTimeThreshold {
		rule = RuleAbsoluteTime
		current = int64(block.Time)
	}
	if int64(lockTime) < current {
		return nil
	}

	// A lock time in the future is still final when every input opted out of it.
	for _, in := range tx.Inputs {
		if in.Sequence != wire.MaxTxInSequenceNum {
			return &NonFinalError{Rule: rule, Index: -1, ReadyAt: int64(lockTime) + 1, Current: current}
		}
	}
	return nil
}

func checkSequenceLocks(tx *model.Transaction, block model.BlockContext) error {
	for i, in := range tx.Inputs {
		sequence := in.Sequence
		if sequence&wire.SequenceLockTimeDisabled != 0 {
			continue
		}

		prev := in.PreviousOutput
		delta := int64(sequence & wire.SequenceLockTimeMask)

		if sequence&wire.SequenceLockTimeIsSeconds != 0 {
			readyAt := int64(prev.BlockTime) + delta<<wire.SequenceLockTimeGranularity
			if int64(block.Time) < readyAt {
				return &NonFinalError{Rule: RuleRelativeTime, Index: i, ReadyAt: readyAt, Current: int64(block.Time)}
			}
			continue
		}

		readyAt := int64(prev.BlockHeight) + delta
		if int64(block.Height) < readyAt {
			return &NonFinalError{Rule: RuleRelativeHeight, Index: i, ReadyAt: readyAt, Current: int64(block.Height)}
		}
	}
	return nil
}
