package consensus

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a consensus rule violation.
type ErrorKind string

const (
	KindStructural       ErrorKind = "structural"
	KindAmountOutOfRange ErrorKind = "amount_out_of_range"
	KindOverflow         ErrorKind = "overflow"
	KindNegativeFee      ErrorKind = "negative_fee"
	KindWeightExceeded   ErrorKind = "weight_exceeded"
	KindNonFinal         ErrorKind = "non_final"
	KindImmatureCoinbase ErrorKind = "immature_coinbase"
)

// RuleError is implemented by every error the validator returns. A rule violation is
// never transient, so callers must not retry on it.
type RuleError interface {
	error
	Kind() ErrorKind
}

// KindOf returns the kind of the first RuleError found in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var rule RuleError
	if errors.As(err, &rule) {
		return rule.Kind(), true
	}
	return "", false
}

// StructuralReason names the structural rule a transaction broke.
type StructuralReason string

const (
	ReasonNoInputs       StructuralReason = "no inputs"
	ReasonNoOutputs      StructuralReason = "no outputs"
	ReasonNullPrevOut    StructuralReason = "null previous outpoint"
	ReasonDuplicateInput StructuralReason = "duplicate input"
)

// StructuralError reports a malformed transaction. Index is the offending input, or -1.
type StructuralError struct {
	Reason StructuralReason
	Index  int
}

func (e *StructuralError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("structural: transaction has %s", e.Reason)
	}
	return fmt.Sprintf("structural: input %d has %s", e.Index, e.Reason)
}

func (e *StructuralError) Kind() ErrorKind { return KindStructural }

// Side tells whether an amount belongs to the inputs or the outputs of a transaction.
type Side string

const (
	SideInput  Side = "input"
	SideOutput Side = "output"
)

// AmountOutOfRangeError reports an amount outside [0, Max]. Index is -1 for aggregate sums.
type AmountOutOfRangeError struct {
	Side  Side
	Index int
	Value int64
	Max   int64
}

func (e *AmountOutOfRangeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("amount out of range: total %s value %d outside [0, %d]", e.Side, e.Value, e.Max)
	}
	return fmt.Sprintf("amount out of range: %s %d value %d outside [0, %d]", e.Side, e.Index, e.Value, e.Max)
}

func (e *AmountOutOfRangeError) Kind() ErrorKind { return KindAmountOutOfRange }

// OverflowError reports a running sum that would leave the int64 range when Addend at
// Index is added to it.
type OverflowError struct {
	Side   Side
	Index  int
	Sum    int64
	Addend int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("overflow: adding %s %d value %d to running total %d", e.Side, e.Index, e.Addend, e.Sum)
}

func (e *OverflowError) Kind() ErrorKind { return KindOverflow }

// NegativeFeeError reports a transaction that spends more than it consumes.
type NegativeFeeError struct {
	TotalIn  int64
	TotalOut int64
}

func (e *NegativeFeeError) Error() string {
	return fmt.Sprintf("negative fee: total input %d is less than total output %d", e.TotalIn, e.TotalOut)
}

func (e *NegativeFeeError) Kind() ErrorKind { return KindNegativeFee }

// WeightExceededError reports a transaction heavier than the allowed maximum.
type WeightExceededError struct {
	Weight int64
	Max    int64
}

func (e *WeightExceededError) Error() string {
	return fmt.Sprintf("weight exceeded: transaction weight %d, max %d", e.Weight, e.Max)
}

func (e *WeightExceededError) Kind() ErrorKind { return KindWeightExceeded }

// FinalityRule names the lock that kept a transaction from being final.
type FinalityRule string

const (
	RuleAbsoluteHeight FinalityRule = "absolute_height"
	RuleAbsoluteTime   FinalityRule = "absolute_time"
	RuleRelativeHeight FinalityRule = "relative_height"
	RuleRelativeTime   FinalityRule = "relative_time"
)

// NonFinalError reports an unsatisfied lock. ReadyAt is the first block height or time at
// which the lock is satisfied and Current the block value it was compared against.
// Index is the input carrying a relative lock, or -1 for the transaction lock time.
type NonFinalError struct {
	Rule    FinalityRule
	Index   int
	ReadyAt int64
	Current int64
}

func (e *NonFinalError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("non-final: %s lock satisfied from %d, block has %d", e.Rule, e.ReadyAt, e.Current)
	}
	return fmt.Sprintf("non-final: input %d %s lock satisfied from %d, block has %d", e.Index, e.Rule, e.ReadyAt, e.Current)
}

func (e *NonFinalError) Kind() ErrorKind { return KindNonFinal }

// ImmatureCoinbaseError reports a coinbase output spent before reaching maturity.
type ImmatureCoinbaseError struct {
	Index        int
	OriginHeight uint32
	BlockHeight  uint32
	Maturity     uint32
}

func (e *ImmatureCoinbaseError) Error() string {
	return fmt.Sprintf("immature coinbase: input %d spends coinbase from height %d at height %d, maturity %d",
		e.Index, e.OriginHeight, e.BlockHeight, e.Maturity)
}

func (e *ImmatureCoinbaseError) Kind() ErrorKind { return KindImmatureCoinbase }
