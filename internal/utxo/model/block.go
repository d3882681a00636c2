package model

import "time"

// BlockContext is the candidate block a transaction is validated against.
type BlockContext struct {
	Height uint32
	// Time is the block timestamp in Unix seconds.
	Time uint32
}

// BlockStatus describes the validation outcome of a block record.
type BlockStatus string

var (
	// BlockValidated marks a block whose transactions all passed validation.
	BlockValidated BlockStatus = "validated"
	// BlockRejected marks a block with at least one invalid transaction.
	BlockRejected BlockStatus = "rejected"
)

// Block is a block header summary together with its decoded transactions.
type Block struct {
	Coin         Coin
	Network      Network
	Height       uint32
	Hash         string
	// Time is the header timestamp in Unix seconds.
	Time         uint32
	Transactions []Transaction
	// TxIDs holds the transaction ids in block order, aligned with Transactions.
	TxIDs        []string
}

// Context returns the validation context of the block.
func (b Block) Context() BlockContext {
	return BlockContext{Height: b.Height, Time: b.Time}
}

// Timestamp returns the header time in UTC.
func (b Block) Timestamp() time.Time {
	return time.Unix(int64(b.Time), 0).UTC()
}
