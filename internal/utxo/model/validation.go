package model

import "time"

// UnspentCoin is a persisted coin-set record.
type UnspentCoin struct {
	Coin        Coin
	Network     Network
	TxID        string
	Vout        uint32
	Value       int64
	PkScriptHex string
	BlockHeight uint32
	BlockTime   time.Time
	IsCoinbase  bool
}

// ValidationResult records the verdict for one transaction of a block.
type ValidationResult struct {
	Coin        Coin
	Network     Network
	BlockHeight uint32
	BlockHash   string
	TxID        string
	Index       uint32
	Valid       bool
	Fee         uint64
	Weight      int64
	Reason      string
	Message     string
	ValidatedAt time.Time
}

// BlockReport aggregates the verdicts of one validated block.
type BlockReport struct {
	Block     Block
	Results   []ValidationResult
	TotalFees uint64
	Rejected  int
}

// Status returns BlockValidated when every transaction passed.
func (r BlockReport) Status() BlockStatus {
	if r.Rejected > 0 {
		return BlockRejected
	}
	return BlockValidated
}
