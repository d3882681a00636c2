// Package consensus implements the transaction consensus-validation engine: structural,
// value-range, weight, finality and coinbase-maturity checks followed by fee computation.
//
// The engine is pure. It never looks coins up, never touches a coin set and performs no I/O;
// every input must arrive with its previous output already resolved.
package consensus

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// Params holds the protocol constants the checks are evaluated against.
type Params struct {
	// MaxMoney bounds every single and aggregate amount, in satoshis.
	MaxMoney int64
	// MaxTxWeight is the weight ceiling a single transaction may not exceed.
	MaxTxWeight int64
	// LockTimeThreshold separates height based lock times from Unix timestamps.
	LockTimeThreshold uint32
	// CoinbaseMaturity is the number of confirmations a coinbase output needs before it can be spent.
	CoinbaseMaturity uint32
	// EnforceRelativeLockTime enables sequence based relative lock times for version 2+ transactions.
	EnforceRelativeLockTime bool
	// CheckDuplicateInputs rejects transactions spending the same outpoint twice.
	CheckDuplicateInputs bool
}

// NewParams derives validation parameters for the given network.
func NewParams(chainParams *chaincfg.Params) Params {
	params := DefaultParams()
	if chainParams != nil {
		params.CoinbaseMaturity = uint32(chainParams.CoinbaseMaturity)
	}
	return params
}

// DefaultParams returns main network parameters.
func DefaultParams() Params {
	return Params{
		MaxMoney:                btcutil.MaxSatoshi,
		MaxTxWeight:             blockchain.MaxBlockWeight,
		LockTimeThreshold:       txscript.LockTimeThreshold,
		CoinbaseMaturity:        uint32(chaincfg.MainNetParams.CoinbaseMaturity),
		EnforceRelativeLockTime: true,
		CheckDuplicateInputs:    true,
	}
}
