// Package model defines domain models for UTXO transaction validation.
package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Transaction is a fully-formed transaction whose inputs carry their resolved coins.
type Transaction struct {
	Version  int32
	IsSegwit bool
	Inputs   []TxIn
	Outputs  []TxOut
	LockTime uint32
}

// TxIn spends a previously created coin.
type TxIn struct {
	Script         []byte
	Sequence       uint32
	PreviousOutput OutPoint
	Witness        [][]byte
}

// OutPoint references a coin by (TxID, Vout) and embeds the coin data resolved for it,
// together with the height and time of the block that created it.
type OutPoint struct {
	TxID        chainhash.Hash
	Vout        uint32
	Data        TxOut
	BlockHeight uint32
	BlockTime   uint32
	IsCoinbase  bool
}

// TxOut is a transaction output. Value is signed so that negative amounts read from a
// signed encoding stay representable and can be rejected.
type TxOut struct {
	Value    int64
	PkScript []byte
	// Cached reports that the output data came from a local cache rather than a lookup.
	Cached bool
}

// IsNull reports whether the outpoint is the null reference used by coinbase inputs.
func (o OutPoint) IsNull() bool {
	return o.Vout == wire.MaxPrevOutIndex && o.TxID == (chainhash.Hash{})
}

// Key returns the (txid, vout) identity of the outpoint.
func (o OutPoint) Key() OutPointKey {
	return OutPointKey{TxID: o.TxID, Vout: o.Vout}
}

// OutPointKey identifies a coin without its resolved data.
type OutPointKey struct {
	TxID chainhash.Hash
	Vout uint32
}

// IsCoinbase reports whether tx is a coinbase: exactly one input spending the null outpoint.
func (tx *Transaction) IsCoinbase() bool {
	return len(tx.Inputs) == 1 && tx.Inputs[0].PreviousOutput.IsNull()
}

// MsgTx renders the transaction in btcd wire form. Witness data is only carried when
// IsSegwit is set.
func (tx *Transaction) MsgTx() *wire.MsgTx {
	msg := wire.NewMsgTx(tx.Version)
	msg.LockTime = tx.LockTime
	for _, in := range tx.Inputs {
		prev := in.PreviousOutput
		var witness wire.TxWitness
		if tx.IsSegwit && len(in.Witness) > 0 {
			witness = make(wire.TxWitness, len(in.Witness))
			copy(witness, in.Witness)
		}
		txIn := wire.NewTxIn(wire.NewOutPoint(&prev.TxID, prev.Vout), in.Script, witness)
		txIn.Sequence = in.Sequence
		msg.AddTxIn(txIn)
	}
	for _, out := range tx.Outputs {
		msg.AddTxOut(wire.NewTxOut(out.Value, out.PkScript))
	}
	return msg
}

// TxHash returns the transaction id of the wire rendering.
func (tx *Transaction) TxHash() chainhash.Hash {
	return tx.MsgTx().TxHash()
}
