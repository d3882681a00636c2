// Package bitcoin implements Bitcoin-specific chain access for the validator.
package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/safe"
)

// DecodeTransaction parses a hex encoded transaction, with or without witness data.
func DecodeTransaction(rawHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return nil, fmt.Errorf("decode tx hex: %w", err)
	}
	msg := &wire.MsgTx{}
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserialize tx: %w", err)
	}
	return msg, nil
}

// BuildBlockFromVerbose maps a btcjson block result into a model.Block header summary.
func BuildBlockFromVerbose(src btcjson.GetBlockVerboseTxResult, network model.Network) (model.Block, error) {
	height, err := safe.Uint32(src.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block height %d overflow: %w", src.Height, err)
	}
	timestamp, err := safe.Uint32(src.Time)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d time overflow: %w", src.Height, err)
	}

	return model.Block{
		Coin:    model.BTC,
		Network: network,
		Height:  height,
		Hash:    src.Hash,
		Time:    timestamp,
	}, nil
}

// BuildRawBlock decodes every transaction of src. The node must include raw hex in the
// verbose block result.
func BuildRawBlock(src btcjson.GetBlockVerboseTxResult, network model.Network) (*chain.RawBlock, error) {
	block, err := BuildBlockFromVerbose(src, network)
	if err != nil {
		return nil, err
	}

	txs := make([]*wire.MsgTx, 0, len(src.Tx))
	for _, tx := range src.Tx {
		if tx.Hex == "" {
			return nil, fmt.Errorf("block %d tx %s has no raw hex", block.Height, tx.Txid)
		}
		msg, err := DecodeTransaction(tx.Hex)
		if err != nil {
			return nil, fmt.Errorf("block %d tx %s: %w", block.Height, tx.Txid, err)
		}
		if got := msg.TxHash().String(); tx.Txid != "" && got != tx.Txid {
			return nil, fmt.Errorf("block %d tx %s decoded with id %s", block.Height, tx.Txid, got)
		}
		txs = append(txs, msg)
	}

	return &chain.RawBlock{Block: block, Txs: txs}, nil
}

// BlockContextFromHeader returns the validation context of a block header.
func BlockContextFromHeader(header btcjson.GetBlockHeaderVerboseResult) (model.BlockContext, error) {
	height, err := safe.Uint32(header.Height)
	if err != nil {
		return model.BlockContext{}, fmt.Errorf("header %s height overflow: %w", header.Hash, err)
	}
	timestamp, err := safe.Uint32(header.Time)
	if err != nil {
		return model.BlockContext{}, fmt.Errorf("header %s time overflow: %w", header.Hash, err)
	}
	return model.BlockContext{Height: height, Time: timestamp}, nil
}
