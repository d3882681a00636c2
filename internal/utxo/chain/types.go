// Package chain defines interfaces and structs shared between UTXO validation components.
package chain

import (
	"context"

	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// BlockSource provides raw blocks to validate.
type BlockSource interface {
	LatestHeight(ctx context.Context) (uint64, error)
	FetchBlock(ctx context.Context, height uint64) (*RawBlock, error)
}

// CoinRepository looks up the outputs created by the given transactions. Transactions the
// repository does not know are absent from the result.
type CoinRepository interface {
	CoinsByTxIDs(ctx context.Context, coin model.Coin, network model.Network, txids []string) (map[string][]model.UnspentCoin, error)
}

// RawBlock is a block header summary together with its decoded wire transactions, before
// previous outputs are resolved.
type RawBlock struct {
	Block model.Block
	Txs   []*wire.MsgTx
}
