package bitcoin

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	lru "github.com/hashicorp/golang-lru"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/workerpool"
)

const (
	defaultRPCCoinWorkers = 8
	maxCachedHeaders      = 10_000
)

// RPCCoinRepository resolves coins straight from the node with getrawtransaction. It needs a
// node running with -txindex and does not know whether a coin has been spent.
type RPCCoinRepository struct {
	rpc     NodeClient
	workers int
	headers *lru.Cache
}

// NewRPCCoinRepository constructs a repository issuing up to workers concurrent lookups.
func NewRPCCoinRepository(rpc NodeClient, workers int) (*RPCCoinRepository, error) {
	if workers <= 0 {
		workers = defaultRPCCoinWorkers
	}
	headers, err := lru.New(maxCachedHeaders)
	if err != nil {
		return nil, fmt.Errorf("create header cache: %w", err)
	}
	return &RPCCoinRepository{
		rpc:     rpc,
		workers: workers,
		headers: headers,
	}, nil
}

type txCoins struct {
	txid  string
	coins []model.UnspentCoin
}

// CoinsByTxIDs implements chain.CoinRepository. Unknown and unconfirmed transactions are
// left out of the result.
func (r *RPCCoinRepository) CoinsByTxIDs(ctx context.Context, coin model.Coin, network model.Network, txids []string) (map[string][]model.UnspentCoin, error) {
	found, err := workerpool.Map(ctx, r.workers, txids, func(_ context.Context, txid string) (txCoins, error) {
		coins, err := r.coinsForTx(coin, network, txid)
		if err != nil {
			return txCoins{}, err
		}
		return txCoins{txid: txid, coins: coins}, nil
	})
	if err != nil {
		return nil, err
	}

	result := make(map[string][]model.UnspentCoin, len(found))
	for _, f := range found {
		if len(f.coins) > 0 {
			result[f.txid] = f.coins
		}
	}
	return result, nil
}

func (r *RPCCoinRepository) coinsForTx(coin model.Coin, network model.Network, txid string) ([]model.UnspentCoin, error) {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %q: %w", txid, err)
	}

	raw, err := r.rpc.GetRawTransactionVerbose(hash)
	if err != nil {
		var rpcErr *btcjson.RPCError
		if errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCNoTxInfo {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw transaction %s: %w", txid, err)
	}
	if raw.BlockHash == "" {
		return nil, nil
	}

	msg, err := DecodeTransaction(raw.Hex)
	if err != nil {
		return nil, fmt.Errorf("tx %s: %w", txid, err)
	}
	origin, err := r.header(raw.BlockHash)
	if err != nil {
		return nil, err
	}

	coinbase := blockchain.IsCoinBaseTx(msg)
	blockTime := clock.FromUnixSeconds(origin.Time)
	coins := make([]model.UnspentCoin, 0, len(msg.TxOut))
	for idx, out := range msg.TxOut {
		vout, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("tx %s output index overflow: %w", txid, err)
		}
		coins = append(coins, model.UnspentCoin{
			Coin:        coin,
			Network:     network,
			TxID:        txid,
			Vout:        vout,
			Value:       out.Value,
			PkScriptHex: hex.EncodeToString(out.PkScript),
			BlockHeight: origin.Height,
			BlockTime:   blockTime,
			IsCoinbase:  coinbase,
		})
	}
	return coins, nil
}

func (r *RPCCoinRepository) header(blockHash string) (model.BlockContext, error) {
	if cached, ok := r.headers.Get(blockHash); ok {
		return cached.(model.BlockContext), nil
	}

	hash, err := chainhash.NewHashFromStr(blockHash)
	if err != nil {
		return model.BlockContext{}, fmt.Errorf("parse block hash %q: %w", blockHash, err)
	}
	header, err := r.rpc.GetBlockHeaderVerbose(hash)
	if err != nil {
		return model.BlockContext{}, fmt.Errorf("get block header %s: %w", blockHash, err)
	}
	origin, err := BlockContextFromHeader(*header)
	if err != nil {
		return model.BlockContext{}, err
	}

	r.headers.Add(blockHash, origin)
	return origin, nil
}
