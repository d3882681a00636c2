package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// RPCClient wraps a node client with metrics instrumentation.
type RPCClient struct {
	client     NodeClient
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(client NodeClient, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the latest block count.
func (r *RPCClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBlockHash returns the block hash for a height.
func (r *RPCClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetBlockVerboseTx returns a verbose block with transactions.
func (r *RPCClient) GetBlockVerboseTx(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseTxResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose_tx", err, started)
	}()
	return r.client.GetBlockVerboseTx(blockHash)
}

// GetBlockHeaderVerbose returns the header of a block.
func (r *RPCClient) GetBlockHeaderVerbose(blockHash *chainhash.Hash) (res *btcjson.GetBlockHeaderVerboseResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_header_verbose", err, started)
	}()
	return r.client.GetBlockHeaderVerbose(blockHash)
}

// GetRawTransactionVerbose returns a confirmed or mempool transaction by id.
func (r *RPCClient) GetRawTransactionVerbose(txHash *chainhash.Hash) (res *btcjson.TxRawResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction_verbose", err, started)
	}()
	return r.client.GetRawTransactionVerbose(txHash)
}
