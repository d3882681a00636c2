package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the part of the node RPC API the validator relies on.
	// *rpcclient.Client satisfies it.
	NodeClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockVerboseTx(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseTxResult, error)
		GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
