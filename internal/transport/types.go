package transport

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/consensus"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Pinger interface {
		Ping(ctx context.Context) error
	}
	TxEvaluator interface {
		Evaluate(tx *model.Transaction, block model.BlockContext) (consensus.Verdict, error)
	}
	TxResolver interface {
		ResolveTransaction(ctx context.Context, msg *wire.MsgTx) (*model.Transaction, error)
	}
	ResultStore interface {
		ValidationResultsByTxID(ctx context.Context, coin model.Coin, network model.Network, txid string) ([]model.ValidationResult, error)
	}
	BlockContextSource interface {
		NextBlockContext(ctx context.Context) (model.BlockContext, error)
	}
	ValidationMetrics interface {
		ObserveTransaction(reason string, fee uint64, weight int64, started time.Time)
	}
)
