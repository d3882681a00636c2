package validator

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/consensus"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeightFetcher interface {
		Fetch(ctx context.Context) ([]uint64, error)
	}
	BlockProcessor interface {
		Process(ctx context.Context, heights []uint64) error
	}
	BlockChecker interface {
		Check(ctx context.Context, block *model.Block) (model.BlockReport, error)
	}
	TxEvaluator interface {
		Evaluate(tx *model.Transaction, block model.BlockContext) (consensus.Verdict, error)
	}
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*chain.RawBlock, error)
	}
	CoinResolver interface {
		ResolveBlock(ctx context.Context, raw *chain.RawBlock) (*model.Block, error)
	}
	Repository interface {
		MaxValidatedHeight(ctx context.Context, coin model.Coin, network model.Network) (uint64, bool, error)
		InsertCoins(ctx context.Context, coins []model.UnspentCoin) error
		InsertValidationResults(ctx context.Context, results []model.ValidationResult) error
		InsertBlockReports(ctx context.Context, reports []model.BlockReport) error
	}
	FollowerValidatorMetrics interface {
		ObserveFetchHeights(err error, started time.Time)
		ObserveProcessBlock(err error, height uint64, started time.Time)
		ObserveNodeHeight(height uint64)
	}
	ValidationMetrics interface {
		ObserveTransaction(reason string, fee uint64, weight int64, started time.Time)
		ObserveBlock(status model.BlockStatus)
	}
)
