// Package main validates a single transaction against the node's chain state.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/consensus"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/repository/clickhouse"
)

// exitRejected is the exit status for a transaction that breaks a consensus rule.
const exitRejected = 2

type config struct {
	TxID          string        `long:"txid" description:"id of a transaction known to the node"`
	Hex           string        `long:"hex" description:"serialized transaction"`
	Height        *uint32       `long:"height" description:"height of the candidate block; defaults to tip+1"`
	Time          *uint32       `long:"time" description:"time of the candidate block; defaults to the tip time"`
	Coin          model.Coin    `long:"coin" env:"VALIDATOR_COIN" description:"coin name" default:"BTC"`
	Network       model.Network `long:"network" env:"VALIDATOR_NETWORK" description:"network name" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"VALIDATOR_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"VALIDATOR_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"VALIDATOR_RPC_PASSWORD" description:"Bitcoin RPC password"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"VALIDATOR_CLICKHOUSE_DSN" description:"optional ClickHouse DSN consulted for coins before the node"`
}

type verdict struct {
	TxID   string              `json:"txid"`
	Valid  bool                `json:"valid"`
	Fee    uint64              `json:"fee"`
	Weight int64               `json:"weight"`
	Reason consensus.ErrorKind `json:"reason,omitempty"`
	Error  string              `json:"error,omitempty"`
	Block  blockContext        `json:"block"`
}

type blockContext struct {
	Height uint32 `json:"height"`
	Time   uint32 `json:"time"`
}

type tipSource interface {
	NextBlockContext(ctx context.Context) (model.BlockContext, error)
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if (cfg.TxID == "") == (cfg.Hex == "") {
		logger.Fatal("exactly one of --txid or --hex is required")
	}

	v, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("validate transaction failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.Fatal("write verdict", zap.Error(err))
	}
	if !v.Valid {
		_ = logger.Sync()
		os.Exit(exitRejected)
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (verdict, error) {
	chainParams, err := bitcoin.ChainParams(cfg.Network)
	if err != nil {
		return verdict{}, err
	}

	rpcClient, err := rpcclient.Dial(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return verdict{}, fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	node := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))

	var repos []chain.CoinRepository
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return verdict{}, fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		repos = append(repos, repo)
	}
	rpcRepo, err := bitcoin.NewRPCCoinRepository(node, 0)
	if err != nil {
		return verdict{}, err
	}
	repos = append(repos, rpcRepo)

	msg, err := loadTransaction(node, cfg)
	if err != nil {
		return verdict{}, err
	}

	block, err := candidateBlock(ctx, cfg, bitcoin.NewBlockSource(node, cfg.Network))
	if err != nil {
		return verdict{}, err
	}

	tx, err := chain.NewCoinResolver(cfg.Coin, cfg.Network, repos...).ResolveTransaction(ctx, msg)
	if err != nil {
		return verdict{}, err
	}

	logger.Debug("validating transaction",
		zap.String("txid", msg.TxHash().String()),
		zap.Uint32("height", block.Height),
		zap.Uint32("time", block.Time),
	)

	result, err := consensus.NewValidator(consensus.NewParams(chainParams)).Evaluate(tx, block)
	return newVerdict(tx, block, result, err)
}

// candidateBlock fills the flags left unset from the block that would follow the tip.
func candidateBlock(ctx context.Context, cfg config, tip tipSource) (model.BlockContext, error) {
	if cfg.Height != nil && cfg.Time != nil {
		return model.BlockContext{Height: *cfg.Height, Time: *cfg.Time}, nil
	}

	block, err := tip.NextBlockContext(ctx)
	if err != nil {
		return model.BlockContext{}, fmt.Errorf("next block context: %w", err)
	}
	if cfg.Height != nil {
		block.Height = *cfg.Height
	}
	if cfg.Time != nil {
		block.Time = *cfg.Time
	}
	return block, nil
}

func newVerdict(tx *model.Transaction, block model.BlockContext, result consensus.Verdict, err error) (verdict, error) {
	v := verdict{
		TxID:   tx.TxHash().String(),
		Valid:  err == nil,
		Fee:    result.Fee,
		Weight: result.Weight,
		Block:  blockContext{Height: block.Height, Time: block.Time},
	}
	if err != nil {
		kind, ok := consensus.KindOf(err)
		if !ok {
			return verdict{}, err
		}
		v.Reason = kind
		v.Error = err.Error()
		v.Weight = consensus.Weight(tx)
	}
	return v, nil
}

func loadTransaction(node bitcoin.NodeClient, cfg config) (*wire.MsgTx, error) {
	if cfg.Hex != "" {
		return bitcoin.DecodeTransaction(cfg.Hex)
	}

	hash, err := chainhash.NewHashFromStr(cfg.TxID)
	if err != nil {
		return nil, fmt.Errorf("parse txid: %w", err)
	}
	raw, err := node.GetRawTransactionVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", hash, err)
	}
	return bitcoin.DecodeTransaction(raw.Hex)
}
