// Package main runs the follower that validates every new block the node reports.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/consensus"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/service/validator"
)

type config struct {
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"VALIDATOR_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Coin           model.Coin    `long:"coin" env:"VALIDATOR_COIN" description:"coin name" default:"BTC"`
	Network        model.Network `long:"network" env:"VALIDATOR_NETWORK" description:"network name" default:"mainnet"`
	RPCURL         string        `long:"rpc-url" env:"VALIDATOR_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser        string        `long:"rpc-user" env:"VALIDATOR_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"VALIDATOR_RPC_PASSWORD" description:"Bitcoin RPC password"`
	NoRPCFallback  bool          `long:"no-rpc-fallback" env:"VALIDATOR_NO_RPC_FALLBACK" description:"do not look up coins missing from ClickHouse via getrawtransaction"`
	RPCCoinWorkers int           `long:"rpc-coin-workers" env:"VALIDATOR_RPC_COIN_WORKERS" description:"parallel getrawtransaction calls" default:"8"`
	StartHeight    uint64        `long:"start-height" env:"VALIDATOR_START_HEIGHT" description:"first height to validate when nothing was validated yet"`
	BatchLimit     uint64        `long:"batch-limit" env:"VALIDATOR_BATCH_LIMIT" description:"heights processed per iteration" default:"100"`
	Workers        int           `long:"workers" env:"VALIDATOR_WORKERS" description:"transactions validated in parallel per block" default:"8"`
	FlushSize      int           `long:"flush-size" env:"VALIDATOR_FLUSH_SIZE" description:"validation results per insert" default:"5000"`
	FlushInterval  time.Duration `long:"flush-interval" env:"VALIDATOR_FLUSH_INTERVAL" description:"max delay before results are inserted" default:"1s"`
	WriteRate      int           `long:"write-rate" env:"VALIDATOR_WRITE_RATE" description:"max result inserts per second" default:"20"`
	MetricsAddr    string        `long:"metrics-addr" env:"VALIDATOR_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("follower validator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	chainParams, err := bitcoin.ChainParams(cfg.Network)
	if err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()
	if err := repo.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}

	rpcClient, err := rpcclient.Dial(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	node := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))

	repos := []chain.CoinRepository{repo}
	if !cfg.NoRPCFallback {
		rpcRepo, err := bitcoin.NewRPCCoinRepository(node, cfg.RPCCoinWorkers)
		if err != nil {
			return err
		}
		repos = append(repos, rpcRepo)
	}

	engine := consensus.NewValidator(consensus.NewParams(chainParams))
	logger.Info("consensus params", zap.Any("params", engine.Params()))

	svc, err := validator.NewFollowerValidatorService(
		repo,
		bitcoin.NewBlockSource(node, cfg.Network),
		chain.NewCoinResolver(cfg.Coin, cfg.Network, repos...),
		engine,
		metrics.NewFollowerValidator(cfg.Coin, cfg.Network),
		metrics.NewValidator("follower", cfg.Coin, cfg.Network),
		cfg.Coin,
		cfg.Network,
		validator.FollowerConfig{
			StartHeight:   cfg.StartHeight,
			BatchLimit:    cfg.BatchLimit,
			Workers:       cfg.Workers,
			FlushSize:     cfg.FlushSize,
			FlushInterval: cfg.FlushInterval,
			WriteRate:     cfg.WriteRate,
		},
		logger.Named("follower"),
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
