package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/metrics"
	noderpc "github.com/goodnatureofminers/blockinsight7000-validator/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/consensus"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/repository/clickhouse"
)

var config struct {
	Addr          string        `long:"addr" env:"API_GATEWAY_ADDR" description:"addr" default:":8000"`
	RestAddr      string        `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	Coin          model.Coin    `long:"coin" env:"API_GATEWAY_COIN" description:"coin name" default:"BTC"`
	Network       model.Network `long:"network" env:"API_GATEWAY_NETWORK" description:"network name" default:"mainnet"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN for stored results and coins"`
	RPCURL        string        `long:"rpc-url" env:"API_GATEWAY_RPC_URL" description:"Bitcoin RPC URL; enables raw transaction validation"`
	RPCUser       string        `long:"rpc-user" env:"API_GATEWAY_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"API_GATEWAY_RPC_PASSWORD" description:"Bitcoin RPC password"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	chainParams, err := bitcoin.ChainParams(config.Network)
	if err != nil {
		logger.Fatal("Unknown network", zap.Error(err))
	}

	var (
		deps     = map[string]transport.Pinger{}
		repos    []chain.CoinRepository
		results  transport.ResultStore
		resolver transport.TxResolver
		tip      transport.BlockContextSource
	)
	if config.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			logger.Fatal("Init repository", zap.Error(err))
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("Close repository", zap.Error(err))
			}
		}()
		deps["clickhouse"] = repo
		repos = append(repos, repo)
		results = repo
	}
	if config.RPCURL != "" {
		rpcClient, err := noderpc.Dial(config.RPCURL, config.RPCUser, config.RPCPassword)
		if err != nil {
			logger.Fatal("Init rpc client", zap.Error(err))
		}
		defer shutdownRPC(rpcClient)
		node := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(config.Coin, config.Network))
		rpcRepo, err := bitcoin.NewRPCCoinRepository(node, 0)
		if err != nil {
			logger.Fatal("Init rpc coin repository", zap.Error(err))
		}
		repos = append(repos, rpcRepo)
		tip = bitcoin.NewBlockSource(node, config.Network)
	}
	if len(repos) > 0 {
		resolver = chain.NewCoinResolver(config.Coin, config.Network, repos...)
	}

	interceptors := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(interceptors...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, transport.NewExplorerHandler(deps, logger.Named("health")))

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	mux := http.NewServeMux()

	gw := gwruntime.NewServeMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, config.Addr, opts); err != nil {
		logger.Fatal("Register explorer handler", zap.Error(err))
	}

	engine := consensus.NewValidator(consensus.NewParams(chainParams))
	logger.Info("Consensus params", zap.Any("params", engine.Params()))

	validation := transport.NewValidationHandler(
		engine,
		resolver,
		tip,
		results,
		metrics.NewValidator("api", config.Coin, config.Network),
		config.Coin,
		config.Network,
		logger.Named("validation"),
	)
	if err := validation.Register(gw); err != nil {
		logger.Fatal("Register validation handler", zap.Error(err))
	}

	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

func shutdownRPC(client *rpcclient.Client) {
	client.Shutdown()
	client.WaitForShutdown()
}
