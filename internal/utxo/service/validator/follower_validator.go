// Package validator runs the consensus engine over the blocks a node produces and stores
// the verdicts.
package validator

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

// FollowerConfig tunes the follower loop. Zero values fall back to defaults.
type FollowerConfig struct {
	StartHeight   uint64
	BatchLimit    uint64
	Workers       int
	FlushSize     int
	FlushInterval time.Duration
	WriteRate     int
}

// FollowerValidatorService validates new blocks as the node reports them.
type FollowerValidatorService struct {
	logger            *zap.Logger
	coin              model.Coin
	network           model.Network
	metrics           FollowerValidatorMetrics
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	longSleepDuration time.Duration
	batchLimit        uint64
	heightFetcher     HeightFetcher
	blockProcessor    BlockProcessor
}

// NewFollowerValidatorService builds a FollowerValidatorService with dependencies.
func NewFollowerValidatorService(
	repo Repository,
	source BlockSource,
	resolver CoinResolver,
	evaluator TxEvaluator,
	metrics FollowerValidatorMetrics,
	validationMetrics ValidationMetrics,
	coin model.Coin,
	network model.Network,
	cfg FollowerConfig,
	logger *zap.Logger,
) (*FollowerValidatorService, error) {
	if metrics == nil {
		return nil, errors.New("follower validator metrics is required")
	}
	if evaluator == nil {
		return nil, errors.New("transaction evaluator is required")
	}
	logger = logger.With(
		zap.String("coin", string(coin)),
		zap.String("network", string(network)),
	)

	if cfg.BatchLimit == 0 {
		cfg.BatchLimit = heightBatchLimit
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = resultFlushThreshold
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = resultFlushInterval
	}
	if cfg.WriteRate <= 0 {
		cfg.WriteRate = resultWriteRate
	}

	return &FollowerValidatorService{
		logger:            logger,
		coin:              coin,
		network:           network,
		metrics:           metrics,
		sleep:             clock.SleepWithContext,
		sleepDuration:     sleepDuration,
		longSleepDuration: longSleepDuration,
		batchLimit:        cfg.BatchLimit,
		heightFetcher: &followerHeightFetcher{
			source:      source,
			repository:  repo,
			metrics:     metrics,
			coin:        coin,
			network:     network,
			startHeight: cfg.StartHeight,
			limit:       cfg.BatchLimit,
		},
		blockProcessor: &followerBlockProcessor{
			source:        source,
			resolver:      resolver,
			checker:       NewChecker(evaluator, validationMetrics, cfg.Workers),
			repo:          repo,
			metrics:       metrics,
			logger:        logger.Named("blockProcessor"),
			flushSize:     cfg.FlushSize,
			flushInterval: cfg.FlushInterval,
			writeRate:     cfg.WriteRate,
		},
	}, nil
}

// Run starts the follower loop until the context is canceled.
func (s *FollowerValidatorService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.sleep(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *FollowerValidatorService) run(ctx context.Context) error {
	started := time.Now()
	heights, err := s.heightFetcher.Fetch(ctx)
	s.metrics.ObserveFetchHeights(err, started)
	if err != nil {
		s.logger.Error("fetch follower heights failed", zap.Error(err))
		return err
	}

	if len(heights) == 0 {
		s.logger.Debug("no new heights discovered; sleeping", zap.Duration("sleep", s.longSleepDuration))
		return s.sleep(ctx, s.longSleepDuration)
	}

	s.logger.Info("validating blocks",
		zap.Uint64("from", heights[0]),
		zap.Uint64("to", heights[len(heights)-1]),
	)
	if err = s.blockProcessor.Process(ctx, heights); err != nil {
		return err
	}

	// A full batch means the node is further ahead; keep going without sleeping.
	if s.batchLimit > 0 && uint64(len(heights)) >= s.batchLimit {
		return nil
	}
	return s.sleep(ctx, s.sleepDuration)
}
