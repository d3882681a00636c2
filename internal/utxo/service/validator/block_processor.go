package validator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/batcher"
)

// followerBlockProcessor validates heights in order. Created coins are written before the
// next height is resolved, results go through a batcher and block reports are written
// last, so the validated tip never runs ahead of the stored results.
type followerBlockProcessor struct {
	source   BlockSource
	resolver CoinResolver
	checker  BlockChecker
	repo     Repository
	metrics  FollowerValidatorMetrics
	logger   *zap.Logger

	flushSize     int
	flushInterval time.Duration
	writeRate     int
}

func (p *followerBlockProcessor) Process(ctx context.Context, heights []uint64) error {
	if len(heights) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var flushErr error
	var flushMu sync.Mutex

	recordErr := func(e error) {
		flushMu.Lock()
		defer flushMu.Unlock()
		if flushErr == nil {
			flushErr = e
			cancel()
		}
	}
	// A failed flush cancels ctx; report the flush failure rather than the cancellation.
	firstErr := func(e error) error {
		flushMu.Lock()
		defer flushMu.Unlock()
		if flushErr != nil {
			return fmt.Errorf("insert validation results: %w", flushErr)
		}
		return e
	}

	b := batcher.New[model.ValidationResult](
		p.logger.Named("resultBatcher"),
		func(ctx context.Context, results []model.ValidationResult) error {
			if err := p.repo.InsertValidationResults(ctx, results); err != nil {
				recordErr(err)
				return err
			}
			return nil
		},
		p.flushSize,
		p.flushInterval,
		p.writeRate,
	)
	b.Start(ctx)
	defer b.Stop()

	reports := make([]model.BlockReport, 0, len(heights))
	for _, h := range heights {
		if err := ctx.Err(); err != nil {
			return firstErr(err)
		}

		started := time.Now()
		report, err := p.processHeight(ctx, h)
		p.metrics.ObserveProcessBlock(err, h, started)
		if err != nil {
			return firstErr(fmt.Errorf("process height %d: %w", h, err))
		}

		for _, r := range report.Results {
			if err := b.Add(ctx, r); err != nil {
				return firstErr(err)
			}
		}
		reports = append(reports, report)
	}

	b.Stop()
	if err := firstErr(nil); err != nil {
		return err
	}

	if err := p.repo.InsertBlockReports(ctx, reports); err != nil {
		return fmt.Errorf("insert block reports: %w", err)
	}
	return nil
}

func (p *followerBlockProcessor) processHeight(ctx context.Context, height uint64) (model.BlockReport, error) {
	raw, err := p.source.FetchBlock(ctx, height)
	if err != nil {
		return model.BlockReport{}, fmt.Errorf("fetch block: %w", err)
	}

	block, err := p.resolver.ResolveBlock(ctx, raw)
	if err != nil {
		return model.BlockReport{}, err
	}

	report, err := p.checker.Check(ctx, block)
	if err != nil {
		return model.BlockReport{}, err
	}

	coins, err := chain.CreatedCoins(block)
	if err != nil {
		return model.BlockReport{}, err
	}
	if err = p.repo.InsertCoins(ctx, coins); err != nil {
		return model.BlockReport{}, fmt.Errorf("insert coins: %w", err)
	}

	logger := p.logger.With(zap.Uint64("height", height), zap.String("hash", block.Hash))
	if report.Rejected > 0 {
		logger.Warn("block has rejected transactions",
			zap.Int("rejected", report.Rejected),
			zap.Int("transactions", len(report.Results)),
		)
	} else {
		logger.Debug("block validated",
			zap.Int("transactions", len(report.Results)),
			zap.Uint64("fees", report.TotalFees),
		)
	}
	return report, nil
}
