package validator

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/consensus"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/workerpool"
)

// Checker validates every transaction of a resolved block and aggregates the verdicts.
type Checker struct {
	evaluator TxEvaluator
	metrics   ValidationMetrics
	workers   int
	now       func() time.Time
}

// NewChecker constructs a Checker running up to workers validations at once.
func NewChecker(evaluator TxEvaluator, metrics ValidationMetrics, workers int) *Checker {
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	return &Checker{
		evaluator: evaluator,
		metrics:   metrics,
		workers:   workers,
		now:       time.Now,
	}
}

// Check validates the transactions of block concurrently. Rule violations are recorded in
// the report; only unexpected failures are returned as errors.
func (c *Checker) Check(ctx context.Context, block *model.Block) (model.BlockReport, error) {
	if len(block.TxIDs) != len(block.Transactions) {
		return model.BlockReport{}, fmt.Errorf("block %d has %d txids for %d transactions",
			block.Height, len(block.TxIDs), len(block.Transactions))
	}

	indexes := make([]int, len(block.Transactions))
	for i := range indexes {
		indexes[i] = i
	}

	results, err := workerpool.Map(ctx, c.workers, indexes, func(_ context.Context, i int) (model.ValidationResult, error) {
		return c.checkTx(block, i)
	})
	if err != nil {
		return model.BlockReport{}, fmt.Errorf("validate block %d: %w", block.Height, err)
	}

	report := model.BlockReport{Block: *block, Results: results}
	for _, r := range results {
		if !r.Valid {
			report.Rejected++
			continue
		}
		if report.TotalFees, err = safe.AddUint64(report.TotalFees, r.Fee); err != nil {
			return model.BlockReport{}, fmt.Errorf("total fees of block %d: %w", block.Height, err)
		}
	}

	if c.metrics != nil {
		c.metrics.ObserveBlock(report.Status())
	}
	return report, nil
}

func (c *Checker) checkTx(block *model.Block, i int) (model.ValidationResult, error) {
	index, err := safe.Uint32(i)
	if err != nil {
		return model.ValidationResult{}, fmt.Errorf("tx index: %w", err)
	}

	started := time.Now()
	tx := &block.Transactions[i]
	verdict, err := c.evaluator.Evaluate(tx, block.Context())

	result := model.ValidationResult{
		Coin:        block.Coin,
		Network:     block.Network,
		BlockHeight: block.Height,
		BlockHash:   block.Hash,
		TxID:        block.TxIDs[i],
		Index:       index,
		ValidatedAt: c.now().UTC(),
	}
	if err != nil {
		kind, ok := consensus.KindOf(err)
		if !ok {
			return model.ValidationResult{}, fmt.Errorf("tx %s: %w", result.TxID, err)
		}
		result.Reason = string(kind)
		result.Message = err.Error()
		result.Weight = consensus.Weight(tx)
	} else {
		result.Valid = true
		result.Fee = verdict.Fee
		result.Weight = verdict.Weight
	}

	if c.metrics != nil {
		c.metrics.ObserveTransaction(result.Reason, result.Fee, result.Weight, started)
	}
	return result, nil
}
