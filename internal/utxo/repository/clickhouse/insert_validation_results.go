package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

const insertValidationResultsQuery = `
INSERT INTO utxo_validation_results (
	coin,
	network,
	block_height,
	block_hash,
	txid,
	tx_index,
	valid,
	fee,
	weight,
	reason,
	message,
	validated_at
) VALUES`

// InsertValidationResults stores per-transaction verdicts.
func (r *Repository) InsertValidationResults(ctx context.Context, results []model.ValidationResult) (err error) {
	start := time.Now()
	coin, network := firstScope(results)
	defer func() {
		r.metrics.Observe("insert_validation_results", coin, network, err, start)
	}()

	if len(results) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertValidationResultsQuery)
	if err != nil {
		return fmt.Errorf("prepare validation results batch: %w", err)
	}

	for _, res := range results {
		if err = batch.Append(
			string(res.Coin),
			string(res.Network),
			res.BlockHeight,
			res.BlockHash,
			res.TxID,
			res.Index,
			res.Valid,
			res.Fee,
			res.Weight,
			res.Reason,
			res.Message,
			res.ValidatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append validation result %s: %w", res.TxID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert validation results: %w", err)
	}
	return nil
}
