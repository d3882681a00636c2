package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/safe"
)

const insertBlockReportsQuery = `
INSERT INTO utxo_validated_blocks (
	coin,
	network,
	height,
	hash,
	timestamp,
	tx_count,
	rejected,
	total_fees,
	status
) VALUES`

// InsertBlockReports stores one summary row per validated block.
func (r *Repository) InsertBlockReports(ctx context.Context, reports []model.BlockReport) (err error) {
	start := time.Now()
	coin, network := firstScope(reports)
	defer func() {
		r.metrics.Observe("insert_block_reports", coin, network, err, start)
	}()

	if len(reports) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlockReportsQuery)
	if err != nil {
		return fmt.Errorf("prepare block reports batch: %w", err)
	}

	for _, report := range reports {
		txCount, convErr := safe.Uint32(len(report.Results))
		if convErr != nil {
			err = convErr
			_ = batch.Abort()
			return fmt.Errorf("block %d tx count overflow: %w", report.Block.Height, err)
		}
		rejected, convErr := safe.Uint32(report.Rejected)
		if convErr != nil {
			err = convErr
			_ = batch.Abort()
			return fmt.Errorf("block %d rejected count overflow: %w", report.Block.Height, err)
		}

		if err = batch.Append(
			string(report.Block.Coin),
			string(report.Block.Network),
			report.Block.Height,
			report.Block.Hash,
			report.Block.Timestamp(),
			txCount,
			rejected,
			report.TotalFees,
			string(report.Status()),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block report %d: %w", report.Block.Height, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block reports: %w", err)
	}
	return nil
}
