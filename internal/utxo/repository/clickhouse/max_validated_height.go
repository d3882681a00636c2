package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

const maxValidatedHeightQuery = `
SELECT
	coalesce(max(height), toUInt32(0)) AS max_height,
	count() AS blocks
FROM utxo_validated_blocks
WHERE coin = ? AND network = ?`

// MaxValidatedHeight returns the highest validated block. ok is false when no block has been
// validated yet.
func (r *Repository) MaxValidatedHeight(ctx context.Context, coin model.Coin, network model.Network) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_validated_height", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxValidatedHeightQuery, string(coin), string(network))
	if err != nil {
		return 0, false, fmt.Errorf("query max validated height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, false, fmt.Errorf("max validated height not found")
	}

	var (
		maxHeight uint32
		blocks    uint64
	)
	if err = rows.Scan(&maxHeight, &blocks); err != nil {
		return 0, false, fmt.Errorf("scan max validated height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max validated height: %w", err)
	}

	return uint64(maxHeight), blocks > 0, nil
}
