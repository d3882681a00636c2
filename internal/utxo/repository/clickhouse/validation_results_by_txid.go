package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

const validationResultsByTxIDQuery = `
SELECT
	block_height,
	argMax(block_hash, validated_at) AS block_hash,
	argMax(tx_index, validated_at) AS tx_index,
	argMax(valid, validated_at) AS valid,
	argMax(fee, validated_at) AS fee,
	argMax(weight, validated_at) AS weight,
	argMax(reason, validated_at) AS reason,
	argMax(message, validated_at) AS message,
	max(validated_at) AS last_validated_at
FROM utxo_validation_results
WHERE coin = ? AND network = ? AND txid = ?
GROUP BY block_height
ORDER BY block_height ASC`

// ValidationResultsByTxID returns the verdicts recorded for txid, one per block it appeared in.
func (r *Repository) ValidationResultsByTxID(ctx context.Context, coin model.Coin, network model.Network, txid string) (results []model.ValidationResult, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("validation_results_by_txid", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, validationResultsByTxIDQuery, string(coin), string(network), txid)
	if err != nil {
		return nil, fmt.Errorf("query validation results for tx %s: %w", txid, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		res := model.ValidationResult{Coin: coin, Network: network, TxID: txid}
		if err = rows.Scan(
			&res.BlockHeight,
			&res.BlockHash,
			&res.Index,
			&res.Valid,
			&res.Fee,
			&res.Weight,
			&res.Reason,
			&res.Message,
			&res.ValidatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan validation result: %w", err)
		}
		results = append(results, res)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate validation results: %w", err)
	}

	return results, nil
}
