package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

const coinsByTxIDsQuery = `
SELECT
	txid,
	vout,
	argMax(value, updated_at) AS value,
	argMax(pk_script_hex, updated_at) AS pk_script_hex,
	argMax(block_height, updated_at) AS block_height,
	argMax(block_time, updated_at) AS block_time,
	argMax(is_coinbase, updated_at) AS is_coinbase
FROM utxo_coins
WHERE coin = ? AND network = ? AND txid IN ?
GROUP BY
	txid,
	vout
ORDER BY vout ASC`

// CoinsByTxIDs returns the stored coins created by the given transactions.
func (r *Repository) CoinsByTxIDs(ctx context.Context, coin model.Coin, network model.Network, txids []string) (result map[string][]model.UnspentCoin, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("coins_by_txids", coin, network, err, start)
	}()

	result = make(map[string][]model.UnspentCoin, len(txids))
	if len(txids) == 0 {
		return result, nil
	}

	rows, err := r.conn.Query(ctx, coinsByTxIDsQuery, string(coin), string(network), txids)
	if err != nil {
		return nil, fmt.Errorf("query coins by txids: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		c := model.UnspentCoin{Coin: coin, Network: network}
		if err = rows.Scan(
			&c.TxID,
			&c.Vout,
			&c.Value,
			&c.PkScriptHex,
			&c.BlockHeight,
			&c.BlockTime,
			&c.IsCoinbase,
		); err != nil {
			return nil, fmt.Errorf("scan coin: %w", err)
		}
		result[c.TxID] = append(result[c.TxID], c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coins: %w", err)
	}

	return result, nil
}
