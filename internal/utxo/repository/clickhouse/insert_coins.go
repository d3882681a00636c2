package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

const insertCoinsQuery = `
INSERT INTO utxo_coins (
	coin,
	network,
	txid,
	vout,
	value,
	pk_script_hex,
	block_height,
	block_time,
	is_coinbase
) VALUES`

// InsertCoins stores coins so later blocks can resolve them.
func (r *Repository) InsertCoins(ctx context.Context, coins []model.UnspentCoin) (err error) {
	start := time.Now()
	coin, network := firstScope(coins)
	defer func() {
		r.metrics.Observe("insert_coins", coin, network, err, start)
	}()

	if len(coins) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertCoinsQuery)
	if err != nil {
		return fmt.Errorf("prepare coins batch: %w", err)
	}

	for _, c := range coins {
		if err = batch.Append(
			string(c.Coin),
			string(c.Network),
			c.TxID,
			c.Vout,
			c.Value,
			c.PkScriptHex,
			c.BlockHeight,
			c.BlockTime,
			c.IsCoinbase,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append coin %s:%d: %w", c.TxID, c.Vout, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert coins: %w", err)
	}
	return nil
}
