// Package clickhouse stores the coin set, validation verdicts and validated block reports in
// ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

// Repository implements chain.CoinRepository and the validator persistence on ClickHouse.
type Repository struct {
	conn    Conn
	metrics Metrics
}

// NewRepository opens a ClickHouse connection for dsn.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: driverConn{conn: conn}, metrics: metrics}, nil
}

// Ping checks that ClickHouse is reachable.
func (r *Repository) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("ping", "", "", err, start)
	}()

	if err = r.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// driverConn adapts driver.Conn to Conn.
type driverConn struct {
	conn driver.Conn
}

func (c driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (c driverConn) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

func (c driverConn) Close() error {
	return c.conn.Close()
}

type scoped interface {
	model.UnspentCoin | model.ValidationResult | model.BlockReport
}

func firstScope[T scoped](items []T) (model.Coin, model.Network) {
	if len(items) == 0 {
		return "", ""
	}

	switch v := any(items[0]).(type) {
	case model.UnspentCoin:
		return v.Coin, v.Network
	case model.ValidationResult:
		return v.Coin, v.Network
	case model.BlockReport:
		return v.Block.Coin, v.Block.Network
	default:
		return "", ""
	}
}
