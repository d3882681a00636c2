package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records repository call outcomes.
	Metrics interface {
		Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time)
	}

	// Conn is the part of the ClickHouse driver connection the repository uses.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Ping(ctx context.Context) error
		Close() error
	}

	// Rows iterates over a query result.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}

	// Batch collects rows for a single INSERT.
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
)
