package bitcoin

import (
	"context"
	"fmt"
	"math"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/safe"
)

// BlockSource implements chain.BlockSource for Bitcoin.
type BlockSource struct {
	rpc     NodeClient
	network model.Network
}

// NewBlockSource creates a BlockSource for Bitcoin.
func NewBlockSource(rpc NodeClient, network model.Network) *BlockSource {
	return &BlockSource{
		rpc:     rpc,
		network: network,
	}
}

// LatestHeight returns the latest block height available from the node.
func (s *BlockSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves a block with its decoded transactions at the given height.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (*chain.RawBlock, error) {
	if height > math.MaxInt64 {
		return nil, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	src, err := s.rpc.GetBlockVerboseTx(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	return BuildRawBlock(*src, s.network)
}

// NextBlockContext returns the context of the block that would follow the current tip:
// one above the tip height, stamped with the tip header time.
func (s *BlockSource) NextBlockContext(ctx context.Context) (model.BlockContext, error) {
	if err := ctx.Err(); err != nil {
		return model.BlockContext{}, err
	}

	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return model.BlockContext{}, err
	}
	hash, err := s.rpc.GetBlockHash(count)
	if err != nil {
		return model.BlockContext{}, fmt.Errorf("get tip hash at height %d: %w", count, err)
	}
	header, err := s.rpc.GetBlockHeaderVerbose(hash)
	if err != nil {
		return model.BlockContext{}, fmt.Errorf("get tip header %s: %w", hash, err)
	}

	tip, err := BlockContextFromHeader(*header)
	if err != nil {
		return model.BlockContext{}, err
	}
	if tip.Height == math.MaxUint32 {
		return model.BlockContext{}, fmt.Errorf("tip height %d has no successor", tip.Height)
	}
	tip.Height++
	return tip, nil
}
