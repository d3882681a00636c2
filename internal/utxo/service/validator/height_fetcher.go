package validator

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

// followerHeightFetcher returns the next contiguous run of heights after the validated tip.
type followerHeightFetcher struct {
	source      BlockSource
	repository  Repository
	metrics     FollowerValidatorMetrics
	coin        model.Coin
	network     model.Network
	startHeight uint64
	limit       uint64
}

func (f *followerHeightFetcher) Fetch(ctx context.Context) ([]uint64, error) {
	latest, err := f.source.LatestHeight(ctx)
	if err != nil {
		return nil, err
	}
	if f.metrics != nil {
		f.metrics.ObserveNodeHeight(latest)
	}

	next := f.startHeight
	validated, ok, err := f.repository.MaxValidatedHeight(ctx, f.coin, f.network)
	if err != nil {
		return nil, err
	}
	if ok && validated+1 > next {
		next = validated + 1
	}
	if next > latest {
		return nil, nil
	}

	last := latest
	if f.limit > 0 && last-next >= f.limit {
		last = next + f.limit - 1
	}

	heights := make([]uint64, 0, last-next+1)
	for h := next; h <= last; h++ {
		heights = append(heights, h)
	}
	return heights, nil
}
