package pinn

import (
	"io"

	"github.com/pkg/errors"

	"github.com/born-ml/pinn/internal/parallel"
)

// Sweep trains one model per seed, each a full Run of base with that seed,
// on up to workers goroutines. Epoch lines are discarded. Results are in seed
// order.
func Sweep(base Config, seeds []uint64, workers int) ([]*Result, error) {
	results := make([]*Result, len(seeds))
	err := parallel.For(len(seeds), func(i int) error {
		cfg := base
		cfg.Seed = seeds[i]
		res, err := Run(cfg, WithOutput(io.Discard))
		if err != nil {
			return errors.Wrapf(err, "seed %d", seeds[i])
		}
		results[i] = res
		return nil
	}, parallel.Config{Enabled: workers > 1, NumWorkers: workers})
	if err != nil {
		return nil, err
	}
	return results, nil
}
