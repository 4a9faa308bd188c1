package align

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/veskar/featdist/feature"
)

// Windowed computes the minimum alignment distance over the Cartesian
// product of spatial tiles: each operand is cut into the grid's windows and
// every non-empty tile of a is aligned against every non-empty tile of b.
// The best (lowest) tile-pair distance is returned — the strongest local
// match anywhere in the two tilings.
//
// Pairs involving an empty tile score the 1.0 ceiling and are skipped.
// With Options.Parallelism > 1 the tile pairs are scanned by a bounded
// worker pool; each pair is independent and the minimum is reduced under a
// mutex, so the result is identical to the sequential scan.
func Windowed(a, b *feature.Set, grid feature.Grid, opts Options) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilSet
	}
	if err := opts.validate(); err != nil {
		return 0, err
	}

	tilesA := cut(a, grid)
	tilesB := cut(b, grid)
	best := 1.0
	if len(tilesA) == 0 || len(tilesB) == 0 {
		return best, nil
	}

	if opts.Parallelism < 2 {
		for _, ta := range tilesA {
			for _, tb := range tilesB {
				d, err := Distance(ta, tb, opts)
				if err != nil {
					return 0, err
				}
				if d < best {
					best = d
				}
			}
		}

		return best, nil
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(opts.Parallelism)
	for _, ta := range tilesA {
		for _, tb := range tilesB {
			ta, tb := ta, tb
			g.Go(func() error {
				d, err := Distance(ta, tb, opts)
				if err != nil {
					return err
				}
				mu.Lock()
				if d < best {
					best = d
				}
				mu.Unlock()

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return best, nil
}

// cut slices the set into its non-empty tile subsets.
func cut(s *feature.Set, grid feature.Grid) []*feature.Set {
	tiles := make([]*feature.Set, 0, grid.Len())
	for i := 0; i < grid.Len(); i++ {
		sub := s.Within(grid.At(i))
		if sub.Len() > 0 {
			tiles = append(tiles, sub)
		}
	}

	return tiles
}
