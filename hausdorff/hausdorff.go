package hausdorff

import "github.com/veskar/featdist/feature"

// Distance computes the symmetrized Hausdorff distance between two feature
// sets with early abandonment against the threshold.
//
// Pass 1 walks A, finding each feature's nearest neighbour in B, caching
// every pairwise distance on the way; the running maximum of those nearest
// distances is the directed distance A→B, returned as-is once it exceeds
// the threshold. Pass 2 derives B→A from the cached matrix. The abort test
// inside pass 2 follows Options.SumAbort (see the package doc); the
// non-aborted result is max(A→B, B→A).
//
// An empty operand yields Options.Max. Threshold +Inf reproduces the exact
// un-abandoned distance.
func Distance(a, b *feature.Set, threshold float64, opts Options) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilSet
	}
	metric := opts.Metric
	if metric == nil {
		metric = feature.PositionDistance
	}
	n, m := a.Len(), b.Len()
	if n == 0 || m == 0 {
		return opts.Max, nil
	}

	// Directed A→B, caching the full pairwise matrix.
	cache := make([]float64, n*m)
	var dirAB float64
	for i := 0; i < n; i++ {
		best := opts.Max
		for j := 0; j < m; j++ {
			d, err := metric(a.At(i), b.At(j), threshold)
			if err != nil {
				return 0, err
			}
			cache[i*m+j] = d
			if d < best {
				best = d
			}
		}
		if best > dirAB {
			dirAB = best
		}
		if dirAB > threshold {
			return dirAB, nil
		}
	}

	// Directed B→A from the cache.
	var dirBA float64
	for j := 0; j < m; j++ {
		best := opts.Max
		for i := 0; i < n; i++ {
			if d := cache[i*m+j]; d < best {
				best = d
			}
		}
		if best > dirBA {
			dirBA = best
		}
		if opts.SumAbort {
			if dirAB+dirBA > threshold {
				return dirAB + dirBA, nil
			}
		} else if maxOf(dirAB, dirBA) > threshold {
			return maxOf(dirAB, dirBA), nil
		}
	}

	return maxOf(dirAB, dirBA), nil
}

func maxOf(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
