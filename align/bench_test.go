package align_test

import (
	"testing"

	"github.com/veskar/featdist/align"
	"github.com/veskar/featdist/feature"
)

// benchmarkDistance is a helper that aligns two synthetic n×m feature sets
// using opts. It resets the timer before entering the loop and fails on
// unexpected errors.
func benchmarkDistance(b *testing.B, n, m int, opts align.Options) {
	fa := make([]feature.Feature, n)
	fb := make([]feature.Feature, m)
	for i := 0; i < n; i++ {
		fa[i] = feature.New(float64(i%37)/37, float64(i%53)/53)
	}
	for j := 0; j < m; j++ {
		fb[j] = feature.New(float64(j%37)/37, float64(j%53)/53)
	}
	sa, sb := feature.NewSet(fa...), feature.NewSet(fb...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Distance(sa, sb, opts); err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

// BenchmarkDistance_LocalSmall benchmarks Smith-Waterman on 50×50 sets.
func BenchmarkDistance_LocalSmall(b *testing.B) {
	benchmarkDistance(b, 50, 50, align.DefaultOptions())
}

// BenchmarkDistance_LocalMedium benchmarks Smith-Waterman on 200×200 sets.
func BenchmarkDistance_LocalMedium(b *testing.B) {
	benchmarkDistance(b, 200, 200, align.DefaultOptions())
}

// BenchmarkDistance_GlobalMedium benchmarks Needleman-Wunsch on 200×200 sets.
func BenchmarkDistance_GlobalMedium(b *testing.B) {
	opts := align.DefaultOptions()
	opts.Mode = align.Global
	benchmarkDistance(b, 200, 200, opts)
}

// benchmarkWindowed runs the tiled scan over quarter windows.
func benchmarkWindowed(b *testing.B, n int, parallelism int) {
	feats := make([]feature.Feature, n)
	for i := 0; i < n; i++ {
		feats[i] = feature.New(float64(i%101)/101, float64(i%97)/97)
	}
	sa, sb := feature.NewSet(feats...), feature.NewSet(feats...)
	grid, err := feature.NewGrid(0.25, 0.25, 0.25, 0.25)
	if err != nil {
		b.Fatalf("NewGrid failed: %v", err)
	}
	opts := align.DefaultOptions()
	opts.Parallelism = parallelism

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = align.Windowed(sa, sb, grid, opts); err != nil {
			b.Fatalf("Windowed failed: %v", err)
		}
	}
}

// BenchmarkWindowed_Sequential benchmarks the sequential tile-pair scan.
func BenchmarkWindowed_Sequential(b *testing.B) {
	benchmarkWindowed(b, 200, 1)
}

// BenchmarkWindowed_Parallel4 benchmarks the bounded worker-pool scan.
func BenchmarkWindowed_Parallel4(b *testing.B) {
	benchmarkWindowed(b, 200, 4)
}
