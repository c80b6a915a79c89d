package markov

import (
	"sync"

	"monopolycore/coreerrors"
)

const (
	// convergenceTolerance is the max absolute per-entry change across a
	// sweep that counts as converged.
	convergenceTolerance = 1e-12
	// maxIterations bounds the power-iteration budget; exceeding it
	// without convergence is reported as MarkovNonConvergent.
	maxIterations = 100_000
)

// Solve computes the stationary distribution of a row-stochastic
// transition matrix via power iteration: repeatedly left-multiplying a
// probability vector by P until it stops changing. nworkers splits each
// sweep's matrix-vector product across that many goroutines; nworkers <= 1
// runs the sweep on the calling goroutine.
//
// Solve validates that every row sums to 1 before iterating; a violation
// there is a programmer error in the chain construction, not a condition
// a caller can recover from, so it is reported as an Internal error
// alongside MarkovNonConvergent for the iteration budget.
func Solve(p [][]float64, nworkers int) ([]float64, error) {
	n := len(p)
	if err := validateStochastic(p); err != nil {
		return nil, err
	}

	pi := make([]float64, n)
	for i := range pi {
		pi[i] = 1.0 / float64(n)
	}

	next := make([]float64, n)
	for iter := 0; iter < maxIterations; iter++ {
		sweep(p, pi, next, nworkers)

		delta := 0.0
		for i := 0; i < n; i++ {
			d := next[i] - pi[i]
			if d < 0 {
				d = -d
			}
			if d > delta {
				delta = d
			}
		}

		pi, next = next, pi
		if delta <= convergenceTolerance {
			normalize(pi)
			return pi, nil
		}
	}

	return nil, coreerrors.MarkovNonConvergent("power iteration did not converge within %d sweeps", maxIterations)
}

// sweep computes next = pi * p, i.e. next[j] = sum_i pi[i] * p[i][j].
// Column ranges are partitioned across nworkers goroutines; each owns a
// disjoint slice of next so there is no shared-write contention and no
// locking is needed on the hot path.
func sweep(p [][]float64, pi, next []float64, nworkers int) {
	n := len(pi)
	for j := range next {
		next[j] = 0
	}

	if nworkers <= 1 || n < nworkers {
		accumulateColumns(p, pi, next, 0, n)
		return
	}

	chunk := (n + nworkers - 1) / nworkers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			accumulateColumns(p, pi, next, start, end)
		}(start, end)
	}
	wg.Wait()
}

// accumulateColumns fills next[colStart:colEnd] from pi and p. Each
// worker owns a disjoint column range, so writes never race.
func accumulateColumns(p [][]float64, pi, next []float64, colStart, colEnd int) {
	n := len(pi)
	for j := colStart; j < colEnd; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += pi[i] * p[i][j]
		}
		next[j] = sum
	}
}

func normalize(pi []float64) {
	total := 0.0
	for _, v := range pi {
		total += v
	}
	if total == 0 {
		return
	}
	for i := range pi {
		pi[i] /= total
	}
}

func validateStochastic(p [][]float64) error {
	for i, row := range p {
		if len(row) != len(p) {
			return coreerrors.Internal("transition row %d has length %d, want %d", i, len(row), len(p))
		}
		sum := 0.0
		for _, v := range row {
			if v < 0 {
				return coreerrors.Internal("transition row %d has negative entry %f", i, v)
			}
			sum += v
		}
		if diff := sum - 1.0; diff < -1e-9 || diff > 1e-9 {
			return coreerrors.Internal("transition row %d sums to %f, want 1.0", i, sum)
		}
	}
	return nil
}
