// Package montecarlo runs an independent random-walk simulation of the
// board and cross-checks its empirical landing frequencies against the
// Markov engine's analytic stationary distribution, per the engine's
// Monte-Carlo divergence obligation. Workers generate turns concurrently
// and a single aggregator folds their counts together, mirroring the
// worker/estimator split the reinforcement-learning trainer this package
// was adapted from uses for its own episode generation.
package montecarlo

import (
	"context"
	"math/rand"

	channerics "github.com/niceyeti/channerics/channels"

	"monopolycore/atomic_float"
	"monopolycore/board"
	"monopolycore/markov"
)

// DivergenceBoundPP is the maximum tolerated absolute difference, in
// percentage points, between a simulated landing frequency and the
// analytic stationary probability for the same state.
const DivergenceBoundPP = 0.15

// Config tunes one simulation run.
type Config struct {
	// Turns is the total number of turns to simulate, split evenly across
	// NWorkers. Each worker runs Turns/NWorkers turns, so any remainder of
	// that division is not simulated.
	Turns int64
	// NWorkers is the number of concurrent walker goroutines.
	NWorkers int
	// Seed seeds each worker's independent RNG (worker i uses Seed+i), so a
	// run is reproducible for a fixed Seed and NWorkers.
	Seed int64
	// BatchSize is the number of turns a worker simulates before reporting
	// its batch to the aggregator. Larger batches mean less channel
	// traffic; smaller batches mean more responsive progress reporting.
	BatchSize int64
	// ProgressFn, if set, is called after each batch is folded in with the
	// cumulative number of turns completed so far.
	ProgressFn func(turnsDone int64)
	// Progress, if set, receives a snapshot Result after each batch is
	// folded in, for a live consumer such as the dashboard server. Sends
	// are non-blocking: a slow consumer misses intermediate snapshots
	// rather than stalling the simulation.
	Progress chan<- *Result
}

// Result holds the empirical landing counts from a completed run.
type Result struct {
	Policy     markov.JailPolicy
	TotalTurns int64
	Counts     []int64
}

// Frequencies returns the empirical landing probability for each state.
func (r *Result) Frequencies() []float64 {
	freq := make([]float64, len(r.Counts))
	if r.TotalTurns == 0 {
		return freq
	}
	for i, c := range r.Counts {
		freq[i] = float64(c) / float64(r.TotalTurns)
	}
	return freq
}

// MaxDivergencePP returns the largest absolute difference, in percentage
// points, between this result's empirical frequencies and stationary (the
// analytic stationary distribution for the same policy), and the state at
// which it occurs.
func (r *Result) MaxDivergencePP(stationary []float64) (pp float64, state int) {
	freq := r.Frequencies()
	for i := range freq {
		d := (freq[i] - stationary[i]) * 100
		if d < 0 {
			d = -d
		}
		if d > pp {
			pp = d
			state = i
		}
	}
	return pp, state
}

// batch is one worker's contribution between progress reports.
type batch struct {
	counts []int64
	turns  int64
}

// Run simulates cfg.Turns turns of the given jail policy and returns the
// resulting landing-frequency counts. Cancelling ctx stops all workers and
// returns the partial counts accumulated so far along with ctx.Err().
func Run(ctx context.Context, b *board.Board, policy markov.JailPolicy, cfg Config) (*Result, error) {
	nstates := policy.NumStates()
	totals := make([]*atomic_float.AtomicInt64, nstates)
	for i := range totals {
		totals[i] = atomic_float.NewAtomicInt64(0)
	}

	done := ctx.Done()
	nworkers := cfg.NWorkers
	if nworkers < 1 {
		nworkers = 1
	}
	batchSize := cfg.BatchSize
	if batchSize < 1 {
		batchSize = 1000
	}
	perWorker := cfg.Turns / int64(nworkers)

	workers := make([]<-chan *batch, 0, nworkers)
	for w := 0; w < nworkers; w++ {
		workers = append(workers, walk(done, b, policy, perWorker, cfg.Seed+int64(w), batchSize, nstates))
	}

	var completed int64
	for bt := range channerics.Merge(done, workers...) {
		for i, c := range bt.counts {
			if c != 0 {
				totals[i].AtomicAdd(c)
			}
		}
		completed += bt.turns
		if cfg.ProgressFn != nil {
			cfg.ProgressFn(completed)
		}
		if cfg.Progress != nil {
			snapshot := make([]int64, nstates)
			for i, t := range totals {
				snapshot[i] = t.AtomicRead()
			}
			select {
			case cfg.Progress <- &Result{Policy: policy, TotalTurns: completed, Counts: snapshot}:
			default:
			}
		}
	}

	counts := make([]int64, nstates)
	for i, t := range totals {
		counts[i] = t.AtomicRead()
	}

	result := &Result{Policy: policy, TotalTurns: completed, Counts: counts}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// walk runs one worker: simulate turns turns of random play under policy,
// reporting a batch every batchSize turns (or once at the end, for a
// shorter final partial batch).
func walk(done <-chan struct{}, b *board.Board, policy markov.JailPolicy, turns, seed, batchSize int64, nstates int) <-chan *batch {
	out := make(chan *batch)
	go func() {
		defer close(out)

		rng := rand.New(rand.NewSource(seed))
		state := board.IdxGo

		counts := make([]int64, nstates)
		var sinceReport int64
		for t := int64(0); t < turns; t++ {
			select {
			case <-done:
				return
			default:
			}

			state = nextState(rng, b, policy, state)
			counts[state]++
			sinceReport++

			if sinceReport == batchSize {
				bt := &batch{counts: counts, turns: sinceReport}
				counts = make([]int64, nstates)
				sinceReport = 0
				select {
				case out <- bt:
				case <-done:
					return
				}
			}
		}
		if sinceReport > 0 {
			select {
			case out <- &batch{counts: counts, turns: sinceReport}:
			case <-done:
			}
		}
	}()
	return out
}

// nextState advances one turn from state under policy, selecting between
// an ordinary turn and a jail-residency attempt exactly as the rows of
// BuildTransitions do for the same state.
func nextState(rng *rand.Rand, b *board.Board, policy markov.JailPolicy, state int) int {
	if policy != markov.Stay {
		return sampleTurn(rng, b, state)
	}
	switch state {
	case board.IdxJail:
		return sampleJailAttempt(rng, b, markov.StayJailTurn2)
	case markov.StayJailTurn2:
		return sampleJailAttempt(rng, b, markov.StayJailTurn3)
	case markov.StayJailTurn3:
		return sampleTurn(rng, b, board.IdxJail)
	default:
		return sampleTurn(rng, b, state)
	}
}
