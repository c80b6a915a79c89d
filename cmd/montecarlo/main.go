// Command montecarlo runs an independent random-walk simulation of the
// board and cross-checks its empirical landing frequencies against the
// Markov engine's analytic stationary distribution, exiting non-zero if
// any state's divergence exceeds the engine's tolerance. Structured after
// the racetrack trainer's own CLI entry point: flag-driven configuration,
// a context-cancellable run, and an optional live dashboard server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"monopolycore/board"
	"monopolycore/decision"
	"monopolycore/internal/montecarlo"
	"monopolycore/markov"
	"monopolycore/metrics"
	"monopolycore/server"
)

var (
	turns       *int64
	nworkers    *int
	policyName  *string
	seed        *int64
	dashboardOn *bool
	host        *string
	port        *string
	addr        string
)

func init() {
	turns = flag.Int64("turns", 2_000_000, "number of turns to simulate")
	nworkers = flag.Int("nworkers", runtime.NumCPU(), "number of worker routines")
	policyName = flag.String("policy", "leave", "jail policy to validate: leave or stay")
	seed = flag.Int64("seed", 1, "base RNG seed; worker i uses seed+i")
	dashboardOn = flag.Bool("dashboard", false, "serve a live dashboard while the simulation runs")
	host = flag.String("host", "", "dashboard host")
	port = flag.String("port", "8080", "dashboard port")
	flag.Parse()
	addr = *host + ":" + *port
}

func runApp() error {
	policy, err := markov.ParsePolicy(*policyName)
	if err != nil {
		return err
	}

	b := board.New()

	adapter := metrics.New(nil, "monopoly", "montecarlo", nil)
	eng, err := decision.New(b, decision.DefaultConfig(), *nworkers)
	if err != nil {
		return fmt.Errorf("constructing decision engine: %w", err)
	}
	eng = eng.WithMetrics(adapter)

	stationary, err := eng.Stationary(policy)
	if err != nil {
		return fmt.Errorf("solving stationary distribution: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := montecarlo.Config{
		Turns:    *turns,
		NWorkers: *nworkers,
		Seed:     *seed,
		ProgressFn: func(done int64) {
			if done%200_000 < 2_000 {
				fmt.Printf("simulated %d/%d turns\n", done, *turns)
			}
		},
	}

	if !*dashboardOn {
		result, err := montecarlo.Run(ctx, b, policy, cfg)
		if err != nil {
			return err
		}
		return report(result, stationary)
	}

	results := make(chan *montecarlo.Result, 1)
	cfg.Progress = results

	initial := &montecarlo.Result{Policy: policy, Counts: make([]int64, policy.NumStates())}
	srv, err := server.NewServer(ctx, addr, b, policy, stationary, initial, results)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve() }()

	result, runErr := montecarlo.Run(ctx, b, policy, cfg)
	if runErr != nil {
		return runErr
	}
	if err := report(result, stationary); err != nil {
		return err
	}

	fmt.Printf("simulation complete, dashboard still serving on %s (ctrl-c to exit)\n", addr)
	return <-serveErr
}

// report prints the per-state divergence summary and returns a
// non-nil error if any state exceeds the engine's agreement bound.
func report(result *montecarlo.Result, stationary []float64) error {
	pp, state := result.MaxDivergencePP(stationary)
	fmt.Printf("max divergence: %.4fpp at state %d (bound %.2fpp)\n", pp, state, montecarlo.DivergenceBoundPP)
	if pp > montecarlo.DivergenceBoundPP {
		return fmt.Errorf("state %d diverges by %.4fpp, exceeding the %.2fpp bound", state, pp, montecarlo.DivergenceBoundPP)
	}
	return nil
}

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
