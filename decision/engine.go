// Package decision implements the strategic decision layer: the six
// procedures a player must answer on a turn (buy, auction bid, build,
// trade, mortgage/unmortgage, jail policy), built on top of the board,
// Markov, and valuator packages.
package decision

import (
	"sync"
	"time"

	"monopolycore/board"
	"monopolycore/coreerrors"
	"monopolycore/markov"
	"monopolycore/valuator"
)

// Metrics receives instrumentation from the engine. A *metrics.Adapter
// satisfies this interface; nil is a valid, no-op Engine.metrics.
type Metrics interface {
	ObserveCacheBuild(policy string, d time.Duration)
	ObserveDecision(procedure string, d time.Duration, errKind string)
}

// Engine is the entry point the host constructs once and calls for every
// decision. It owns the Markov/valuator cache, which is built lazily and
// shared across every decision call for the lifetime of the process.
type Engine struct {
	board   *board.Board
	config  Config
	metrics Metrics

	markov *markov.Cache

	mu        sync.Mutex
	valuators map[markov.JailPolicy]*valuatorEntry
}

type valuatorEntry struct {
	once sync.Once
	v    *valuator.Valuator
	err  error
}

// New constructs an Engine over b with the given configuration and Markov
// solver concurrency. The configuration is validated immediately; no
// decisions are served if it is invalid.
func New(b *board.Board, cfg Config, nworkers int) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		board:     b,
		config:    cfg,
		markov:    markov.NewCache(b, nworkers),
		valuators: make(map[markov.JailPolicy]*valuatorEntry),
	}, nil
}

// WithMetrics attaches m to e; subsequent cache builds and decision calls
// report through it. Passing nil detaches instrumentation.
func (e *Engine) WithMetrics(m Metrics) *Engine {
	e.metrics = m
	return e
}

// observeDecision is called via defer by every public decision procedure
// to report its wall time and, if any, the error kind it returned.
func (e *Engine) observeDecision(procedure string, start time.Time, err *error) {
	if e.metrics == nil {
		return
	}
	kind := ""
	if err != nil && *err != nil {
		if ce, ok := (*err).(*coreerrors.Error); ok {
			kind = ce.Kind().String()
		} else {
			kind = "Unknown"
		}
	}
	e.metrics.ObserveDecision(procedure, time.Since(start), kind)
}

// Stationary returns the Markov stationary distribution for policy,
// building and instrumenting the EPT cache entry for policy along the way
// if it has not been built yet. Hosts that want the raw distribution
// (e.g. for reporting or cross-validation) without a full decision call
// use this instead of reaching past the Engine into a markov.Cache.
func (e *Engine) Stationary(policy markov.JailPolicy) ([]float64, error) {
	if _, err := e.valuatorFor(policy); err != nil {
		return nil, err
	}
	return e.markov.Stationary(policy)
}

// valuatorFor returns the EPT tables for policy, building them from the
// Markov stationary distribution on first use and reusing them
// thereafter. Safe for concurrent callers.
func (e *Engine) valuatorFor(policy markov.JailPolicy) (*valuator.Valuator, error) {
	entry := e.entryFor(policy)
	entry.once.Do(func() {
		start := time.Now()
		pi, err := e.markov.Stationary(policy)
		if err != nil {
			entry.err = err
			return
		}
		entry.v = valuator.New(e.board, pi)
		if e.metrics != nil {
			e.metrics.ObserveCacheBuild(policy.String(), time.Since(start))
		}
	})
	return entry.v, entry.err
}

func (e *Engine) entryFor(policy markov.JailPolicy) *valuatorEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.valuators[policy]
	if !ok {
		entry = &valuatorEntry{}
		e.valuators[policy] = entry
	}
	return entry
}
