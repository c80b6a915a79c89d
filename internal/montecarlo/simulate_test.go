package montecarlo

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"monopolycore/board"
	"monopolycore/markov"
)

// TestShortRunAgreesWithStationary runs a small, deterministically seeded
// simulation distinct from the full-scale cmd/montecarlo run: enough turns
// to exercise every code path (doubles chaining, card redirects, jail
// residency) without the cost of the production-scale cross-check.
func TestShortRunAgreesWithStationary(t *testing.T) {
	b := board.New()

	Convey("Given a short Leave-policy simulation", t, func() {
		result, err := Run(context.Background(), b, markov.Leave, Config{
			Turns:     200000,
			NWorkers:  4,
			Seed:      1,
			BatchSize: 500,
		})

		Convey("It completes without error and visits every square except Go-To-Jail", func() {
			So(err, ShouldBeNil)
			So(result.TotalTurns, ShouldEqual, 200000)
			for i, c := range result.Counts {
				if i == board.IdxGoToJail {
					// Landings there are redirected to Jail, so a turn never ends on it.
					So(c, ShouldEqual, 0)
					continue
				}
				So(c, ShouldBeGreaterThan, 0)
			}
		})

		Convey("Its empirical frequencies roughly track the stationary distribution", func() {
			cache := markov.NewCache(b, 2)
			stationary, err := cache.Stationary(markov.Leave)
			So(err, ShouldBeNil)

			pp, _ := result.MaxDivergencePP(stationary)
			// A short run is noisier than the production-scale cross-check's
			// ±0.15pp bound; this only guards against a gross modeling
			// mismatch between the walk and the analytic chain.
			So(pp, ShouldBeLessThan, 2.0)
		})
	})

	Convey("Given a short Stay-policy simulation", t, func() {
		result, err := Run(context.Background(), b, markov.Stay, Config{
			Turns:     200000,
			NWorkers:  4,
			Seed:      2,
			BatchSize: 500,
		})

		Convey("It resolves the synthetic jail-residency states too", func() {
			So(err, ShouldBeNil)
			So(result.Counts[markov.StayJailTurn2], ShouldBeGreaterThan, 0)
			So(result.Counts[markov.StayJailTurn3], ShouldBeGreaterThan, 0)
		})
	})
}

func TestRunRespectsCancellation(t *testing.T) {
	Convey("Given a context cancelled before the run starts", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := Run(ctx, board.New(), markov.Leave, Config{
			Turns:    1000000,
			NWorkers: 4,
			Seed:     3,
		})

		Convey("Run returns promptly with the context error and a partial result", func() {
			So(err, ShouldEqual, context.Canceled)
			So(result, ShouldNotBeNil)
			So(result.TotalTurns, ShouldBeLessThan, int64(1000000))
		})
	})
}
