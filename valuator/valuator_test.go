package valuator

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"monopolycore/board"
	"monopolycore/markov"
	"monopolycore/snapshot"
)

func TestStreetEPTMonotonicity(t *testing.T) {
	b := board.New()
	pi, err := markov.Solve(markov.BuildTransitions(b, markov.Leave), 1)
	if err != nil {
		t.Fatal(err)
	}
	v := New(b, pi)

	Convey("Given the EPT table for Boardwalk", t, func() {
		sq := 39

		Convey("Each development level earns strictly more than the last", func() {
			prev := 0.0
			for level := NoMonopoly; level <= LevelHotel; level++ {
				got := v.StreetEPT(sq, level)
				So(got, ShouldBeGreaterThan, prev)
				prev = got
			}
		})

		Convey("Marginal ROI is positive at every build step", func() {
			for step := 0; step < NumBuildSteps; step++ {
				So(v.MarginalROI(sq, step), ShouldBeGreaterThan, 0)
			}
		})
	})
}

func TestDiffVal(t *testing.T) {
	b := board.New()
	pi, err := markov.Solve(markov.BuildTransitions(b, markov.Leave), 1)
	if err != nil {
		t.Fatal(err)
	}
	v := New(b, pi)

	Convey("Given player 1 owning Park Place, evaluating Boardwalk for player 0", t, func() {
		s := &snapshot.Snapshot{Players: make([]snapshot.Player, 2)}
		for i := range s.Squares {
			s.Squares[i].Owner = snapshot.Unowned
		}
		s.Squares[37].Owner = 1 // Park Place
		s.Players[1].OwnedSquares = []int{37}
		a := snapshot.Analyze(b, s)

		ctx := BuildContext(b, a, 0, 39)

		Convey("Acquiring Boardwalk denies player 1's Dark Blue monopoly", func() {
			So(ctx.DeniesOpponent, ShouldBeTrue)
		})

		Convey("Differential value is strictly greater with denial than without", func() {
			withDenial := v.DiffVal(b, 39, ctx, 1, 1.5, 0.5)
			noDenialCtx := ctx
			noDenialCtx.DeniesOpponent = false
			withoutDenial := v.DiffVal(b, 39, noDenialCtx, 1, 1.5, 0.5)
			So(withDenial, ShouldBeGreaterThan, withoutDenial)
		})
	})
}
