package ept

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"monopolycore/board"
	"monopolycore/dice"
	"monopolycore/markov"
)

func TestCalculate(t *testing.T) {
	b := board.New()
	pi, err := markov.Solve(markov.BuildTransitions(b, markov.Leave), 1)
	if err != nil {
		t.Fatal(err)
	}

	Convey("Given a household with no houses and two opponents", t, func() {
		params := Params{NetWorth: 1500, OpponentCount: 2, TaxRule: TaxPercentOrFlat}
		bd := Calculate(b, pi, params)

		Convey("Pass-Go income is positive", func() {
			So(bd.PassGo, ShouldBeGreaterThan, 0)
		})

		Convey("Tax is a net drain", func() {
			So(bd.Tax, ShouldBeLessThan, 0)
		})

		Convey("Total equals the sum of the breakdown", func() {
			So(bd.Total, ShouldAlmostEqual, bd.PassGo+bd.Chance+bd.Chest+bd.Tax, 1e-9)
		})
	})

	Convey("Given a household with many houses, street-repair card costs bite harder", t, func() {
		bare := Calculate(b, pi, Params{NetWorth: 1500, OpponentCount: 2})
		developed := Calculate(b, pi, Params{NetWorth: 1500, OpponentCount: 2, OwnedHouses: 10, OwnedHotels: 2})
		So(developed.Chance, ShouldBeLessThan, bare.Chance)
		So(developed.Chest, ShouldBeLessThan, bare.Chest)
	})

	Convey("Pass-Go income includes the Advance-to-Go card draws, not just dice crossings", t, func() {
		params := Params{NetWorth: 1500, OpponentCount: 2}

		wantCardMass := 0.0
		for _, deck := range []*board.Deck{&b.Chance, &b.Chest} {
			landingMass := 0.0
			for _, sq := range b.Squares {
				if sq.Kind != board.KindChance && sq.Kind != board.KindChest {
					continue
				}
				if (deck == &b.Chance) != (sq.Kind == board.KindChance) {
					continue
				}
				landingMass += pi[sq.Index]
			}
			perCard := 1.0 / float64(len(deck.Cards))
			cardProb := 0.0
			for _, card := range deck.Cards {
				if card.Move == board.MoveAdvanceTo && card.Target == board.IdxGo {
					cardProb += perCard
				}
			}
			wantCardMass += landingMass * cardProb
		}

		diceOnly := 0.0
		for s := 0; s < board.NumSquares; s++ {
			needed := board.NumSquares - s
			passProb := 0.0
			for sum, mass := range dice.SumDistribution {
				if sum >= needed {
					passProb += mass
				}
			}
			diceOnly += pi[s] * passProb
		}

		bd := Calculate(b, pi, params)
		wantPassGo := (diceOnly + wantCardMass) * float64(board.PassGoIncome)

		So(bd.PassGo, ShouldAlmostEqual, wantPassGo, 1e-9)
		So(wantCardMass, ShouldBeGreaterThan, 0)
	})
}
