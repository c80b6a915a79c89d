package decision

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"monopolycore/board"
	"monopolycore/snapshot"
)

func freshSnapshot(numPlayers int) *snapshot.Snapshot {
	s := &snapshot.Snapshot{Players: make([]snapshot.Player, numPlayers)}
	for i := range s.Squares {
		s.Squares[i].Owner = snapshot.Unowned
	}
	return s
}

func newTestEngine(t *testing.T) *Engine {
	e, err := New(board.New(), DefaultConfig(), 2)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// TestScenarioEarlyBuyMonopolyCompletion covers §8 scenario 1.
func TestScenarioEarlyBuyMonopolyCompletion(t *testing.T) {
	e := newTestEngine(t)

	Convey("Given a player with cash $1000 who owns two of three Orange streets", t, func() {
		s := freshSnapshot(2)
		s.Players[0].Cash = 1000
		for _, idx := range []int{16, 18} {
			s.Squares[idx].Owner = 0
			s.Players[0].OwnedSquares = append(s.Players[0].OwnedSquares, idx)
		}

		Convey("Landing on New York Avenue (the third, $200), shouldBuy is true", func() {
			buy, err := e.ShouldBuy(s, 0, 19)
			So(err, ShouldBeNil)
			So(buy, ShouldBeTrue)
		})
	})
}

// TestScenarioReserveRespectingAuction covers §8 scenario 2.
func TestScenarioReserveRespectingAuction(t *testing.T) {
	e := newTestEngine(t)

	Convey("Given a player with cash $250 in mid-game bidding on Boardwalk", t, func() {
		s := freshSnapshot(2)
		s.Players[0].Cash = 250
		// Force mid-game phase.
		for _, idx := range []int{1, 3} {
			s.Squares[idx].Owner = 1
			s.Players[1].OwnedSquares = append(s.Players[1].OwnedSquares, idx)
		}

		Convey("A leading bid already at the $100 max-affordable ceiling exits", func() {
			action, err := e.Bid(s, 0, 39, 100)
			So(err, ShouldBeNil)
			So(action.Exit, ShouldBeTrue)
		})
	})
}

// TestScenarioBlockingAuction covers §8 scenario 3.
func TestScenarioBlockingAuction(t *testing.T) {
	e := newTestEngine(t)

	Convey("Given a player with cash $1500 where an opponent owns 2 of 3 Red streets", t, func() {
		s := freshSnapshot(2)
		s.Players[0].Cash = 1500
		for _, idx := range []int{21, 23} {
			s.Squares[idx].Owner = 1
			s.Players[1].OwnedSquares = append(s.Players[1].OwnedSquares, idx)
		}

		Convey("Willingness for the third Red street is higher than for an unblocked square of equal price", func() {
			blocked, err := e.Bid(s, 0, 24, 0)
			So(err, ShouldBeNil)

			unblocked := freshSnapshot(2)
			unblocked.Players[0].Cash = 1500
			unblockedAction, err := e.Bid(unblocked, 0, 24, 0)
			So(err, ShouldBeNil)

			So(blocked.Amount, ShouldBeGreaterThan, unblockedAction.Amount)
		})
	})
}

// TestScenarioEvenBuildingOrder covers §8 scenario 4.
func TestScenarioEvenBuildingOrder(t *testing.T) {
	e := newTestEngine(t)

	Convey("Given a Light-Blue monopoly at (0,0,0) houses and cash $1000", t, func() {
		s := freshSnapshot(2)
		s.Players[0].Cash = 1000
		for _, idx := range []int{6, 8, 9} {
			s.Squares[idx].Owner = 0
			s.Players[0].OwnedSquares = append(s.Players[0].OwnedSquares, idx)
		}

		Convey("The first three steps reach (1,1,1) before any square reaches 2", func() {
			steps, err := e.Build(s, 0)
			So(err, ShouldBeNil)
			So(len(steps), ShouldBeGreaterThanOrEqualTo, 3)

			seen := map[int]bool{}
			for i := 0; i < 3; i++ {
				So(steps[i].TargetHouses, ShouldEqual, 1)
				seen[steps[i].Square] = true
			}
			So(len(seen), ShouldEqual, 3)
		})
	})
}

// TestScenarioJailPolicySwitch covers §8 scenario 5.
func TestScenarioJailPolicySwitch(t *testing.T) {
	e := newTestEngine(t)

	Convey("Given a late-game snapshot with opponents holding 6 developed properties", t, func() {
		s := freshSnapshot(2)
		// 20 properties sold and a monopoly exists, to force late phase.
		buyable := 0
		for idx, sq := range e.board.Squares {
			if sq.IsBuyable() && buyable < 20 {
				s.Squares[idx].Owner = 1
				s.Players[1].OwnedSquares = append(s.Players[1].OwnedSquares, idx)
				buyable++
			}
		}
		// Give opponent several developed properties within groups they fully
		// own, spread with even building, so the developed-property count
		// clears the default jailStayThreshold of 4.
		lightBlue := []int{6, 8, 9}
		for i, idx := range lightBlue {
			if i < 2 {
				s.Squares[idx].Houses = 2
			} else {
				s.Squares[idx].Houses = 1
			}
		}
		pink := []int{11, 13, 14}
		for _, idx := range pink {
			s.Squares[idx].Houses = 1
		}

		Convey("determineJailPolicy resolves to stay", func() {
			policy, err := e.DetermineJailPolicy(s, 0)
			So(err, ShouldBeNil)
			So(policy.String(), ShouldEqual, "stay")
		})

		Convey("shouldPostBail is false on turn 0 and true on turn 2", func() {
			early, err := e.ShouldPostBail(s, 0, 0)
			So(err, ShouldBeNil)
			So(early, ShouldBeFalse)

			late, err := e.ShouldPostBail(s, 0, 2)
			So(err, ShouldBeNil)
			So(late, ShouldBeTrue)
		})
	})
}

// TestScenarioMortgageToClearDebt covers §8 scenario 6.
func TestScenarioMortgageToClearDebt(t *testing.T) {
	e := newTestEngine(t)

	Convey("Given an owner with three unmortgaged, unimproved streets and $300 of debt", t, func() {
		s := freshSnapshot(2)
		squares := []int{1, 11, 19} // prices 60, 140, 200
		for _, idx := range squares {
			s.Squares[idx].Owner = 0
			s.Players[0].OwnedSquares = append(s.Players[0].OwnedSquares, idx)
		}
		s.Players[0].Cash = 0

		// Half of 60+140+200 is only $200, so $300 is out of reach: every
		// candidate must be mortgaged, raising the full $200 available.
		Convey("Mortgages chosen raise all $200 available and never touch a housed property", func() {
			chosen, err := e.MortgageToRaise(s, 0, 300)
			So(err, ShouldBeNil)
			So(len(chosen), ShouldEqual, 3)

			raised := 0
			for _, idx := range chosen {
				So(s.Squares[idx].Houses, ShouldEqual, 0)
				raised += e.board.Squares[idx].Price / 2
			}
			So(raised, ShouldEqual, 200)
		})
	})
}

// TestMortgageToRaisePrefersHigherEfficiency guards against the comparator
// in MortgageToRaise sorting the wrong way: among two mortgage candidates,
// the one offering more cash per unit of differential value sacrificed
// must be picked first.
func TestMortgageToRaisePrefersHigherEfficiency(t *testing.T) {
	e := newTestEngine(t)

	Convey("Given two unimproved, unmortgaged streets of differing efficiency", t, func() {
		squareA, squareB := 1, 39 // Mediterranean Avenue, Boardwalk

		s := freshSnapshot(2)
		for _, idx := range []int{squareA, squareB} {
			s.Squares[idx].Owner = 0
			s.Players[0].OwnedSquares = append(s.Players[0].OwnedSquares, idx)
		}

		a := snapshot.Analyze(e.board, s)
		diffA, err := e.diffValFor(a, 0, squareA)
		So(err, ShouldBeNil)
		diffB, err := e.diffValFor(a, 0, squareB)
		So(err, ShouldBeNil)

		payoutA := e.board.Squares[squareA].Price / 2
		payoutB := e.board.Squares[squareB].Price / 2
		effA := float64(payoutA) / max(diffA, epsilon)
		effB := float64(payoutB) / max(diffB, epsilon)

		preferred := squareA
		if effB > effA {
			preferred = squareB
		}

		Convey("Mortgaging both, the higher-efficiency square is chosen first", func() {
			chosen, err := e.MortgageToRaise(s, 0, payoutA+payoutB)
			So(err, ShouldBeNil)
			So(len(chosen), ShouldEqual, 2)
			So(chosen[0], ShouldEqual, preferred)
		})
	})
}

func TestUniversalInvariants(t *testing.T) {
	e := newTestEngine(t)

	Convey("build() never violates even building at any intermediate step", t, func() {
		s := freshSnapshot(2)
		s.Players[0].Cash = 5000
		for _, idx := range []int{6, 8, 9} {
			s.Squares[idx].Owner = 0
			s.Players[0].OwnedSquares = append(s.Players[0].OwnedSquares, idx)
		}
		steps, err := e.Build(s, 0)
		So(err, ShouldBeNil)

		houses := map[int]int{6: 0, 8: 0, 9: 0}
		for _, step := range steps {
			houses[step.Square]++
			min, max := 5, 0
			for _, idx := range []int{6, 8, 9} {
				if houses[idx] < min {
					min = houses[idx]
				}
				if houses[idx] > max {
					max = houses[idx]
				}
			}
			So(max-min, ShouldBeLessThanOrEqualTo, 1)
		}
	})

	Convey("shouldBuy true implies cash >= price after purchase", t, func() {
		s := freshSnapshot(2)
		s.Players[0].Cash = 1000
		buy, err := e.ShouldBuy(s, 0, 1)
		So(err, ShouldBeNil)
		if buy {
			So(s.Players[0].Cash, ShouldBeGreaterThanOrEqualTo, e.board.Squares[1].Price)
		}
	})

	Convey("bid never exceeds cash - minReserve(phase)", t, func() {
		s := freshSnapshot(2)
		s.Players[0].Cash = 1000
		action, err := e.Bid(s, 0, 39, 0)
		So(err, ShouldBeNil)
		a := snapshot.Analyze(e.board, s)
		maxAffordable := s.Players[0].Cash - e.config.reserveFor(a.Phase())
		So(action.Amount, ShouldBeLessThanOrEqualTo, maxAffordable)
	})
}
