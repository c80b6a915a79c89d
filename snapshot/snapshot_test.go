package snapshot

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"monopolycore/board"
	"monopolycore/coreerrors"
)

func freshSnapshot(numPlayers int) *Snapshot {
	s := &Snapshot{Players: make([]Player, numPlayers)}
	for i := range s.Squares {
		s.Squares[i].Owner = Unowned
	}
	return s
}

func TestValidate(t *testing.T) {
	b := board.New()

	Convey("Given a freshly dealt snapshot", t, func() {
		s := freshSnapshot(2)

		Convey("It is valid", func() {
			So(Validate(b, s), ShouldBeNil)
		})

		Convey("Houses on an unowned square are rejected", func() {
			s.Squares[1].Houses = 1
			err := Validate(b, s)
			So(err, ShouldNotBeNil)
			So(coreerrors.Is(err, coreerrors.KindInvalidSnapshot), ShouldBeTrue)
		})

		Convey("An owner index out of range is rejected", func() {
			s.Squares[1].Owner = 5
			So(Validate(b, s), ShouldNotBeNil)
		})
	})

	Convey("Given a player who owns Mediterranean and Baltic with 3 houses each", t, func() {
		s := freshSnapshot(2)
		for _, idx := range []int{1, 3} {
			s.Squares[idx].Owner = 0
			s.Squares[idx].Houses = 3
			s.Players[0].OwnedSquares = append(s.Players[0].OwnedSquares, idx)
		}

		Convey("It is valid: full group, even building", func() {
			So(Validate(b, s), ShouldBeNil)
		})

		Convey("Uneven building across the group is rejected", func() {
			s.Squares[3].Houses = 1
			So(Validate(b, s), ShouldNotBeNil)
		})

		Convey("Houses without owning the full group are rejected", func() {
			s2 := freshSnapshot(2)
			s2.Squares[1].Owner = 0
			s2.Squares[1].Houses = 1
			s2.Players[0].OwnedSquares = []int{1}
			So(Validate(b, s2), ShouldNotBeNil)
		})
	})
}

func TestAnalysis(t *testing.T) {
	b := board.New()

	Convey("Given player 0 owning Mediterranean and player 1 owning Baltic", t, func() {
		s := freshSnapshot(2)
		s.Squares[1].Owner = 0
		s.Players[0].OwnedSquares = []int{1}
		s.Squares[3].Owner = 1
		s.Players[1].OwnedSquares = []int{3}
		a := Analyze(b, s)

		Convey("Player 0 already owns the rest of the Brown group, so acquiring Baltic from player 1 completes it", func() {
			So(a.CompletesGroup(0, 3), ShouldBeTrue)
		})
	})

	Convey("Given player 1 owning every Brown square but Baltic", t, func() {
		s := freshSnapshot(2)
		s.Squares[1].Owner = 1
		s.Players[1].OwnedSquares = []int{1}
		a := Analyze(b, s)

		Convey("Acquiring Baltic denies player 1's monopoly", func() {
			opp, ok := a.SingleOpponentOwnsRest(0, 3)
			So(ok, ShouldBeTrue)
			So(opp, ShouldEqual, 1)
		})
	})
}
