package decision

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEvaluateTrade(t *testing.T) {
	e := newTestEngine(t)

	Convey("Given a trade where the evaluating player receives a square completing their monopoly", t, func() {
		s := freshSnapshot(2)
		s.Players[0].Cash = 1000
		s.Squares[16].Owner = 0
		s.Players[0].OwnedSquares = append(s.Players[0].OwnedSquares, 16)
		s.Squares[18].Owner = 0
		s.Players[0].OwnedSquares = append(s.Players[0].OwnedSquares, 18)
		s.Squares[19].Owner = 1
		s.Players[1].OwnedSquares = append(s.Players[1].OwnedSquares, 19)

		offer := TradeOffer{
			Counterparty: 1,
			Receive:      []int{19},
			CashDelta:    -50,
		}

		Convey("The trade is accepted", func() {
			verdict, err := e.EvaluateTrade(s, 0, offer)
			So(err, ShouldBeNil)
			So(verdict.Accept, ShouldBeTrue)
			So(verdict.NetEPT, ShouldBeGreaterThan, 0)
		})
	})

	Convey("Given a trade that only gives up value with nothing in return", t, func() {
		s := freshSnapshot(2)
		s.Players[0].Cash = 1000
		s.Squares[39].Owner = 0
		s.Players[0].OwnedSquares = append(s.Players[0].OwnedSquares, 39)

		offer := TradeOffer{
			Counterparty: 1,
			GiveUp:       []int{39},
		}

		Convey("The trade is rejected", func() {
			verdict, err := e.EvaluateTrade(s, 0, offer)
			So(err, ShouldBeNil)
			So(verdict.Accept, ShouldBeFalse)
		})
	})
}
