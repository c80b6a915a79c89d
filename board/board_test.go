package board

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStandardBoard(t *testing.T) {
	Convey("Given the standard board", t, func() {
		b := New()

		Convey("It has exactly 40 squares with the required kind counts", func() {
			So(len(b.Squares), ShouldEqual, NumSquares)

			var streets, rails, utils, corners int
			for _, sq := range b.Squares {
				switch sq.Kind {
				case KindStreet:
					streets++
				case KindRailroad:
					rails++
				case KindUtility:
					utils++
				case KindGo, KindJail, KindFreeParking, KindGoToJail:
					corners++
				}
			}
			So(streets, ShouldEqual, 22)
			So(rails, ShouldEqual, 4)
			So(utils, ShouldEqual, 2)
			So(corners, ShouldEqual, 4)
		})

		Convey("Every street belongs to exactly one of the 8 color groups", func() {
			for _, sq := range b.Squares {
				if sq.IsStreet() {
					So(sq.Group, ShouldBeLessThan, NumStreetGroups)
				}
			}
		})

		Convey("Each color group's members are indexed", func() {
			So(len(b.GroupSquare[Brown]), ShouldEqual, 2)
			So(len(b.GroupSquare[DarkBlue]), ShouldEqual, 2)
			So(len(b.GroupSquare[RailroadGroup]), ShouldEqual, 4)
			So(len(b.GroupSquare[UtilityGroup]), ShouldEqual, 2)
		})

		Convey("Both decks have exactly 16 cards", func() {
			So(len(b.Chance.Cards), ShouldEqual, 16)
			So(len(b.Chest.Cards), ShouldEqual, 16)
		})

		Convey("NearestOfKind wraps around the board", func() {
			So(b.NearestOfKind(35, KindRailroad), ShouldEqual, 5)
			So(b.NearestOfKind(28, KindUtility), ShouldEqual, 12)
		})
	})
}
