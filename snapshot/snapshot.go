// Package snapshot defines the typed projection of a host game engine's
// mutable state into the immutable inputs the decision core requires.
// Building a Snapshot is the only place in the system that observes
// mutable state; once built, it is a plain value the rest of the core
// treats as read-only.
package snapshot

import (
	"monopolycore/board"
	"monopolycore/coreerrors"
)

// Player is one seat's state at the moment the snapshot was taken.
type Player struct {
	Cash          int
	Position      int
	JailTurns     int
	Bankrupt      bool
	OwnedSquares  []int
	JailFreeCards int
}

// SquareState is the ownership/development state of one board square.
type SquareState struct {
	// Owner is a player index into Snapshot.Players, or Unowned.
	Owner     int
	Houses    int // 0..5; 5 means a hotel.
	Mortgaged bool
}

// Unowned marks a square with no owner.
const Unowned = -1

// MaxHouses is the house count representing a hotel.
const MaxHouses = 5

// Snapshot is a complete, immutable picture of one decision point.
type Snapshot struct {
	Turn    int
	Players []Player
	Squares [board.NumSquares]SquareState
}

// Validate enforces the §3 snapshot invariants. A violation is always a
// host bug: malformed input from the adapter that built the snapshot, not
// a condition the core can recover from.
func Validate(b *board.Board, s *Snapshot) error {
	if len(s.Players) == 0 {
		return coreerrors.InvalidSnapshot("snapshot has no players")
	}

	for i, p := range s.Players {
		if p.Position < 0 || p.Position >= board.NumSquares {
			return coreerrors.InvalidSnapshot("player %d has out-of-range position %d", i, p.Position)
		}
		if p.Cash < 0 {
			return coreerrors.InvalidSnapshot("player %d has negative cash %d", i, p.Cash)
		}
		for _, sq := range p.OwnedSquares {
			if sq < 0 || sq >= board.NumSquares {
				return coreerrors.InvalidSnapshot("player %d owns out-of-range square %d", i, sq)
			}
			if s.Squares[sq].Owner != i {
				return coreerrors.InvalidSnapshot("player %d lists square %d but square records owner %d", i, sq, s.Squares[sq].Owner)
			}
		}
	}

	for idx, sq := range s.Squares {
		if sq.Owner == Unowned {
			if sq.Houses != 0 {
				return coreerrors.InvalidSnapshot("square %d is unowned but has %d houses", idx, sq.Houses)
			}
			continue
		}
		if sq.Owner < 0 || sq.Owner >= len(s.Players) {
			return coreerrors.InvalidSnapshot("square %d has out-of-range owner %d", idx, sq.Owner)
		}
		if !ownsSquare(s.Players[sq.Owner], idx) {
			return coreerrors.InvalidSnapshot("square %d owner %d does not list it among owned squares", idx, sq.Owner)
		}
		if sq.Houses < 0 || sq.Houses > MaxHouses {
			return coreerrors.InvalidSnapshot("square %d has invalid house count %d", idx, sq.Houses)
		}
		if sq.Houses > 0 && !b.Squares[idx].IsStreet() {
			return coreerrors.InvalidSnapshot("square %d is not a street but has %d houses", idx, sq.Houses)
		}
		if sq.Houses > 0 && sq.Mortgaged {
			return coreerrors.InvalidSnapshot("square %d is mortgaged but has %d houses", idx, sq.Houses)
		}
		if sq.Houses > 0 && !ownsFullGroup(b, s, sq.Owner, b.Squares[idx].Group) {
			return coreerrors.InvalidSnapshot("square %d has houses but owner %d does not own the full color group", idx, sq.Owner)
		}
	}

	return evenBuildingHolds(b, s)
}

func ownsSquare(p Player, square int) bool {
	for _, sq := range p.OwnedSquares {
		if sq == square {
			return true
		}
	}
	return false
}

func ownsFullGroup(b *board.Board, s *Snapshot, playerID int, group board.ColorGroup) bool {
	for _, idx := range b.GroupSquare[group] {
		if s.Squares[idx].Owner != playerID {
			return false
		}
	}
	return true
}

// evenBuildingHolds checks that, within every color group, house counts
// differ by at most one.
func evenBuildingHolds(b *board.Board, s *Snapshot) error {
	for group, squares := range b.GroupSquare {
		if group == board.RailroadGroup || group == board.UtilityGroup {
			continue
		}
		min, max := MaxHouses, 0
		for _, idx := range squares {
			h := s.Squares[idx].Houses
			if h < min {
				min = h
			}
			if h > max {
				max = h
			}
		}
		if max-min > 1 {
			return coreerrors.InvalidSnapshot("color group %d violates even building: min %d max %d", group, min, max)
		}
	}
	return nil
}
