package snapshot

import "monopolycore/board"

// Analysis is the derived ownership/grouping view of a Snapshot that the
// valuator and decision layers query repeatedly. It holds no state beyond
// the Snapshot and Board it was built from, so building it is cheap and it
// is never cached.
type Analysis struct {
	board *board.Board
	snap  *Snapshot
}

// Analyze derives the ownership view used by the decision layer.
func Analyze(b *board.Board, s *Snapshot) *Analysis {
	return &Analysis{board: b, snap: s}
}

// OwnedCountInGroup returns how many squares of group playerID currently
// owns. Used to look up the railroad/utility ownership-count EPT tables.
func (a *Analysis) OwnedCountInGroup(playerID int, group board.ColorGroup) int {
	count := 0
	for _, idx := range a.board.GroupSquare[group] {
		if a.snap.Squares[idx].Owner == playerID {
			count++
		}
	}
	return count
}

// CompletesGroup reports whether playerID acquiring square (assumed
// currently unowned) would give them every square of its color group.
func (a *Analysis) CompletesGroup(playerID, square int) bool {
	group := a.board.Squares[square].Group
	for _, idx := range a.board.GroupSquare[group] {
		if idx == square {
			continue
		}
		if a.snap.Squares[idx].Owner != playerID {
			return false
		}
	}
	return true
}

// SingleOpponentOwnsRest reports whether every other square in square's
// group is owned by one opponent (other than playerID), meaning square is
// the last piece of that opponent's monopoly. Used to price denial EPT.
func (a *Analysis) SingleOpponentOwnsRest(playerID, square int) (opponent int, ok bool) {
	group := a.board.Squares[square].Group
	opponent = Unowned
	for _, idx := range a.board.GroupSquare[group] {
		if idx == square {
			continue
		}
		owner := a.snap.Squares[idx].Owner
		if owner == Unowned || owner == playerID {
			return Unowned, false
		}
		if opponent == Unowned {
			opponent = owner
		} else if opponent != owner {
			return Unowned, false
		}
	}
	if opponent == Unowned {
		return Unowned, false
	}
	return opponent, true
}

// GroupFullyOwnedBy reports whether every square of group belongs to
// playerID.
func (a *Analysis) GroupFullyOwnedBy(playerID int, group board.ColorGroup) bool {
	for _, idx := range a.board.GroupSquare[group] {
		if a.snap.Squares[idx].Owner != playerID {
			return false
		}
	}
	return true
}

// NetWorth sums cash, property value (half price when mortgaged, matching
// the amount a sale or foreclosure would realize), and house/hotel value
// at half their purchase price, the standard Monopoly liquidation basis.
func (a *Analysis) NetWorth(playerID int) int {
	worth := a.snap.Players[playerID].Cash
	for _, idx := range a.snap.Players[playerID].OwnedSquares {
		sq := a.board.Squares[idx]
		state := a.snap.Squares[idx]
		if state.Mortgaged {
			worth += sq.Price / 2
		} else {
			worth += sq.Price
		}
		worth += state.Houses * sq.HousePrice / 2
	}
	return worth
}

// OpponentDevelopedCount counts squares with at least one house, owned by
// any player other than playerID.
func (a *Analysis) OpponentDevelopedCount(playerID int) int {
	count := 0
	for _, sq := range a.snap.Squares {
		if sq.Owner != Unowned && sq.Owner != playerID && sq.Houses > 0 {
			count++
		}
	}
	return count
}

// OpponentCount returns the number of non-bankrupt players other than
// playerID.
func (a *Analysis) OpponentCount(playerID int) int {
	n := 0
	for i, p := range a.snap.Players {
		if i != playerID && !p.Bankrupt {
			n++
		}
	}
	return n
}
