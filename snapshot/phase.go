package snapshot

import "monopolycore/board"

// GamePhase buckets the game's progress, used by the decision layer to
// scale aggressiveness (e.g. reserve requirements loosen in the endgame).
type GamePhase int

const (
	Opening GamePhase = iota
	MidGame
	EndGame
)

func (p GamePhase) String() string {
	switch p {
	case Opening:
		return "Opening"
	case MidGame:
		return "MidGame"
	case EndGame:
		return "EndGame"
	default:
		return "Unknown"
	}
}

// Phase classifies the game as Opening if fewer than 10 properties have
// sold and no monopoly yet exists, EndGame if at least 20 have sold and at
// least one monopoly exists, and MidGame otherwise.
func (a *Analysis) Phase() GamePhase {
	sold := a.PropertiesSold()
	monopoly := a.AnyMonopolyExists()

	switch {
	case sold < 10 && !monopoly:
		return Opening
	case sold >= 20 && monopoly:
		return EndGame
	default:
		return MidGame
	}
}

// PropertiesSold counts buyable squares with an owner.
func (a *Analysis) PropertiesSold() int {
	sold := 0
	for idx, sq := range a.board.Squares {
		if sq.IsBuyable() && a.snap.Squares[idx].Owner != Unowned {
			sold++
		}
	}
	return sold
}

// AnyMonopolyExists reports whether any color group is fully owned by a
// single player.
func (a *Analysis) AnyMonopolyExists() bool {
	for group, squares := range a.board.GroupSquare {
		if group == board.RailroadGroup || group == board.UtilityGroup {
			continue
		}
		owner := a.snap.Squares[squares[0]].Owner
		if owner == Unowned {
			continue
		}
		complete := true
		for _, idx := range squares {
			if a.snap.Squares[idx].Owner != owner {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}

// Position ranks playerID among all non-bankrupt players by net worth,
// rank 1 being the leader. Ties keep the lower player index as the better
// rank, giving a total order.
func (a *Analysis) Position(playerID int) int {
	worth := a.NetWorth(playerID)
	rank := 1
	for i, p := range a.snap.Players {
		if i == playerID || p.Bankrupt {
			continue
		}
		other := a.NetWorth(i)
		if other > worth || (other == worth && i < playerID) {
			rank++
		}
	}
	return rank
}

// IsLeader reports whether playerID holds rank 1.
func (a *Analysis) IsLeader(playerID int) bool {
	return a.Position(playerID) == 1
}

// NumSquaresOwned reports how many board squares playerID currently owns.
func (a *Analysis) NumSquaresOwned(playerID int) int {
	return len(a.snap.Players[playerID].OwnedSquares)
}
