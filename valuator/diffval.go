package valuator

import (
	"monopolycore/board"
	"monopolycore/snapshot"
)

// Context carries the ownership facts DiffVal needs about one candidate
// square, derived by the caller from a snapshot.Analysis. Keeping this as
// a plain struct (rather than passing the Analysis itself) keeps this
// package decoupled from the decision layer's notion of "who is asking."
type Context struct {
	// CompletesMonopoly is true when acquiring the square gives the
	// acquiring player every square of its color group.
	CompletesMonopoly bool
	// DeniesOpponent is true when a single opponent owns every other
	// square of the group, so this acquisition blocks their monopoly.
	DeniesOpponent bool
	// RailroadOwnCount/UtilityOwnCount are the acquiring player's
	// ownership count, including this square, for the synthetic groups.
	RailroadOwnCount int
	UtilityOwnCount  int
}

// BuildContext derives a Context for playerID acquiring square from a, the
// ownership analysis of the current snapshot.
func BuildContext(b *board.Board, a *snapshot.Analysis, playerID, square int) Context {
	ctx := Context{}
	sq := b.Squares[square]
	switch {
	case sq.IsStreet():
		ctx.CompletesMonopoly = a.CompletesGroup(playerID, square)
		_, ctx.DeniesOpponent = a.SingleOpponentOwnsRest(playerID, square)
	case sq.IsRailroad():
		ctx.RailroadOwnCount = a.OwnedCountInGroup(playerID, board.RailroadGroup) + 1
	case sq.IsUtility():
		ctx.UtilityOwnCount = a.OwnedCountInGroup(playerID, board.UtilityGroup) + 1
	}
	return ctx
}

// DiffVal computes the differential value of acquiring square: the own-EPT
// gained by the acquiring player plus the denial-EPT taken from an
// opponent, each scaled to per-turn dollars by opponentCount.
//
// monopolyBonus scales the own-EPT term when the acquisition completes a
// color group, valuing the group's likely 3-house development target
// rather than its bare post-acquisition state. denialFactor scales the
// denial-EPT term, crediting only a fraction of the group's 3-house income
// since the denial is probabilistic, not a guaranteed capture.
func (v *Valuator) DiffVal(b *board.Board, square int, ctx Context, opponentCount int, monopolyBonus, denialFactor float64) float64 {
	sq := b.Squares[square]

	var own float64
	switch {
	case sq.IsStreet():
		if ctx.CompletesMonopoly {
			own = v.StreetEPT(square, Level3Houses) * monopolyBonus
		} else {
			own = v.StreetEPT(square, NoMonopoly)
		}
	case sq.IsRailroad():
		own = v.RailroadEPT(square, ctx.RailroadOwnCount)
	case sq.IsUtility():
		own = v.UtilityEPT(square, ctx.UtilityOwnCount)
	}

	denial := 0.0
	if ctx.DeniesOpponent && sq.IsStreet() {
		denial = denialFactor * v.groupEPTAtLevel(b, sq.Group, Level3Houses)
	}

	return (own + denial) * float64(opponentCount)
}

// groupEPTAtLevel sums a color group's per-opponent-per-turn EPT at level
// across every square in the group, used to price a group's full
// developed income for the denial term.
func (v *Valuator) groupEPTAtLevel(b *board.Board, group board.ColorGroup, level Level) float64 {
	total := 0.0
	for _, idx := range b.GroupSquare[group] {
		total += v.StreetEPT(idx, level)
	}
	return total
}
