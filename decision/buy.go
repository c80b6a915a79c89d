package decision

import (
	"time"

	"monopolycore/snapshot"
	"monopolycore/valuator"
)

// ShouldBuy answers the buy-on-landing question for square at its listed
// price, given the player's current cash. Rules, in order: refuse if cash
// can't cover price; if the purchase leaves at least the phase reserve,
// accept unconditionally in the opening, otherwise accept iff the payback
// period is under 30 turns; if it dips below reserve but is still
// affordable, accept only as a stretch purchase with clearly positive
// differential value.
func (e *Engine) ShouldBuy(snap *snapshot.Snapshot, playerID, square int) (buy bool, err error) {
	defer e.observeDecision("ShouldBuy", time.Now(), &err)

	if err := snapshot.Validate(e.board, snap); err != nil {
		return false, err
	}

	a := snapshot.Analyze(e.board, snap)
	price := e.board.Squares[square].Price
	cash := snap.Players[playerID].Cash

	if cash < price {
		return false, nil
	}

	diff, err := e.diffValFor(a, playerID, square)
	if err != nil {
		return false, err
	}

	phase := a.Phase()
	reserve := e.config.reserveFor(phase)
	remaining := cash - price

	if remaining >= reserve {
		if phase == snapshot.Opening {
			return true, nil
		}
		if diff <= 0 {
			return false, nil
		}
		payback := float64(price) / diff
		return payback < 30, nil
	}

	return diff > 0.10*float64(price), nil
}

// diffValFor computes the differential value of playerID acquiring
// square, using the jail policy that governs the rest of the game per the
// current snapshot.
func (e *Engine) diffValFor(a *snapshot.Analysis, playerID, square int) (float64, error) {
	policy := e.determineJailPolicy(a, playerID)
	v, err := e.valuatorFor(policy)
	if err != nil {
		return 0, err
	}
	ctx := valuator.BuildContext(e.board, a, playerID, square)
	opponents := a.OpponentCount(playerID)
	return v.DiffVal(e.board, square, ctx, opponents, e.config.MonopolyCompletionBonus, e.config.DenialFactor), nil
}
