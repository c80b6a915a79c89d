package decision

import (
	"sort"
	"time"

	"monopolycore/snapshot"
)

// MortgageToRaise returns an ordered sequence of squares to mortgage to
// raise at least amount in cash, never selecting a square with houses.
// Candidates are sorted by efficiency (cash raised divided by the
// differential value given up) descending, so the most cash per unit of
// EPT sacrificed is spent first. Returns a partial or empty sequence if
// amount cannot be fully raised.
func (e *Engine) MortgageToRaise(snap *snapshot.Snapshot, playerID int, amount int) (chosen []int, err error) {
	defer e.observeDecision("MortgageToRaise", time.Now(), &err)

	if err := snapshot.Validate(e.board, snap); err != nil {
		return nil, err
	}

	a := snapshot.Analyze(e.board, snap)

	type candidate struct {
		square     int
		payout     int
		efficiency float64
	}
	var candidates []candidate
	for _, idx := range snap.Players[playerID].OwnedSquares {
		state := snap.Squares[idx]
		if state.Mortgaged || state.Houses > 0 {
			continue
		}
		diff, err := e.diffValFor(a, playerID, idx)
		if err != nil {
			return nil, err
		}
		payout := e.board.Squares[idx].Price / 2
		eff := float64(payout) / max(diff, epsilon)
		candidates = append(candidates, candidate{square: idx, payout: payout, efficiency: eff})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].efficiency > candidates[j].efficiency })

	raised := 0
	for _, c := range candidates {
		if raised >= amount {
			break
		}
		chosen = append(chosen, c.square)
		raised += c.payout
	}

	return chosen, nil
}

// UnmortgageIdle returns an ordered sequence of currently mortgaged
// squares to unmortgage while cash remains above the phase reserve,
// highest differential value first.
func (e *Engine) UnmortgageIdle(snap *snapshot.Snapshot, playerID int) (chosen []int, err error) {
	defer e.observeDecision("UnmortgageIdle", time.Now(), &err)

	if err := snapshot.Validate(e.board, snap); err != nil {
		return nil, err
	}

	a := snapshot.Analyze(e.board, snap)
	reserve := e.config.reserveFor(a.Phase())

	type candidate struct {
		square int
		cost   int
		diff   float64
	}
	var candidates []candidate
	for _, idx := range snap.Players[playerID].OwnedSquares {
		if !snap.Squares[idx].Mortgaged {
			continue
		}
		diff, err := e.diffValFor(a, playerID, idx)
		if err != nil {
			return nil, err
		}
		cost := int(float64(e.board.Squares[idx].Price) * 0.55)
		candidates = append(candidates, candidate{square: idx, cost: cost, diff: diff})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].diff > candidates[j].diff })

	cash := snap.Players[playerID].Cash
	for _, c := range candidates {
		if cash-c.cost < reserve {
			continue
		}
		chosen = append(chosen, c.square)
		cash -= c.cost
	}

	return chosen, nil
}
