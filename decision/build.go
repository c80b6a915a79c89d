package decision

import (
	"sort"
	"time"

	"monopolycore/board"
	"monopolycore/snapshot"
)

// BuildStep is one +1-house increment the decision layer recommends.
type BuildStep struct {
	Square int
	// TargetHouses is the house count the square will have after this
	// step is applied (1..5, 5 meaning a hotel).
	TargetHouses int
}

// Build returns the sequence of +1-house steps to apply this turn,
// honoring even building at every intermediate step and spending only
// cash above the phase reserve. Steps are sorted by marginal ROI,
// descending; when ThirdHousePriority is enabled, steps reaching a
// 3-house target are promoted ahead of steps that do not, stably within
// that ordering.
func (e *Engine) Build(snap *snapshot.Snapshot, playerID int) (steps []BuildStep, err error) {
	defer e.observeDecision("Build", time.Now(), &err)

	if err := snapshot.Validate(e.board, snap); err != nil {
		return nil, err
	}

	a := snapshot.Analyze(e.board, snap)
	policy := e.determineJailPolicy(a, playerID)
	v, err := e.valuatorFor(policy)
	if err != nil {
		return nil, err
	}

	// Work on a local copy of house counts so each applied step can shift
	// the group minimum for the next candidate scan.
	houses := make(map[int]int)
	for _, idx := range snap.Players[playerID].OwnedSquares {
		houses[idx] = snap.Squares[idx].Houses
	}

	available := snap.Players[playerID].Cash - e.config.reserveFor(a.Phase())

	for {
		candidates := legalBuildSteps(e.board, snap, playerID, houses)
		if len(candidates) == 0 {
			break
		}
		for i := range candidates {
			candidates[i].roi = v.MarginalROI(candidates[i].square, candidates[i].step)
		}
		sortBuildCandidates(candidates, e.config.ThirdHousePriority)

		applied := false
		for _, c := range candidates {
			cost := e.board.Squares[c.square].HousePrice
			if cost > available {
				continue
			}
			houses[c.square]++
			available -= cost
			steps = append(steps, BuildStep{Square: c.square, TargetHouses: houses[c.square]})
			applied = true
			break
		}
		if !applied {
			break
		}
	}

	return steps, nil
}

type buildCandidate struct {
	square int
	step   int // 0-based build step index: 0 = 0h->1h ... 4 = 4h->hotel
	roi    float64
}

// legalBuildSteps enumerates every square where the next house may
// legally be placed: the player owns the full color group, the square is
// not a railroad/utility, is not already a hotel, is not mortgaged, and
// its current house count equals the group minimum (even building).
func legalBuildSteps(b *board.Board, snap *snapshot.Snapshot, playerID int, houses map[int]int) []buildCandidate {
	var out []buildCandidate
	a := snapshot.Analyze(b, snap)

	for group, squares := range b.GroupSquare {
		if group == board.RailroadGroup || group == board.UtilityGroup {
			continue
		}
		if !a.GroupFullyOwnedBy(playerID, group) {
			continue
		}

		groupMin := snapshot.MaxHouses
		for _, idx := range squares {
			if h := houses[idx]; h < groupMin {
				groupMin = h
			}
		}

		for _, idx := range squares {
			if houses[idx] != groupMin || groupMin >= snapshot.MaxHouses {
				continue
			}
			if snap.Squares[idx].Mortgaged {
				continue
			}
			out = append(out, buildCandidate{square: idx, step: houses[idx]})
		}
	}
	return out
}

// sortBuildCandidates orders by descending marginal ROI. When
// thirdHousePriority is set, every candidate whose step reaches the
// 3-house level (step index 2, i.e. 2h->3h) is promoted ahead of every
// candidate that does not, stably preserving the ROI order within each
// group.
func sortBuildCandidates(candidates []buildCandidate, thirdHousePriority bool) {
	const thirdHouseStep = 2
	sort.SliceStable(candidates, func(i, j int) bool {
		if thirdHousePriority {
			iThird := candidates[i].step == thirdHouseStep
			jThird := candidates[j].step == thirdHouseStep
			if iThird != jThird {
				return iThird
			}
		}
		return candidates[i].roi > candidates[j].roi
	})
}
