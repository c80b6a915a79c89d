package decision

import (
	"time"

	"monopolycore/markov"
	"monopolycore/snapshot"
)

// epsilon guards efficiency ratios (cash/diffVal) against division by a
// near-zero denominator.
const epsilon = 1e-6

// determineJailPolicy derives the jail policy a player should plan around
// for the rest of the game from the current snapshot: leave if the game
// is still in its opening, otherwise stay iff opponents hold at least
// JailStayThreshold developed properties, else leave.
func (e *Engine) determineJailPolicy(a *snapshot.Analysis, playerID int) markov.JailPolicy {
	if a.Phase() == snapshot.Opening {
		return markov.Leave
	}
	if a.OpponentDevelopedCount(playerID) >= e.config.JailStayThreshold {
		return markov.Stay
	}
	return markov.Leave
}

// DetermineJailPolicy is determineJailPolicy's snapshot-taking public
// entry point.
func (e *Engine) DetermineJailPolicy(snap *snapshot.Snapshot, playerID int) (policy markov.JailPolicy, err error) {
	defer e.observeDecision("DetermineJailPolicy", time.Now(), &err)

	if err := snapshot.Validate(e.board, snap); err != nil {
		return markov.Leave, err
	}
	a := snapshot.Analyze(e.board, snap)
	return e.determineJailPolicy(a, playerID), nil
}

// ShouldPostBail answers the post-bail question: under a leave policy,
// exit jail (pay bail / play a card) on the first eligible turn; under a
// stay policy, only exit on the mandatory third turn.
func (e *Engine) ShouldPostBail(snap *snapshot.Snapshot, playerID int, turnsInJail int) (post bool, err error) {
	defer e.observeDecision("ShouldPostBail", time.Now(), &err)

	if err := snapshot.Validate(e.board, snap); err != nil {
		return false, err
	}
	a := snapshot.Analyze(e.board, snap)
	if e.determineJailPolicy(a, playerID) == markov.Leave {
		return true, nil
	}
	return turnsInJail >= 2, nil
}
