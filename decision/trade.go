package decision

import (
	"time"

	"monopolycore/board"
	"monopolycore/snapshot"
)

// jailCardEptValue is the per-card EPT credit for a Get-Out-of-Jail-Free
// card changing hands in a trade.
const jailCardEptValue = 0.1

// TradeOffer describes a proposed exchange from the evaluating player's
// point of view.
type TradeOffer struct {
	Counterparty int
	Receive      []int // squares the evaluating player would receive
	GiveUp       []int // squares the evaluating player would give up
	CashDelta    int   // positive: counterparty pays evaluating player
	ReceiveJailCards int
	GiveJailCards    int

	// LeaderAware, when true, applies the optional position-aware knobs:
	// a leader penalty when the counterparty is the leader, a dominance
	// penalty if accepting would make the evaluating player a dominant
	// leader, and an underdog bonus when the counterparty trails.
	LeaderAware bool
}

// TradeVerdict is the result of evaluating a trade offer.
type TradeVerdict struct {
	Accept bool
	NetEPT float64
}

// EvaluateTrade computes the net EPT delta of accepting offer and accepts
// iff it clears TradeAdvantageThreshold.
func (e *Engine) EvaluateTrade(snap *snapshot.Snapshot, playerID int, offer TradeOffer) (verdict TradeVerdict, err error) {
	defer e.observeDecision("EvaluateTrade", time.Now(), &err)

	if err := snapshot.Validate(e.board, snap); err != nil {
		return TradeVerdict{}, err
	}

	a := snapshot.Analyze(e.board, snap)

	net := 0.0
	for _, sq := range offer.Receive {
		diff, err := e.diffValFor(a, playerID, sq)
		if err != nil {
			return TradeVerdict{}, err
		}
		net += diff
	}
	for _, sq := range offer.GiveUp {
		diff, err := e.diffValFor(a, playerID, sq)
		if err != nil {
			return TradeVerdict{}, err
		}
		net -= diff
	}

	net += float64(offer.CashDelta) / e.config.CashToEptRate
	net += float64(offer.ReceiveJailCards-offer.GiveJailCards) * jailCardEptValue

	if offer.LeaderAware {
		net = applyLeaderAwareKnobs(e.board, a, snap, playerID, offer, net)
	}

	return TradeVerdict{Accept: net >= e.config.TradeAdvantageThreshold, NetEPT: net}, nil
}

// applyLeaderAwareKnobs scales net by the optional position-aware
// multipliers: a discount when the counterparty is already leading (they
// have less reason to help us), a further discount if the trade would
// make the evaluating player a dominant leader (vulnerable to collusion),
// and a bonus when the counterparty is trailing (more willing to give
// real value away).
func applyLeaderAwareKnobs(b *board.Board, a *snapshot.Analysis, snap *snapshot.Snapshot, playerID int, offer TradeOffer, net float64) float64 {
	counterparty := offer.Counterparty
	const leaderPenalty = 0.85
	const dominanceMargin = 1.5
	const dominancePenalty = 0.75
	const underdogBonus = 1.10

	if a.IsLeader(counterparty) {
		net *= leaderPenalty
	} else if a.Position(counterparty) > a.Position(playerID) {
		net *= underdogBonus
	}

	// Net worth the trade moves from the counterparty to the evaluating
	// player, valuing traded squares at their list price.
	transfer := offer.CashDelta
	for _, sq := range offer.Receive {
		transfer += b.Squares[sq].Price
	}
	for _, sq := range offer.GiveUp {
		transfer -= b.Squares[sq].Price
	}

	myWorth := float64(a.NetWorth(playerID) + transfer)
	secondBest := 0.0
	for i := range snap.Players {
		if i == playerID {
			continue
		}
		w := float64(a.NetWorth(i))
		if i == counterparty {
			w -= float64(transfer)
		}
		if w > secondBest {
			secondBest = w
		}
	}
	if secondBest > 0 && myWorth >= dominanceMargin*secondBest {
		net *= dominancePenalty
	}

	return net
}
