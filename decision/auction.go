package decision

import (
	"math"
	"time"

	"monopolycore/snapshot"
)

// BidAction is the result of one auction round: either Exit (stop
// bidding) or a concrete raise amount.
type BidAction struct {
	Exit   bool
	Amount int
}

// Bid answers one auction round for square, given the current leading
// bid. Willingness starts at price, is scaled up by the monopoly-
// completion bonus when winning would complete our group and by the
// blocking bonus when an opponent is one square short of a monopoly, and
// is capped by both the overpay cap and affordability. A leading bid at or
// above willingness, or at or above the player's max affordable amount,
// exits.
func (e *Engine) Bid(snap *snapshot.Snapshot, playerID, square, currentBid int) (action BidAction, err error) {
	defer e.observeDecision("Bid", time.Now(), &err)

	if err := snapshot.Validate(e.board, snap); err != nil {
		return BidAction{}, err
	}

	a := snapshot.Analyze(e.board, snap)
	cash := snap.Players[playerID].Cash
	reserve := e.config.reserveFor(a.Phase())
	maxAffordable := cash - reserve

	if currentBid >= maxAffordable {
		return BidAction{Exit: true}, nil
	}

	price := float64(e.board.Squares[square].Price)
	willingness := price

	if a.CompletesGroup(playerID, square) {
		willingness *= e.config.MonopolyCompletionBonus
	}
	if opponentBlocked(a, playerID, square) {
		willingness *= e.config.BlockingBidBonus
	}

	cap := price * e.config.AuctionMaxOverpay
	if willingness > cap {
		willingness = cap
	}
	if willingness > float64(maxAffordable) {
		willingness = float64(maxAffordable)
	}

	if float64(currentBid) >= willingness {
		return BidAction{Exit: true}, nil
	}

	raise := math.Max(10, math.Round(0.20*(willingness-float64(currentBid))))
	next := math.Min(willingness, math.Min(float64(maxAffordable), float64(currentBid)+raise))

	return BidAction{Amount: int(math.Round(next))}, nil
}

// opponentBlocked reports whether any opponent other than playerID is one
// square short of completing square's color group.
func opponentBlocked(a *snapshot.Analysis, playerID, square int) bool {
	_, ok := a.SingleOpponentOwnsRest(playerID, square)
	return ok
}
