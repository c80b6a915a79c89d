package markov

import "monopolycore/board"

const (
	// LeaveStates is the size of the Leave-policy state space: the board
	// alone.
	LeaveStates = board.NumSquares
	// StayStates augments the board with two synthetic jail-residency
	// states tracking turns already served while staying in jail.
	StayStates = board.NumSquares + 2
	// StayJailTurn2 is "in jail, about to attempt escape on the second
	// jailed turn."
	StayJailTurn2 = board.NumSquares
	// StayJailTurn3 is "in jail, third turn: mandatory release."
	StayJailTurn3 = board.NumSquares + 1

	// maxCardRedirects bounds the recursive resolution of a landing square
	// that itself redirects (e.g. a Go-Back-3 card landing on another
	// Community Chest square). The board can never actually chain this
	// deep; the guard exists purely so a future board edit can't turn a
	// bug into an infinite loop.
	maxCardRedirects = 8
)

// dist is a probability distribution over board squares (and, for Stay
// policy rows, synthetic jail states), represented sparsely.
type dist map[int]float64

func (d dist) add(square int, mass float64) {
	if mass == 0 {
		return
	}
	d[square] += mass
}

// resolveLanding returns the distribution of final squares reached after
// landing on square, resolving Go-To-Jail and card-draw redirects until
// the result is non-redirecting. square itself is returned with mass 1
// when it redirects to nowhere (the common case).
func resolveLanding(b *board.Board, square int) dist {
	d := dist{}
	resolveLandingInto(b, square, 1.0, 0, d)
	return d
}

func resolveLandingInto(b *board.Board, square int, mass float64, depth int, out dist) {
	if depth > maxCardRedirects {
		out.add(square, mass)
		return
	}

	sq := b.Squares[square]
	switch {
	case square == board.IdxGoToJail:
		out.add(board.IdxJail, mass)
	case sq.Kind == board.KindChance:
		resolveDeckInto(b, &b.Chance, square, mass, depth, out)
	case sq.Kind == board.KindChest:
		resolveDeckInto(b, &b.Chest, square, mass, depth, out)
	default:
		out.add(square, mass)
	}
}

func resolveDeckInto(b *board.Board, deck *board.Deck, square int, mass float64, depth int, out dist) {
	perCard := mass / float64(len(deck.Cards))
	for _, card := range deck.Cards {
		target := card.TargetSquare(b, square)
		if target == square {
			// Non-movement card (including Get-Out-Of-Jail-Free): mass
			// stays put, no further redirection possible.
			out.add(square, perCard)
			continue
		}
		resolveLandingInto(b, target, perCard, depth+1, out)
	}
}

// singleRollLanding resolves the landing distribution for one specific,
// already-rolled die sum from fromSquare, with no doubles chaining. Used
// for the "escape jail by rolling doubles" transition, where the roll
// that frees the player also moves them, but does not grant a bonus turn.
func singleRollLanding(b *board.Board, fromSquare, sum int) dist {
	return resolveLanding(b, (fromSquare+sum)%board.NumSquares)
}

// turnDistribution computes the full end-of-turn landing distribution
// starting at fromSquare: one roll, or a chain of rolls while doubles
// keep coming, with three consecutive doubles sending the player
// directly to Jail regardless of the third roll's value.
func turnDistribution(b *board.Board, fromSquare int) dist {
	out := dist{}
	accumulateRoll(b, fromSquare, 1.0, 0, out)
	return out
}

func accumulateRoll(b *board.Board, square int, mass float64, doublesSoFar int, out dist) {
	const perOutcome = 1.0 / 36.0
	for i := 1; i <= 6; i++ {
		for j := 1; j <= 6; j++ {
			prob := mass * perOutcome
			isDouble := i == j

			if isDouble && doublesSoFar == 2 {
				// Third consecutive double: go directly to Jail, the
				// roll's pip count never gets applied to movement.
				out.add(board.IdxJail, prob)
				continue
			}

			landing := resolveLanding(b, (square+i+j)%board.NumSquares)
			if isDouble {
				for finalSquare, p := range landing {
					accumulateRoll(b, finalSquare, prob*p, doublesSoFar+1, out)
				}
			} else {
				for finalSquare, p := range landing {
					out.add(finalSquare, prob*p)
				}
			}
		}
	}
}

// BuildTransitions constructs the row-stochastic transition matrix for
// the given jail policy. Row i holds the distribution of where a turn
// starting in state i ends up.
func BuildTransitions(b *board.Board, policy JailPolicy) [][]float64 {
	if policy == Stay {
		return buildStayTransitions(b)
	}
	return buildLeaveTransitions(b)
}

func buildLeaveTransitions(b *board.Board) [][]float64 {
	rows := make([][]float64, LeaveStates)
	for p := 0; p < LeaveStates; p++ {
		rows[p] = distToRow(turnDistribution(b, p), LeaveStates)
	}
	return rows
}

func buildStayTransitions(b *board.Board) [][]float64 {
	rows := make([][]float64, StayStates)
	for p := 0; p < board.NumSquares; p++ {
		if p == board.IdxJail {
			rows[p] = distToRow(jailAttemptRow(b, StayJailTurn2), StayStates)
			continue
		}
		rows[p] = distToRow(turnDistribution(b, p), StayStates)
	}
	rows[StayJailTurn2] = distToRow(jailAttemptRow(b, StayJailTurn3), StayStates)
	rows[StayJailTurn3] = distToRow(turnDistribution(b, board.IdxJail), StayStates)
	return rows
}

// jailAttemptRow is one turn spent attempting to escape jail by rolling
// doubles: escape (1/6, split across the six doubles outcomes, each
// moving by its own pip count) or remain for another turn (5/6, routed to
// stayTarget).
func jailAttemptRow(b *board.Board, stayTarget int) dist {
	out := dist{}
	const perOutcome = 1.0 / 36.0
	for i := 1; i <= 6; i++ {
		for j := 1; j <= 6; j++ {
			if i == j {
				landing := singleRollLanding(b, board.IdxJail, i+j)
				for finalSquare, p := range landing {
					out.add(finalSquare, perOutcome*p)
				}
			} else {
				out.add(stayTarget, perOutcome)
			}
		}
	}
	return out
}

func distToRow(d dist, size int) []float64 {
	row := make([]float64, size)
	for square, mass := range d {
		row[square] += mass
	}
	return row
}
