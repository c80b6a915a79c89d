package montecarlo

import (
	"math/rand"

	"monopolycore/board"
)

// maxCardRedirects mirrors the analytic chain's recursion guard: the board
// can never chain a card redirect this deep, the bound exists only so a
// future board edit can't turn a bug into an infinite loop.
const maxCardRedirects = 8

// sampleLanding draws one random walk's landing square starting from
// square, resolving Go-To-Jail and card-draw redirects exactly as the
// analytic chain's resolveLanding does, but by drawing a single card per
// redirect instead of splitting mass across the whole deck.
func sampleLanding(rng *rand.Rand, b *board.Board, square int) int {
	for depth := 0; depth <= maxCardRedirects; depth++ {
		if square == board.IdxGoToJail {
			square = board.IdxJail
			continue
		}

		var deck *board.Deck
		switch b.Squares[square].Kind {
		case board.KindChance:
			deck = &b.Chance
		case board.KindChest:
			deck = &b.Chest
		default:
			return square
		}

		card := deck.Cards[rng.Intn(len(deck.Cards))]
		target := card.TargetSquare(b, square)
		if target == square {
			// Non-movement card (including Get-Out-Of-Jail-Free): no
			// further redirection possible.
			return square
		}
		square = target
	}
	return square
}

// sampleTurn draws one full turn starting at square: a roll, resolved
// through sampleLanding, with doubles granting a bonus roll and a third
// consecutive double sending the player directly to Jail regardless of its
// own pip count. Mirrors accumulateRoll.
func sampleTurn(rng *rand.Rand, b *board.Board, square int) int {
	doublesSoFar := 0
	for {
		i := 1 + rng.Intn(6)
		j := 1 + rng.Intn(6)
		isDouble := i == j

		if isDouble && doublesSoFar == 2 {
			return board.IdxJail
		}

		square = sampleLanding(rng, b, (square+i+j)%board.NumSquares)
		if !isDouble {
			return square
		}
		doublesSoFar++
	}
}

// sampleJailAttempt draws one turn spent attempting to escape jail by
// rolling doubles: on doubles (1/6), the escaping roll also moves the
// player with no bonus turn; otherwise the player remains, reported as
// stayTarget. Mirrors jailAttemptRow.
func sampleJailAttempt(rng *rand.Rand, b *board.Board, stayTarget int) int {
	i := 1 + rng.Intn(6)
	j := 1 + rng.Intn(6)
	if i != j {
		return stayTarget
	}
	return sampleLanding(rng, b, (board.IdxJail+i+j)%board.NumSquares)
}
