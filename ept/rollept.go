// Package ept computes Earnings-Per-Turn contributions that are
// independent of property ownership: passing Go, tax squares, and the
// money effects of the Chance and Community Chest decks.
package ept

import (
	"monopolycore/board"
	"monopolycore/dice"
)

// TaxRule selects which Income Tax variant the Roll-EPT calculator uses.
// The engine defaults to the percentage rule; the flat-$200 variant is
// exposed as a policy flag per the spec's open question on which the US
// edition treats as normative.
type TaxRule int

const (
	// TaxPercentOrFlat charges min(200, floor(netWorth*0.10)).
	TaxPercentOrFlat TaxRule = iota
	// TaxFlat always charges a flat $200.
	TaxFlat
)

// Params are the household parameters the Roll-EPT calculation is
// conditioned on.
type Params struct {
	NetWorth      int
	OwnedHouses   int
	OwnedHotels   int
	OpponentCount int
	TaxRule       TaxRule
}

// Breakdown reports the per-source contributions to total EPT, for
// observability and testing.
type Breakdown struct {
	PassGo float64
	Chance float64
	Chest  float64
	Tax    float64
	Total  float64
}

// Calculate computes the ownership-independent Roll-EPT breakdown for a
// player with the given stationary distribution pi (indexed by board
// square; synthetic jail states, if present, are ignored).
func Calculate(b *board.Board, pi []float64, p Params) Breakdown {
	bd := Breakdown{
		PassGo: passGoEPT(b, pi),
		Tax:    taxEPT(b, pi, p),
	}
	bd.Chance = deckMoneyEPT(&b.Chance, pi, p, chanceSquares(b))
	bd.Chest = deckMoneyEPT(&b.Chest, pi, p, chestSquares(b))
	bd.Total = bd.PassGo + bd.Chance + bd.Chest + bd.Tax
	return bd
}

func chanceSquares(b *board.Board) []int {
	return squaresOfKind(b, board.KindChance)
}

func chestSquares(b *board.Board) []int {
	return squaresOfKind(b, board.KindChest)
}

func squaresOfKind(b *board.Board, kind board.Kind) []int {
	var out []int
	for _, sq := range b.Squares {
		if sq.Kind == kind {
			out = append(out, sq.Index)
		}
	}
	return out
}

// passGoEPT sums, over every square s, the probability of passing Go on
// the next turn from s: a direct roll that crosses Go (sum >= 40-s), plus
// the Advance-to-Go movement cards drawn on Chance/Chest squares.
func passGoEPT(b *board.Board, pi []float64) float64 {
	total := 0.0
	for s := 0; s < board.NumSquares; s++ {
		needed := board.NumSquares - s
		passProb := 0.0
		for sum, mass := range dice.SumDistribution {
			if sum >= needed {
				passProb += mass
			}
		}
		total += pi[s] * passProb
	}
	total += advanceToGoCardProb(pi, chanceSquares(b), &b.Chance)
	total += advanceToGoCardProb(pi, chestSquares(b), &b.Chest)
	return total * float64(board.PassGoIncome)
}

// advanceToGoCardProb returns the probability mass, per turn, of drawing
// an Advance-to-Go card from deck: the probability of landing on one of
// squares (any of which draws from deck with equal likelihood) times the
// deck's fraction of Advance-to-Go cards.
func advanceToGoCardProb(pi []float64, squares []int, deck *board.Deck) float64 {
	landingMass := 0.0
	for _, sq := range squares {
		landingMass += pi[sq]
	}
	if landingMass == 0 {
		return 0
	}

	perCard := 1.0 / float64(len(deck.Cards))
	cardProb := 0.0
	for _, card := range deck.Cards {
		if card.Move == board.MoveAdvanceTo && card.Target == board.IdxGo {
			cardProb += perCard
		}
	}
	return landingMass * cardProb
}

func taxEPT(b *board.Board, pi []float64, p Params) float64 {
	income := 0.0
	for _, sq := range b.Squares {
		if sq.Kind != board.KindTax {
			continue
		}
		amount := sq.TaxAmount
		if sq.Index == 4 && p.TaxRule == TaxPercentOrFlat {
			pct := p.NetWorth / 10
			if pct < amount {
				amount = pct
			}
		}
		income -= pi[sq.Index] * float64(amount)
	}
	return income
}

// deckMoneyEPT sums the expected per-turn money effect of a deck, weighted
// by the probability mass resting on any of its squares (since any of
// those squares could be drawn from with equal likelihood) and by 1/16
// per card.
func deckMoneyEPT(deck *board.Deck, pi []float64, p Params, squares []int) float64 {
	landingMass := 0.0
	for _, sq := range squares {
		landingMass += pi[sq]
	}
	if landingMass == 0 {
		return 0
	}

	perCard := 1.0 / float64(len(deck.Cards))
	total := 0.0
	for _, card := range deck.Cards {
		total += perCard * moneyEffect(card, p)
	}
	return landingMass * total
}

func moneyEffect(card board.Card, p Params) float64 {
	switch card.Money {
	case board.MoneyFixed:
		return float64(card.Amount)
	case board.MoneyPerOpponentPay:
		return -float64(card.Amount) * float64(p.OpponentCount)
	case board.MoneyPerOpponentCollect:
		return float64(card.Amount) * float64(p.OpponentCount)
	case board.MoneyRepair:
		return float64(card.PerHouse*p.OwnedHouses + card.PerHotel*p.OwnedHotels)
	default:
		return 0
	}
}
