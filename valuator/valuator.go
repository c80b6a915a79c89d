// Package valuator turns a Markov stationary distribution into expected
// per-turn income at every ownership/development level of every buyable
// square, and combines those tables into the own-EPT-plus-denial-EPT
// differential value the decision layer ranks acquisitions by.
package valuator

import (
	"monopolycore/board"
	"monopolycore/dice"
)

// Level identifies a street's development state for EPT-table lookups.
// Railroads and utilities are valued by ownership count instead; see
// RailroadEPT and UtilityEPT.
type Level int

const (
	// NoMonopoly is a street owned alone, without the rest of its group:
	// rent is the undeveloped base rate with no monopoly bonus.
	NoMonopoly Level = iota
	// Monopoly0h is a fully owned group with no houses yet built: rent
	// doubles over the undeveloped base rate.
	Monopoly0h
	Level1House
	Level2Houses
	Level3Houses
	Level4Houses
	LevelHotel
	numLevels
)

// NumBuildSteps is the number of house-building increments from a bare
// monopoly to a hotel (0h->1h, 1h->2h, 2h->3h, 3h->4h, 4h->hotel).
const NumBuildSteps = 5

// Valuator holds the EPT tables derived from one stationary distribution.
// It is immutable once built and safe for concurrent use by any number of
// decision calls.
type Valuator struct {
	board *board.Board
	pi    []float64

	// streetEPT[square][level] is dollars per opponent per turn.
	streetEPT [board.NumSquares][numLevels]float64
	// railroadEPT[square][ownCount-1], ownCount in 1..4.
	railroadEPT [board.NumSquares][4]float64
	// utilityEPT[square][ownCount-1], ownCount in 1..2.
	utilityEPT [board.NumSquares][2]float64
}

// New builds the full set of EPT tables from stationary distribution pi,
// indexed by board square (synthetic jail residency states, if present in
// pi, are not addressed by any square index and are simply never read).
func New(b *board.Board, pi []float64) *Valuator {
	v := &Valuator{board: b, pi: pi}
	for _, sq := range b.Squares {
		switch {
		case sq.IsStreet():
			v.buildStreetRow(sq)
		case sq.IsRailroad():
			v.buildRailroadRow(sq)
		case sq.IsUtility():
			v.buildUtilityRow(sq)
		}
	}
	return v
}

func (v *Valuator) buildStreetRow(sq board.Square) {
	mass := v.pi[sq.Index]
	row := &v.streetEPT[sq.Index]
	row[NoMonopoly] = mass * float64(sq.RentSchedule[0])
	row[Monopoly0h] = mass * float64(sq.RentSchedule[0]) * 2
	for level := Level1House; level <= LevelHotel; level++ {
		row[level] = mass * float64(sq.RentSchedule[level-Level1House+1])
	}
}

func (v *Valuator) buildRailroadRow(sq board.Square) {
	mass := v.pi[sq.Index]
	for n := 0; n < 4; n++ {
		v.railroadEPT[sq.Index][n] = mass * float64(board.RailroadRent[n])
	}
}

func (v *Valuator) buildUtilityRow(sq board.Square) {
	mass := v.pi[sq.Index]
	for n := 0; n < 2; n++ {
		v.utilityEPT[sq.Index][n] = mass * dice.ExpectedSum * float64(board.UtilityMultipliers[n])
	}
}

// StreetEPT returns the per-opponent-per-turn rent income for square at
// level.
func (v *Valuator) StreetEPT(square int, level Level) float64 {
	return v.streetEPT[square][level]
}

// RailroadEPT returns the per-opponent-per-turn rent income for a
// railroad owned by a player holding ownCount (1..4) railroads total.
func (v *Valuator) RailroadEPT(square, ownCount int) float64 {
	if ownCount < 1 || ownCount > 4 {
		return 0
	}
	return v.railroadEPT[square][ownCount-1]
}

// UtilityEPT returns the per-opponent-per-turn rent income for a utility
// owned by a player holding ownCount (1..2) utilities total.
func (v *Valuator) UtilityEPT(square, ownCount int) float64 {
	if ownCount < 1 || ownCount > 2 {
		return 0
	}
	return v.utilityEPT[square][ownCount-1]
}

// MarginalROI returns the incremental per-opponent-per-turn rent gained by
// the house-building step'th increment (0 = 0h->1h, ..., 4 = 4h->hotel)
// divided by that step's construction cost, for sizing build priority.
func (v *Valuator) MarginalROI(square int, step int) float64 {
	if step < 0 || step >= NumBuildSteps {
		return 0
	}
	from := Monopoly0h + Level(step)
	to := from + 1
	delta := v.streetEPT[square][to] - v.streetEPT[square][from]
	cost := v.board.Squares[square].HousePrice
	if cost == 0 {
		return 0
	}
	return delta / float64(cost)
}
