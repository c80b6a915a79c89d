// Package board holds the immutable description of the 40-square Monopoly
// board: square kinds, color groups, prices, rent schedules, and the two
// card decks. Everything here is a constant table the rest of the engine
// consumes; it is built once at package init and never mutated.
package board

// Kind identifies the category of a square.
type Kind int

const (
	KindGo Kind = iota
	KindStreet
	KindRailroad
	KindUtility
	KindTax
	KindChance
	KindChest
	KindJail
	KindFreeParking
	KindGoToJail
)

func (k Kind) String() string {
	switch k {
	case KindGo:
		return "Go"
	case KindStreet:
		return "Street"
	case KindRailroad:
		return "Railroad"
	case KindUtility:
		return "Utility"
	case KindTax:
		return "Tax"
	case KindChance:
		return "Chance"
	case KindChest:
		return "CommunityChest"
	case KindJail:
		return "Jail"
	case KindFreeParking:
		return "FreeParking"
	case KindGoToJail:
		return "GoToJail"
	default:
		return "Unknown"
	}
}

// ColorGroup identifies a street color group, or the synthetic railroad/
// utility ownership groups used when indexing per-group tables.
type ColorGroup int

const (
	Brown ColorGroup = iota
	LightBlue
	Pink
	Orange
	Red
	Yellow
	Green
	DarkBlue
	RailroadGroup
	UtilityGroup
	NoGroup
)

// NumStreetGroups is the number of true color groups (excludes the
// synthetic Railroad/Utility ownership groups).
const NumStreetGroups = 8

// Square count and special indices, fixed by the board layout.
const (
	NumSquares = 40

	IdxGo         = 0
	IdxJail       = 10
	IdxFreeParkng = 20
	IdxGoToJail   = 30

	LuxuryTaxAmount = 100
	PassGoIncome    = 200
)

// Square is one immutable board position.
type Square struct {
	Index      int
	Name       string
	Kind       Kind
	Group      ColorGroup
	Price      int
	HousePrice int
	// RentSchedule holds [base, 1house, 2houses, 3houses, 4houses, hotel] for
	// streets. Railroads and utilities use RailroadRent/UtilityMultipliers
	// instead, keyed by ownership count rather than development level.
	RentSchedule [6]int
	TaxAmount    int
}

// IsStreet, IsRailroad and IsUtility are convenience predicates used
// throughout the valuator and decision layers.
func (s Square) IsStreet() bool    { return s.Kind == KindStreet }
func (s Square) IsRailroad() bool  { return s.Kind == KindRailroad }
func (s Square) IsUtility() bool   { return s.Kind == KindUtility }
func (s Square) IsBuyable() bool   { return s.IsStreet() || s.IsRailroad() || s.IsUtility() }
func (s Square) IsCardSquare() bool { return s.Kind == KindChance || s.Kind == KindChest }

// RailroadRent is the shared rent schedule for railroads, indexed by
// number owned (1..4) at index (n-1).
var RailroadRent = [4]int{25, 50, 100, 200}

// UtilityMultipliers scales a 2d6 roll's expectation, indexed by number
// owned (1..2) at index (n-1).
var UtilityMultipliers = [2]int{4, 10}

// Board is the full 40-square layout plus the two card decks. A single
// process-lifetime instance is returned by New.
type Board struct {
	Squares     [NumSquares]Square
	GroupSquare map[ColorGroup][]int
	Chance      Deck
	Chest       Deck
}

var standard = buildStandardBoard()

// New returns the standard US-edition board. The board is an immutable
// constant table; callers may freely share the returned pointer.
func New() *Board {
	return standard
}

func buildStandardBoard() *Board {
	b := &Board{
		GroupSquare: map[ColorGroup][]int{},
	}

	for _, sq := range standardSquares {
		b.Squares[sq.Index] = sq
		if sq.IsStreet() || sq.IsRailroad() || sq.IsUtility() {
			b.GroupSquare[sq.Group] = append(b.GroupSquare[sq.Group], sq.Index)
		}
	}

	b.Chance = buildChanceDeck()
	b.Chest = buildChestDeck()

	validateBoard(b)

	return b
}

// validateBoard enforces the §3 invariants on the constant table. A
// violation here is a programmer error in this package, never a runtime
// condition, so it panics at package init rather than returning an error.
func validateBoard(b *Board) {
	var streets, rails, utils, chance, chest, tax, corners int
	for _, sq := range b.Squares {
		switch sq.Kind {
		case KindStreet:
			streets++
		case KindRailroad:
			rails++
		case KindUtility:
			utils++
		case KindChance:
			chance++
		case KindChest:
			chest++
		case KindTax:
			tax++
		case KindGo, KindJail, KindFreeParking, KindGoToJail:
			corners++
		}
	}
	if streets != 22 || rails != 4 || utils != 2 || chance != 3 || chest != 3 || tax != 2 || corners != 4 {
		panic("board: standard board invariant violated")
	}
	if len(b.Chance.Cards) != 16 || len(b.Chest.Cards) != 16 {
		panic("board: card decks must have exactly 16 cards")
	}
}

// SquareNames returns the display name of every square, in board order.
func (b *Board) SquareNames() []string {
	names := make([]string, NumSquares)
	for i, sq := range b.Squares {
		names[i] = sq.Name
	}
	return names
}

// NearestOfKind returns the index of the next square of the given kind
// strictly after from, wrapping around the board. Used by
// AdvanceToNearestRailroad/Utility card resolution.
func (b *Board) NearestOfKind(from int, kind Kind) int {
	for step := 1; step <= NumSquares; step++ {
		idx := (from + step) % NumSquares
		if b.Squares[idx].Kind == kind {
			return idx
		}
	}
	panic("board: no square of requested kind")
}
