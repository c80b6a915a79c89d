package board

// MoveKind tags the movement effect, if any, of a card.
type MoveKind int

const (
	MoveNone MoveKind = iota
	MoveAdvanceTo
	MoveAdvanceToNearestRailroad
	MoveAdvanceToNearestUtility
	MoveGoBack3
	MoveGoToJail
)

// MoneyKind tags the cash effect, if any, of a card.
type MoneyKind int

const (
	MoneyNone MoneyKind = iota
	// MoneyFixed is a flat amount; positive is income, negative is an
	// expense for the drawing player.
	MoneyFixed
	// MoneyPerOpponentPay is paid by the drawing player to each opponent
	// (e.g. "you are elected chairman of the board").
	MoneyPerOpponentPay
	// MoneyPerOpponentCollect is collected by the drawing player from each
	// opponent (e.g. "it's your birthday").
	MoneyPerOpponentCollect
	// MoneyRepair charges the drawing player PerHouse per house and
	// PerHotel per hotel owned.
	MoneyRepair
)

// Card is one entry of a 16-card deck, modeled as a tagged sum of a
// movement effect and a money effect so the Markov engine can consume the
// former and the roll-EPT calculator the latter from the same data.
type Card struct {
	Name     string
	Move     MoveKind
	Target   int // destination square for MoveAdvanceTo
	Money    MoneyKind
	Amount   int
	PerHouse int
	PerHotel int
	// GetOutOfJailFree cards have neither movement nor a money effect; they
	// are tracked in a player's hand by the snapshot adapter, not here.
	GetOutOfJailFree bool
}

// Deck holds exactly 16 equiprobable cards.
type Deck struct {
	Name  string
	Cards [16]Card
}

// TargetSquare resolves the destination of a card drawn while standing on
// fromSquare. Non-movement cards resolve to fromSquare itself, so callers
// can always treat the result as "the square play continues from."
func (c Card) TargetSquare(b *Board, fromSquare int) int {
	switch c.Move {
	case MoveAdvanceTo:
		return c.Target
	case MoveAdvanceToNearestRailroad:
		return b.NearestOfKind(fromSquare, KindRailroad)
	case MoveAdvanceToNearestUtility:
		return b.NearestOfKind(fromSquare, KindUtility)
	case MoveGoBack3:
		return (fromSquare - 3 + NumSquares) % NumSquares
	case MoveGoToJail:
		return IdxJail
	default:
		return fromSquare
	}
}

func buildChanceDeck() Deck {
	return Deck{
		Name: "Chance",
		Cards: [16]Card{
			{Name: "Advance to Go", Move: MoveAdvanceTo, Target: IdxGo},
			{Name: "Advance to Illinois Avenue", Move: MoveAdvanceTo, Target: 24},
			{Name: "Advance to St. Charles Place", Move: MoveAdvanceTo, Target: 11},
			{Name: "Advance token to nearest Utility", Move: MoveAdvanceToNearestUtility},
			{Name: "Advance token to nearest Railroad", Move: MoveAdvanceToNearestRailroad},
			{Name: "Advance token to nearest Railroad", Move: MoveAdvanceToNearestRailroad},
			{Name: "Take a trip to Reading Railroad", Move: MoveAdvanceTo, Target: 5},
			{Name: "Take a walk on the Boardwalk", Move: MoveAdvanceTo, Target: 39},
			{Name: "Go Back 3 Spaces", Move: MoveGoBack3},
			{Name: "Go to Jail", Move: MoveGoToJail},
			{Name: "Get Out of Jail Free", GetOutOfJailFree: true},
			{Name: "Bank pays you dividend of $50", Money: MoneyFixed, Amount: 50},
			{Name: "Pay poor tax of $15", Money: MoneyFixed, Amount: -15},
			{Name: "Make general repairs on all your property", Money: MoneyRepair, PerHouse: -25, PerHotel: -100},
			{Name: "You have been elected chairman of the board", Money: MoneyPerOpponentPay, Amount: 50},
			{Name: "Your building loan matures, collect $150", Money: MoneyFixed, Amount: 150},
		},
	}
}

func buildChestDeck() Deck {
	return Deck{
		Name: "Community Chest",
		Cards: [16]Card{
			{Name: "Advance to Go", Move: MoveAdvanceTo, Target: IdxGo},
			{Name: "Go to Jail", Move: MoveGoToJail},
			{Name: "Get Out of Jail Free", GetOutOfJailFree: true},
			{Name: "Bank error in your favor, collect $200", Money: MoneyFixed, Amount: 200},
			{Name: "Doctor's fees, pay $50", Money: MoneyFixed, Amount: -50},
			{Name: "From sale of stock you get $50", Money: MoneyFixed, Amount: 50},
			{Name: "Holiday fund matures, receive $100", Money: MoneyFixed, Amount: 100},
			{Name: "Income tax refund, collect $20", Money: MoneyFixed, Amount: 20},
			{Name: "It is your birthday, collect $10 from every player", Money: MoneyPerOpponentCollect, Amount: 10},
			{Name: "Life insurance matures, collect $100", Money: MoneyFixed, Amount: 100},
			{Name: "Pay hospital fees of $100", Money: MoneyFixed, Amount: -100},
			{Name: "Pay school fees of $50", Money: MoneyFixed, Amount: -50},
			{Name: "Receive $25 consultancy fee", Money: MoneyFixed, Amount: 25},
			{Name: "Street repairs, assess for repairs", Money: MoneyRepair, PerHouse: -40, PerHotel: -115},
			{Name: "Won second prize in a beauty contest, collect $10", Money: MoneyFixed, Amount: 10},
			{Name: "You inherit $100", Money: MoneyFixed, Amount: 100},
		},
	}
}
