package whist

import "math/rand"

// Suit represents a card suit.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of suits in the deck.
const NumSuits = 4

// MaxRank is the highest card rank in any deck; the rank band extends
// downward from here depending on the player count.
const MaxRank = 14

// FullHandSize is the hand size of the rounds that consume the whole deck.
// Those rounds have no trump indicator.
const FullHandSize = 8

// Card is an immutable (rank, suit) pair. A card exists exactly once per
// game, moving between the draw pile, a hand and the table.
type Card struct {
	Rank int
	Suit Suit
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Player identifies a seated player. Owned by the room layer; the engine
// only ever reads it.
type Player struct {
	ID   string
	Name string
}

// BidUnset marks a bid that has not been declared yet this round.
const BidUnset = -1

// PlayerRoundState is the per-player, per-round slice of game state. Points
// carry the running game total as of this round; everything else resets on
// each deal.
type PlayerRoundState struct {
	Player      *Player
	Hand        []Card
	Bid         int
	TricksWon   int
	Points      int
	FirstPlayer bool
}

// Round is one row of the schedule: a fixed hand size dealt to every seat.
type Round struct {
	Number   int
	HandSize int
	Players  []*PlayerRoundState // seat order
	Played   bool
}

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseBetting
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseBetting:
		return "betting"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Game is the root state container for one play session. All mutating
// operations must be externally serialized per game instance.
type Game struct {
	Players   []*Player // seat order
	DrawPile  []Card
	TrumpCard *Card  // revealed trump indicator, nil on full-hand rounds
	Table     []Card // cards of the in-progress trick, in play order
	Rounds    []*Round
	Phase     Phase

	rng *rand.Rand
}
