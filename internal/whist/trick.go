package whist

import "fmt"

// handHasSuit reports whether the hand holds at least one card of the suit.
func handHasSuit(hand []Card, s Suit) bool {
	for _, c := range hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// findCardInHand returns the index of the exact card in the hand, or -1.
func findCardInHand(hand []Card, target Card) int {
	for i, c := range hand {
		if c == target {
			return i
		}
	}
	return -1
}

// cardsOfSuit returns the hand's cards matching the suit.
func cardsOfSuit(hand []Card, s Suit) []Card {
	var out []Card
	for _, c := range hand {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

// PlayableCards returns the subset of the player's hand that the suit and
// trump rules allow right now: the full hand when leading, otherwise the
// led-suit cards, the trump cards when out of the led suit, or the full
// hand when out of both. Empty outside the play phase.
func (g *Game) PlayableCards(playerID string) ([]Card, error) {
	if g.Phase != PhasePlaying {
		return nil, nil
	}
	r, err := g.CurrentRound()
	if err != nil {
		return nil, err
	}
	ps, err := r.State(playerID)
	if err != nil {
		return nil, err
	}

	if len(g.Table) == 0 {
		return append([]Card(nil), ps.Hand...), nil
	}
	led := g.Table[0].Suit
	if handHasSuit(ps.Hand, led) {
		return cardsOfSuit(ps.Hand, led), nil
	}
	if g.TrumpCard != nil && handHasSuit(ps.Hand, g.TrumpCard.Suit) {
		return cardsOfSuit(ps.Hand, g.TrumpCard.Suit), nil
	}
	return append([]Card(nil), ps.Hand...), nil
}

// PlayCard moves a card from the player's hand to the table, enforcing turn
// order and the follow-suit and trump rules. The Nth card of a trick
// resolves it synchronously: the winner's trick count increments, the
// winner leads the next trick and the table clears. The round's last trick
// additionally scores the round and deals the next one.
func (g *Game) PlayCard(playerID string, card Card) error {
	switch g.Phase {
	case PhaseNotStarted:
		return fmt.Errorf("hands not dealt yet: %w", ErrNotReady)
	case PhaseBetting:
		r, err := g.CurrentRound()
		if err != nil {
			return err
		}
		ps, err := r.State(playerID)
		if err != nil {
			return err
		}
		if ps.Bid == BidUnset {
			return fmt.Errorf("%s has not bid yet this round: %w", ps.Player.Name, ErrNotReady)
		}
		return fmt.Errorf("betting is not finished: %w", ErrInvalidAction)
	case PhasePlaying:
	default:
		return fmt.Errorf("not in play phase (%s): %w", g.Phase, ErrInvalidAction)
	}

	r, err := g.CurrentRound()
	if err != nil {
		return err
	}
	seat, err := r.SeatOf(playerID)
	if err != nil {
		return err
	}
	leader, err := r.FirstPlayerIndex()
	if err != nil {
		return err
	}
	// Turn order is derived, not stored: the table length says how many
	// seats past the leader have played this trick.
	turn := (leader + len(g.Table)) % len(r.Players)
	if seat != turn {
		return fmt.Errorf("it is not %s's turn to play: %w", r.Players[seat].Player.Name, ErrOutOfTurn)
	}

	ps := r.Players[seat]
	idx := findCardInHand(ps.Hand, card)
	if idx < 0 {
		return fmt.Errorf("card %d%s not in hand: %w", card.Rank, card.Suit, ErrNotFound)
	}

	if len(g.Table) > 0 {
		led := g.Table[0].Suit
		if card.Suit != led {
			if handHasSuit(ps.Hand, led) {
				return fmt.Errorf("must follow the led suit %s: %w", led, ErrInvalidAction)
			}
			if g.TrumpCard != nil && card.Suit != g.TrumpCard.Suit && handHasSuit(ps.Hand, g.TrumpCard.Suit) {
				return fmt.Errorf("must play trump when out of the led suit: %w", ErrInvalidAction)
			}
		}
	}

	ps.Hand = append(ps.Hand[:idx], ps.Hand[idx+1:]...)
	g.Table = append(g.Table, card)

	if len(g.Table) == len(r.Players) {
		g.resolveTrick(r, leader)
	}
	return nil
}

// resolveTrick determines the trick winner among the cards on the table:
// the highest rank of the trump suit when any trump was played, otherwise
// the highest rank of the led suit.
func (g *Game) resolveTrick(r *Round, leader int) {
	winning := g.Table[0].Suit
	if g.TrumpCard != nil && handHasSuit(g.Table, g.TrumpCard.Suit) {
		winning = g.TrumpCard.Suit
	}
	best := -1
	for i, c := range g.Table {
		if c.Suit == winning && (best < 0 || c.Rank > g.Table[best].Rank) {
			best = i
		}
	}

	// Table order starts at the leader, so the winning seat is an offset.
	winner := (leader + best) % len(r.Players)
	r.Players[winner].TricksWon++
	r.Players[leader].FirstPlayer = false
	r.Players[winner].FirstPlayer = true
	g.Table = nil

	// Hands shrink in lock-step, so one empty hand means the round is done.
	if len(r.Players[winner].Hand) == 0 {
		g.finishRound(r)
	}
}
