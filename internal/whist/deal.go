package whist

// newDeck builds the deck for n players: 2n rank values descending from
// MaxRank, crossed with the four suits, 8n cards in total.
func newDeck(n int) []Card {
	deck := make([]Card, 0, 8*n)
	for rank := MaxRank; rank > MaxRank-2*n; rank-- {
		for s := Hearts; s <= Spades; s++ {
			deck = append(deck, Card{Rank: rank, Suit: s})
		}
	}
	return deck
}

// shuffle runs an in-place Fisher-Yates pass over the deck.
func (g *Game) shuffle(deck []Card) {
	for i := len(deck) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// dealRound rebuilds and shuffles the full deck, deals the round's hand size
// to every seat in order, reveals the trump indicator on non-full-hand
// rounds and resets the per-round player state. Accumulated points carry
// over from the previous round.
func (g *Game) dealRound(r *Round) {
	deck := newDeck(len(g.Players))
	g.shuffle(deck)

	var prev *Round
	if r.Number > 1 {
		prev = g.Rounds[r.Number-2]
	}
	for seat, ps := range r.Players {
		ps.Hand = append([]Card(nil), deck[:r.HandSize]...)
		deck = deck[r.HandSize:]
		ps.Bid = BidUnset
		ps.TricksWon = 0
		ps.FirstPlayer = false
		if prev != nil {
			ps.Points = prev.Players[seat].Points
		}
	}
	r.Players[r.FirstSeat()].FirstPlayer = true

	g.TrumpCard = nil
	if !r.IsFullHand() {
		trump := deck[0]
		deck = deck[1:]
		g.TrumpCard = &trump
	}
	g.DrawPile = deck
	g.Table = nil
	g.Phase = PhaseBetting
}
