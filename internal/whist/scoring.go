package whist

// ScoreDelta returns the points a player gains from a completed round:
// bid+5 for an exact bid, otherwise the absolute distance between bid and
// tricks won.
func ScoreDelta(bid, tricksWon int) int {
	if bid == tricksWon {
		return bid + 5
	}
	if bid > tricksWon {
		return bid - tricksWon
	}
	return tricksWon - bid
}

// finishRound scores every seat, marks the round complete and either deals
// the next round or ends the game.
func (g *Game) finishRound(r *Round) {
	for _, ps := range r.Players {
		ps.Points += ScoreDelta(ps.Bid, ps.TricksWon)
	}
	r.Played = true

	if r.Number < len(g.Rounds) {
		g.dealRound(g.Rounds[r.Number])
		return
	}
	g.DrawPile = nil
	g.TrumpCard = nil
	g.Phase = PhaseGameOver
}
