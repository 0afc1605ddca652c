package whist

import "fmt"

// buildSchedule produces the full round schedule for the seated players:
// one dealer rotation at hand size 1, a ramp from 2 to 7, one rotation of
// full hands, the ramp back down and a final rotation at 1. Total rounds
// for n players is 3n+12.
func buildSchedule(players []*Player) []*Round {
	n := len(players)
	sizes := make([]int, 0, 3*n+12)
	for i := 0; i < n; i++ {
		sizes = append(sizes, 1)
	}
	for h := 2; h < FullHandSize; h++ {
		sizes = append(sizes, h)
	}
	for i := 0; i < n; i++ {
		sizes = append(sizes, FullHandSize)
	}
	for h := FullHandSize - 1; h >= 2; h-- {
		sizes = append(sizes, h)
	}
	for i := 0; i < n; i++ {
		sizes = append(sizes, 1)
	}

	rounds := make([]*Round, len(sizes))
	for i, size := range sizes {
		states := make([]*PlayerRoundState, n)
		for seat, p := range players {
			states[seat] = &PlayerRoundState{Player: p, Bid: BidUnset}
		}
		rounds[i] = &Round{Number: i + 1, HandSize: size, Players: states}
	}
	return rounds
}

// IsFullHand reports whether this round uses the entire deck, leaving no
// trump indicator.
func (r *Round) IsFullHand() bool {
	return r.HandSize == FullHandSize
}

// FirstSeat returns the seat designated first-to-act for this round by the
// deal rotation.
func (r *Round) FirstSeat() int {
	return (r.Number - 1) % len(r.Players)
}

// FirstPlayerIndex returns the seat currently holding the first-player flag.
func (r *Round) FirstPlayerIndex() (int, error) {
	for i, ps := range r.Players {
		if ps.FirstPlayer {
			return i, nil
		}
	}
	return -1, fmt.Errorf("round %d has no first player: %w", r.Number, ErrNotReady)
}

// SeatOf returns the seat index of the given player in this round.
func (r *Round) SeatOf(playerID string) (int, error) {
	for i, ps := range r.Players {
		if ps.Player.ID == playerID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
}

// State returns the per-round state of the given player.
func (r *Round) State(playerID string) (*PlayerRoundState, error) {
	seat, err := r.SeatOf(playerID)
	if err != nil {
		return nil, err
	}
	return r.Players[seat], nil
}
