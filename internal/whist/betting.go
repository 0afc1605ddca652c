package whist

import "fmt"

// bidTurnSeat returns the seat expected to bid next, scanning the bidding
// order once around the table from the round's first-to-act seat. ok is
// false when every seat has already bid.
func (r *Round) bidTurnSeat() (int, bool) {
	first := r.FirstSeat()
	n := len(r.Players)
	for i := 0; i < n; i++ {
		seat := (first + i) % n
		if r.Players[seat].Bid == BidUnset {
			return seat, true
		}
	}
	return -1, false
}

// isLastBidder reports whether the seat closes the bidding order, i.e. sits
// immediately before the round's first-to-act seat.
func (r *Round) isLastBidder(seat int) bool {
	n := len(r.Players)
	return seat == (r.FirstSeat()+n-1)%n
}

// bidSum totals the bids declared so far this round.
func (r *Round) bidSum() int {
	sum := 0
	for _, ps := range r.Players {
		if ps.Bid != BidUnset {
			sum += ps.Bid
		}
	}
	return sum
}

// AvailableBids returns the legal bid values for the player's current turn.
// The set is empty outside the betting phase or when it is not the player's
// turn. The hook rule removes exactly one value for the last bidder.
func (g *Game) AvailableBids(playerID string) ([]int, error) {
	if g.Phase != PhaseBetting {
		return nil, nil
	}
	r, err := g.CurrentRound()
	if err != nil {
		return nil, err
	}
	seat, err := r.SeatOf(playerID)
	if err != nil {
		return nil, err
	}
	turn, ok := r.bidTurnSeat()
	if !ok || turn != seat {
		return nil, nil
	}

	bids := make([]int, 0, r.HandSize+1)
	for b := 0; b <= r.HandSize; b++ {
		if r.isLastBidder(seat) && r.bidSum()+b == r.HandSize {
			continue
		}
		bids = append(bids, b)
	}
	return bids, nil
}

// PlaceBid records the player's bid for the current round, enforcing the
// strict seat order, the [0, handSize] range and the hook rule.
func (g *Game) PlaceBid(playerID string, bid int) error {
	switch g.Phase {
	case PhaseNotStarted:
		return fmt.Errorf("hands not dealt yet: %w", ErrNotReady)
	case PhaseBetting:
	default:
		return fmt.Errorf("not in betting phase (%s): %w", g.Phase, ErrInvalidAction)
	}
	r, err := g.CurrentRound()
	if err != nil {
		return err
	}
	seat, err := r.SeatOf(playerID)
	if err != nil {
		return err
	}
	turn, ok := r.bidTurnSeat()
	if !ok || turn != seat {
		return fmt.Errorf("it is not %s's turn to bid: %w", r.Players[seat].Player.Name, ErrOutOfTurn)
	}
	if bid < 0 || bid > r.HandSize {
		return fmt.Errorf("bid %d outside [0, %d]: %w", bid, r.HandSize, ErrInvalidAction)
	}
	if r.isLastBidder(seat) && r.bidSum()+bid == r.HandSize {
		return fmt.Errorf("last bid may not bring the round total to %d: %w", r.HandSize, ErrInvalidAction)
	}

	r.Players[seat].Bid = bid
	if _, ok := r.bidTurnSeat(); !ok {
		g.Phase = PhasePlaying
	}
	return nil
}
