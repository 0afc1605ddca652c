package whist

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// MinPlayers is the smallest table the schedule supports.
	MinPlayers = 2
	// MaxPlayers keeps the rank band inside a standard deck (2N ranks
	// descending from MaxRank must not go below 2).
	MaxPlayers = 6
)

// NewGame creates an empty game. A nil rng falls back to a time-seeded one;
// tests pass a fixed seed for deterministic deals.
func NewGame(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{rng: rng}
}

// AddPlayer seats a player. Seating is only possible before the game starts.
func (g *Game) AddPlayer(p *Player) error {
	if g.Phase != PhaseNotStarted {
		return fmt.Errorf("cannot join a started game: %w", ErrInvalidAction)
	}
	if len(g.Players) >= MaxPlayers {
		return fmt.Errorf("table is full (%d seats): %w", MaxPlayers, ErrInvalidAction)
	}
	g.Players = append(g.Players, p)
	return nil
}

// RemovePlayer frees a seat. Like seating, only possible before the start.
func (g *Game) RemovePlayer(playerID string) error {
	if g.Phase != PhaseNotStarted {
		return fmt.Errorf("cannot leave a started game: %w", ErrInvalidAction)
	}
	for i, p := range g.Players {
		if p.ID == playerID {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("player %s: %w", playerID, ErrNotFound)
}

// Start builds the round schedule and deals the first round.
func (g *Game) Start() error {
	if g.Phase != PhaseNotStarted {
		return fmt.Errorf("game already started: %w", ErrInvalidAction)
	}
	if len(g.Players) < MinPlayers {
		return fmt.Errorf("need at least %d players, have %d: %w", MinPlayers, len(g.Players), ErrNotReady)
	}
	g.Rounds = buildSchedule(g.Players)
	g.dealRound(g.Rounds[0])
	return nil
}

// CurrentRound returns the first round that has not been completed yet.
func (g *Game) CurrentRound() (*Round, error) {
	for _, r := range g.Rounds {
		if !r.Played {
			return r, nil
		}
	}
	return nil, fmt.Errorf("no unplayed round: %w", ErrNotReady)
}

// ScoreTable returns all scheduled rounds, completed or not, in order.
func (g *Game) ScoreTable() []*Round {
	return g.Rounds
}
