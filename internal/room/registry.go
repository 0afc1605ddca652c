// Package room owns game lifecycle: creating and discarding game instances,
// seating players and locating games by id. The engine itself never touches
// the registry; it is handed a *whist.Game under the per-game lock.
package room

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/rowhist/whist-server/internal/whist"
)

// ErrNameTaken rejects a player name already seated at the table.
var ErrNameTaken = fmt.Errorf("name already in use: %w", whist.ErrInvalidAction)

// Registry holds every live game and serializes engine access per game
// instance. Cross-game state is only the map itself.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*session
	seed  int64
}

type session struct {
	mu   sync.Mutex
	game *whist.Game
}

// NewRegistry creates an empty registry. A non-zero seed makes every
// created game deal deterministically, for tests.
func NewRegistry(seed int64) *Registry {
	return &Registry{games: make(map[string]*session), seed: seed}
}

// CreateGame registers a fresh empty game and returns its id.
func (r *Registry) CreateGame() string {
	var rng *rand.Rand
	if r.seed != 0 {
		rng = rand.New(rand.NewSource(r.seed))
	}
	id := uuid.NewString()

	r.mu.Lock()
	r.games[id] = &session{game: whist.NewGame(rng)}
	r.mu.Unlock()
	return id
}

// RemoveGame discards a game. Rounds already played go with it; the engine
// keeps no state outside the registry.
func (r *Registry) RemoveGame(gameID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[gameID]; !ok {
		return fmt.Errorf("game %s: %w", gameID, whist.ErrNotFound)
	}
	delete(r.games, gameID)
	return nil
}

// WithGame runs fn with the game locked for exclusive access. Every engine
// operation goes through here; the engine assumes single-writer discipline.
func (r *Registry) WithGame(gameID string, fn func(*whist.Game) error) error {
	r.mu.RLock()
	s, ok := r.games[gameID]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("game %s: %w", gameID, whist.ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

// AddPlayer seats a new player under a table-unique name and returns the
// generated player id.
func (r *Registry) AddPlayer(gameID, name string) (string, error) {
	playerID := uuid.NewString()
	err := r.WithGame(gameID, func(g *whist.Game) error {
		for _, p := range g.Players {
			if p.Name == name {
				return ErrNameTaken
			}
		}
		return g.AddPlayer(&whist.Player{ID: playerID, Name: name})
	})
	if err != nil {
		return "", err
	}
	return playerID, nil
}

// RemovePlayer frees the player's seat.
func (r *Registry) RemovePlayer(gameID, playerID string) error {
	return r.WithGame(gameID, func(g *whist.Game) error {
		return g.RemovePlayer(playerID)
	})
}
