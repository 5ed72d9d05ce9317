package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/league-graphql/internal/domain/player"
)

// PlayerRepository keeps players in insertion order. Writers hold the lock
// across lookup and mutation so a missing id never causes a partial write.
type PlayerRepository struct {
	mu    sync.RWMutex
	items []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make([]player.Player, 0, len(players))
	items = append(items, players...)

	return &PlayerRepository{items: items}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	out = append(out, r.items...)

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, item := range r.items {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(playerID)
	if idx < 0 {
		return player.Player{}, false, nil
	}

	return r.items[idx], true, nil
}

func (r *PlayerRepository) Insert(_ context.Context, item player.Player) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(item.ID) >= 0 {
		return fmt.Errorf("player id %d already exists", item.ID)
	}
	r.items = append(r.items, item)

	return nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(item.ID)
	if idx < 0 {
		return false, nil
	}
	r.items[idx].Name = item.Name
	r.items[idx].TeamID = item.TeamID

	return true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(playerID)
	if idx < 0 {
		return player.Player{}, false, nil
	}

	removed := r.items[idx]
	r.items = append(r.items[:idx], r.items[idx+1:]...)

	return removed, true, nil
}

// indexOf must be called with r.mu held.
func (r *PlayerRepository) indexOf(playerID int64) int {
	for idx, item := range r.items {
		if item.ID == playerID {
			return idx
		}
	}

	return -1
}
