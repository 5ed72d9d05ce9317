package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-graphql/internal/domain/league"
)

type LeagueRepository struct {
	mu    sync.RWMutex
	items []league.League
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make([]league.League, 0, len(leagues))
	items = append(items, leagues...)

	return &LeagueRepository{items: items}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.items))
	out = append(out, r.items...)

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == leagueID {
			return item, true, nil
		}
	}

	return league.League{}, false, nil
}
