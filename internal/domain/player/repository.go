package player

import "context"

// Repository describes player persistence needs from use cases.
//
// Update and Delete report found=false without touching the store when no
// player has the given id.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	Insert(ctx context.Context, item Player) error
	Update(ctx context.Context, item Player) (bool, error)
	Delete(ctx context.Context, playerID int64) (Player, bool, error)
}
