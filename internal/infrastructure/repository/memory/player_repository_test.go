package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/league-graphql/internal/domain/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_ListByTeamKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())

	got, err := repo.ListByTeam(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Salah", got[0].Name)
	assert.Equal(t, "Van Djik", got[1].Name)

	none, err := repo.ListByTeam(context.Background(), 404)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPlayerRepository_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())
	ctx := context.Background()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	items[0].Name = "mutated"

	stored, ok, err := repo.GetByID(ctx, items[0].ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Harry Magurie", stored.Name)
}

func TestPlayerRepository_InsertRejectsDuplicateID(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())

	err := repo.Insert(context.Background(), player.Player{ID: 1, Name: "Dup", TeamID: 1})
	require.Error(t, err)

	err = repo.Insert(context.Background(), player.Player{ID: 0, Name: "Zero", TeamID: 1})
	require.Error(t, err)
}

func TestPlayerRepository_UpdateInPlace(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())
	ctx := context.Background()

	found, err := repo.Update(ctx, player.Player{ID: 1, Name: "Changed", TeamID: 2})
	require.NoError(t, err)
	require.True(t, found)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 8)
	assert.Equal(t, player.Player{ID: 1, Name: "Changed", TeamID: 2}, items[0])
	assert.Equal(t, player.Player{ID: 2, Name: "De Gea", TeamID: 1}, items[1])
}

func TestPlayerRepository_MissingIDLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())
	ctx := context.Background()

	found, err := repo.Update(ctx, player.Player{ID: 9999, Name: "Ghost", TeamID: 1})
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = repo.Delete(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, found)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedPlayers(), items)
}

func TestPlayerRepository_DeleteReturnsPriorState(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())
	ctx := context.Background()

	removed, found, err := repo.Delete(ctx, 3)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, player.Player{ID: 3, Name: "Salah", TeamID: 2}, removed)

	_, ok, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 7)
}
