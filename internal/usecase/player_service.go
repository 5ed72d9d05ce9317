package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-graphql/internal/domain/player"
	idgen "github.com/riskibarqy/league-graphql/internal/platform/id"
	"github.com/riskibarqy/league-graphql/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type AddPlayerInput struct {
	Name   string
	TeamID int64
}

type EditPlayerInput struct {
	ID     int64
	Name   string
	TeamID int64
}

type PlayerService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, idGen idgen.Generator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, crerr.Wrap(err, "list players")
	}

	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer", attribute.Int64("player.id", playerID))
	defer span.End()

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, crerr.Wrap(err, "get player")
	}
	if !exists {
		return player.Player{}, crerr.Wrapf(ErrNotFound, "player=%d", playerID)
	}

	return item, nil
}

// AddPlayer appends a player under a freshly generated id. TeamID is stored
// as given, even when no such team exists.
func (s *PlayerService) AddPlayer(ctx context.Context, input AddPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddPlayer", attribute.Int64("team.id", input.TeamID))
	defer span.End()

	item := player.Player{
		ID:     s.idGen.NextID(),
		Name:   input.Name,
		TeamID: input.TeamID,
	}
	if err := s.playerRepo.Insert(ctx, item); err != nil {
		return player.Player{}, crerr.Wrapf(err, "insert player=%d", item.ID)
	}

	s.logger.InfoContext(ctx, "player added", "player_id", item.ID, "team_id", item.TeamID)
	return item, nil
}

func (s *PlayerService) EditPlayer(ctx context.Context, input EditPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.EditPlayer", attribute.Int64("player.id", input.ID))
	defer span.End()

	item := player.Player{
		ID:     input.ID,
		Name:   input.Name,
		TeamID: input.TeamID,
	}
	found, err := s.playerRepo.Update(ctx, item)
	if err != nil {
		return player.Player{}, crerr.Wrapf(err, "update player=%d", input.ID)
	}
	if !found {
		return player.Player{}, crerr.Wrapf(ErrNotFound, "player=%d", input.ID)
	}

	s.logger.InfoContext(ctx, "player edited", "player_id", item.ID, "team_id", item.TeamID)
	return item, nil
}

// DeletePlayer returns the player as it was before removal.
func (s *PlayerService) DeletePlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer", attribute.Int64("player.id", playerID))
	defer span.End()

	removed, found, err := s.playerRepo.Delete(ctx, playerID)
	if err != nil {
		return player.Player{}, crerr.Wrapf(err, "delete player=%d", playerID)
	}
	if !found {
		return player.Player{}, crerr.Wrapf(ErrNotFound, "player=%d", playerID)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", removed.ID)
	return removed, nil
}
