package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-graphql/internal/domain/player"
	"github.com/riskibarqy/league-graphql/internal/domain/team"
)

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewTeamService(teamRepo team.Repository, playerRepo player.Repository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, crerr.Wrap(err, "list teams")
	}

	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, crerr.Wrap(err, "get team")
	}
	if !exists {
		return team.Team{}, crerr.Wrapf(ErrNotFound, "team=%d", teamID)
	}

	return item, nil
}

func (s *TeamService) ListPlayersByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListPlayersByTeam")
	defer span.End()

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, crerr.Wrap(err, "list players by team")
	}

	return players, nil
}
