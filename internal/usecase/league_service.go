package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-graphql/internal/domain/league"
	"github.com/riskibarqy/league-graphql/internal/domain/team"
)

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
}

func NewLeagueService(leagueRepo league.Repository, teamRepo team.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, crerr.Wrap(err, "list leagues")
	}

	return leagues, nil
}

// GetLeague returns ErrNotFound when no league has leagueID.
func (s *LeagueService) GetLeague(ctx context.Context, leagueID int64) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, crerr.Wrap(err, "get league")
	}
	if !exists {
		return league.League{}, crerr.Wrapf(ErrNotFound, "league=%d", leagueID)
	}

	return item, nil
}

// ListTeamsByLeague does not require the league to exist; an unknown id
// yields an empty list.
func (s *LeagueService) ListTeamsByLeague(ctx context.Context, leagueID int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListTeamsByLeague")
	defer span.End()

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, crerr.Wrap(err, "list teams by league")
	}

	return teams, nil
}
