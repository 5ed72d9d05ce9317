package graphqlapi

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/graphql-go/graphql"
	"github.com/riskibarqy/league-graphql/internal/domain/league"
	"github.com/riskibarqy/league-graphql/internal/domain/player"
	"github.com/riskibarqy/league-graphql/internal/domain/team"
	"github.com/riskibarqy/league-graphql/internal/platform/logging"
	"github.com/riskibarqy/league-graphql/internal/usecase"
)

type resolver struct {
	leagues *usecase.LeagueService
	teams   *usecase.TeamService
	players *usecase.PlayerService
	logger  *logging.Logger
}

func (r *resolver) leagueTeams(p graphql.ResolveParams) (any, error) {
	parent, err := sourceLeague(p)
	if err != nil {
		return nil, err
	}

	items, err := r.leagues.ListTeamsByLeague(p.Context, parent.ID)
	if err != nil {
		return nil, r.fieldError(p, err)
	}
	return items, nil
}

func (r *resolver) teamLeague(p graphql.ResolveParams) (any, error) {
	parent, err := sourceTeam(p)
	if err != nil {
		return nil, err
	}

	item, err := r.leagues.GetLeague(p.Context, parent.LeagueID)
	return r.optional(p, item, err)
}

func (r *resolver) teamPlayers(p graphql.ResolveParams) (any, error) {
	parent, err := sourceTeam(p)
	if err != nil {
		return nil, err
	}

	items, err := r.teams.ListPlayersByTeam(p.Context, parent.ID)
	if err != nil {
		return nil, r.fieldError(p, err)
	}
	return items, nil
}

func (r *resolver) playerTeam(p graphql.ResolveParams) (any, error) {
	parent, err := sourcePlayer(p)
	if err != nil {
		return nil, err
	}

	item, err := r.teams.GetTeam(p.Context, parent.TeamID)
	return r.optional(p, item, err)
}

func sourceLeague(p graphql.ResolveParams) (league.League, error) {
	switch v := p.Source.(type) {
	case league.League:
		return v, nil
	case *league.League:
		if v != nil {
			return *v, nil
		}
	}
	return league.League{}, crerr.Newf("unexpected League source %T", p.Source)
}

func sourceTeam(p graphql.ResolveParams) (team.Team, error) {
	switch v := p.Source.(type) {
	case team.Team:
		return v, nil
	case *team.Team:
		if v != nil {
			return *v, nil
		}
	}
	return team.Team{}, crerr.Newf("unexpected Team source %T", p.Source)
}

func sourcePlayer(p graphql.ResolveParams) (player.Player, error) {
	switch v := p.Source.(type) {
	case player.Player:
		return v, nil
	case *player.Player:
		if v != nil {
			return *v, nil
		}
	}
	return player.Player{}, crerr.Newf("unexpected Player source %T", p.Source)
}

// intArg reads an Int argument. ok is false when the argument was omitted.
func intArg(args map[string]any, name string) (int64, bool) {
	switch v := args[name].(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

func stringArg(args map[string]any, name string) string {
	v, _ := args[name].(string)
	return v
}
