package graphqlapi

import (
	"github.com/graphql-go/graphql"
	"github.com/riskibarqy/league-graphql/internal/domain/league"
	"github.com/riskibarqy/league-graphql/internal/domain/player"
	"github.com/riskibarqy/league-graphql/internal/domain/team"
)

type typeGraph struct {
	league *graphql.Object
	team   *graphql.Object
	player *graphql.Object
}

// newTypeGraph declares the scalar fields of every entity first and wires the
// relational fields once all three objects exist.
func newTypeGraph(r *resolver) *typeGraph {
	g := &typeGraph{
		league: graphql.NewObject(graphql.ObjectConfig{
			Name:        "League",
			Description: "List leagues football",
			Fields: graphql.Fields{
				"id": {
					Type:    graphql.NewNonNull(graphql.Int),
					Resolve: leagueScalar(func(l league.League) any { return l.ID }),
				},
				"name": {
					Type:    graphql.NewNonNull(graphql.String),
					Resolve: leagueScalar(func(l league.League) any { return l.Name }),
				},
			},
		}),
		team: graphql.NewObject(graphql.ObjectConfig{
			Name:        "Team",
			Description: "List teams football",
			Fields: graphql.Fields{
				"id": {
					Type:    graphql.NewNonNull(graphql.Int),
					Resolve: teamScalar(func(t team.Team) any { return t.ID }),
				},
				"name": {
					Type:    graphql.NewNonNull(graphql.String),
					Resolve: teamScalar(func(t team.Team) any { return t.Name }),
				},
				"leagueId": {
					Type:    graphql.NewNonNull(graphql.Int),
					Resolve: teamScalar(func(t team.Team) any { return t.LeagueID }),
				},
			},
		}),
		player: graphql.NewObject(graphql.ObjectConfig{
			Name:        "Player",
			Description: "List players football",
			Fields: graphql.Fields{
				"id": {
					Type:    graphql.NewNonNull(graphql.Int),
					Resolve: playerScalar(func(p player.Player) any { return p.ID }),
				},
				"name": {
					Type:    graphql.NewNonNull(graphql.String),
					Resolve: playerScalar(func(p player.Player) any { return p.Name }),
				},
				"teamId": {
					Type:    graphql.NewNonNull(graphql.Int),
					Resolve: playerScalar(func(p player.Player) any { return p.TeamID }),
				},
			},
		}),
	}

	g.league.AddFieldConfig("teams", &graphql.Field{
		Type:    graphql.NewList(g.team),
		Resolve: r.leagueTeams,
	})
	g.team.AddFieldConfig("league", &graphql.Field{
		Type:    g.league,
		Resolve: r.teamLeague,
	})
	g.team.AddFieldConfig("players", &graphql.Field{
		Type:    graphql.NewList(g.player),
		Resolve: r.teamPlayers,
	})
	g.player.AddFieldConfig("team", &graphql.Field{
		Type:    g.team,
		Resolve: r.playerTeam,
	})
	g.player.AddFieldConfig("teams", &graphql.Field{
		Type:              g.team,
		Resolve:           r.playerTeam,
		DeprecationReason: "Use team.",
	})

	return g
}

func leagueScalar(get func(league.League) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		item, err := sourceLeague(p)
		if err != nil {
			return nil, err
		}
		return get(item), nil
	}
}

func teamScalar(get func(team.Team) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		item, err := sourceTeam(p)
		if err != nil {
			return nil, err
		}
		return get(item), nil
	}
}

func playerScalar(get func(player.Player) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		item, err := sourcePlayer(p)
		if err != nil {
			return nil, err
		}
		return get(item), nil
	}
}
