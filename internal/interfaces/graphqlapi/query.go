package graphqlapi

import "github.com/graphql-go/graphql"

func newQueryType(types *typeGraph, r *resolver) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Query",
		Description: "Root Query",
		Fields: graphql.Fields{
			"league": {
				Type:        types.league,
				Description: "A Single League",
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.Int},
				},
				Resolve: r.league,
			},
			"leagues": {
				Type:        graphql.NewList(types.league),
				Description: "List of All Leagues",
				Resolve:     r.leagueList,
			},
			"team": {
				Type:        types.team,
				Description: "A Single Team",
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.Int},
				},
				Resolve: r.team,
			},
			"teams": {
				Type:        graphql.NewList(types.team),
				Description: "List of All Teams",
				Resolve:     r.teamList,
			},
			"player": {
				Type:        types.player,
				Description: "A Single Player",
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.Int},
				},
				Resolve: r.player,
			},
			"players": {
				Type:        graphql.NewList(types.player),
				Description: "List of All Players",
				Resolve:     r.playerList,
			},
		},
	})
}

// Single-entity queries resolve to null for an unknown or omitted id.

func (r *resolver) league(p graphql.ResolveParams) (any, error) {
	id, ok := intArg(p.Args, "id")
	if !ok {
		return nil, nil
	}
	item, err := r.leagues.GetLeague(p.Context, id)
	return r.optional(p, item, err)
}

func (r *resolver) leagueList(p graphql.ResolveParams) (any, error) {
	items, err := r.leagues.ListLeagues(p.Context)
	if err != nil {
		return nil, r.fieldError(p, err)
	}
	return items, nil
}

func (r *resolver) team(p graphql.ResolveParams) (any, error) {
	id, ok := intArg(p.Args, "id")
	if !ok {
		return nil, nil
	}
	item, err := r.teams.GetTeam(p.Context, id)
	return r.optional(p, item, err)
}

func (r *resolver) teamList(p graphql.ResolveParams) (any, error) {
	items, err := r.teams.ListTeams(p.Context)
	if err != nil {
		return nil, r.fieldError(p, err)
	}
	return items, nil
}

func (r *resolver) player(p graphql.ResolveParams) (any, error) {
	id, ok := intArg(p.Args, "id")
	if !ok {
		return nil, nil
	}
	item, err := r.players.GetPlayer(p.Context, id)
	return r.optional(p, item, err)
}

func (r *resolver) playerList(p graphql.ResolveParams) (any, error) {
	items, err := r.players.ListPlayers(p.Context)
	if err != nil {
		return nil, r.fieldError(p, err)
	}
	return items, nil
}
