package graphqlapi

import (
	"github.com/graphql-go/graphql"
	"github.com/riskibarqy/league-graphql/internal/usecase"
)

func newMutationType(types *typeGraph, r *resolver) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Mutation",
		Description: "Root Mutation",
		Fields: graphql.Fields{
			"addPlayer": {
				Type:        types.player,
				Description: "Add a player",
				Args: graphql.FieldConfigArgument{
					"name":   {Type: graphql.NewNonNull(graphql.String)},
					"teamId": {Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.addPlayer,
			},
			"editPlayer": {
				Type:        types.player,
				Description: "Edit a player",
				Args: graphql.FieldConfigArgument{
					"id":     {Type: graphql.NewNonNull(graphql.Int)},
					"name":   {Type: graphql.NewNonNull(graphql.String)},
					"teamId": {Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.editPlayer,
			},
			"deletePlayer": {
				Type:        types.player,
				Description: "Delete a player",
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.deletePlayer,
			},
		},
	})
}

func (r *resolver) addPlayer(p graphql.ResolveParams) (any, error) {
	teamID, _ := intArg(p.Args, "teamId")
	item, err := r.players.AddPlayer(p.Context, usecase.AddPlayerInput{
		Name:   stringArg(p.Args, "name"),
		TeamID: teamID,
	})
	if err != nil {
		return nil, r.fieldError(p, err)
	}
	return item, nil
}

func (r *resolver) editPlayer(p graphql.ResolveParams) (any, error) {
	id, _ := intArg(p.Args, "id")
	teamID, _ := intArg(p.Args, "teamId")
	item, err := r.players.EditPlayer(p.Context, usecase.EditPlayerInput{
		ID:     id,
		Name:   stringArg(p.Args, "name"),
		TeamID: teamID,
	})
	if err != nil {
		return nil, r.fieldError(p, err)
	}
	return item, nil
}

func (r *resolver) deletePlayer(p graphql.ResolveParams) (any, error) {
	id, _ := intArg(p.Args, "id")
	item, err := r.players.DeletePlayer(p.Context, id)
	if err != nil {
		return nil, r.fieldError(p, err)
	}
	return item, nil
}
