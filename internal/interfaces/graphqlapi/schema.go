package graphqlapi

import (
	"context"

	"github.com/graphql-go/graphql"
	"github.com/riskibarqy/league-graphql/internal/platform/logging"
	"github.com/riskibarqy/league-graphql/internal/usecase"
)

// Services are the use cases the resolvers delegate to.
type Services struct {
	League *usecase.LeagueService
	Team   *usecase.TeamService
	Player *usecase.PlayerService
}

// Request is a single GraphQL operation as received over the wire.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Schema is the executable Query/Mutation schema.
type Schema struct {
	schema graphql.Schema
}

func NewSchema(services Services, logger *logging.Logger) (*Schema, error) {
	if logger == nil {
		logger = logging.Default()
	}

	r := &resolver{
		leagues: services.League,
		teams:   services.Team,
		players: services.Player,
		logger:  logger,
	}
	types := newTypeGraph(r)

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    newQueryType(types, r),
		Mutation: newMutationType(types, r),
	})
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// Do parses, validates and executes req. Failures are reported in the
// result's Errors, never as a Go error.
func (s *Schema) Do(ctx context.Context, req Request) *graphql.Result {
	ctx, span := startSpan(ctx, "graphqlapi.Schema.Do")
	defer span.End()

	return graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
}
