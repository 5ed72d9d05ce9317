package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/league-graphql/internal/config"
	"github.com/riskibarqy/league-graphql/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-graphql/internal/interfaces/graphqlapi"
	"github.com/riskibarqy/league-graphql/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/league-graphql/internal/platform/id"
	"github.com/riskibarqy/league-graphql/internal/platform/logging"
	"github.com/riskibarqy/league-graphql/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	seedPlayers := memory.SeedPlayers()
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(seedPlayers)

	leagueSvc := usecase.NewLeagueService(leagueRepo, teamRepo)
	teamSvc := usecase.NewTeamService(teamRepo, playerRepo)
	playerSvc := usecase.NewPlayerService(
		playerRepo,
		idgen.NewSequence(memory.MaxPlayerID(seedPlayers)),
		logger,
	)

	schema, err := graphqlapi.NewSchema(graphqlapi.Services{
		League: leagueSvc,
		Team:   teamSvc,
		Player: playerSvc,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	handler := httpapi.NewHandler(schema, logger, cfg.GraphiQLEnabled)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
