package memory

import (
	"github.com/riskibarqy/league-graphql/internal/domain/league"
	"github.com/riskibarqy/league-graphql/internal/domain/player"
	"github.com/riskibarqy/league-graphql/internal/domain/team"
)

const (
	LeagueIDPremierLeague int64 = 1
	LeagueIDLiga1Shopee   int64 = 2
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDPremierLeague, Name: "Premier League"},
		{ID: LeagueIDLiga1Shopee, Name: "Liga 1 Shopee"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Manchester United", LeagueID: LeagueIDPremierLeague},
		{ID: 2, Name: "Liverpool", LeagueID: LeagueIDPremierLeague},
		{ID: 3, Name: "Persib", LeagueID: LeagueIDLiga1Shopee},
		{ID: 4, Name: "Rans FC", LeagueID: LeagueIDLiga1Shopee},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Harry Magurie", TeamID: 1},
		{ID: 2, Name: "De Gea", TeamID: 1},
		{ID: 3, Name: "Salah", TeamID: 2},
		{ID: 4, Name: "Van Djik", TeamID: 2},
		{ID: 5, Name: "David Dasilva", TeamID: 3},
		{ID: 6, Name: "Ciro Alves", TeamID: 3},
		{ID: 7, Name: "Raffi Ahmad", TeamID: 4},
		{ID: 8, Name: "Rayanza", TeamID: 4},
	}
}

// MaxPlayerID returns the highest id in players, or zero for an empty slice.
func MaxPlayerID(players []player.Player) int64 {
	var out int64
	for _, item := range players {
		if item.ID > out {
			out = item.ID
		}
	}

	return out
}
