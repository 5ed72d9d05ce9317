package team

import "fmt"

// Team is a football club. LeagueID is not checked against existing leagues.
type Team struct {
	ID       int64
	Name     string
	LeagueID int64
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
