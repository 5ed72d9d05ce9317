package player

import "fmt"

// Player belongs to a team through TeamID. The reference may dangle.
type Player struct {
	ID     int64
	Name   string
	TeamID int64
}

// Validate checks the invariants the store relies on. Name and TeamID are
// accepted as given.
func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}

	return nil
}
