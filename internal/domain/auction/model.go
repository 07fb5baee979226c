package auction

import (
	"fmt"
	"strings"
)

// DefaultBasePoints is the budget granted to every team of a new auction
// unless the admin overrides it.
const DefaultBasePoints = 10000

// Auction is one auction event. At most one auction is active system-wide;
// the locked flag is advisory only.
type Auction struct {
	ID                string
	Name              string
	Season            string
	WelcomeText       string
	IsActive          bool
	IsLocked          bool
	BasePointsPerTeam int
}

func (a Auction) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("auction name is required")
	}
	if strings.TrimSpace(a.Season) == "" {
		return fmt.Errorf("auction season is required")
	}
	if a.BasePointsPerTeam <= 0 {
		return fmt.Errorf("auction base points per team must be positive")
	}

	return nil
}
