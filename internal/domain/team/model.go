package team

import (
	"fmt"
	"strings"
)

// Team is a franchise bidding inside one auction.
type Team struct {
	ID        string
	AuctionID string
	Name      string
	Franchise string
	Color     string
	LogoURL   string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.AuctionID) == "" {
		return fmt.Errorf("team auction id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
