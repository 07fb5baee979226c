package roster

import (
	"fmt"
	"strings"

	"github.com/splcricket/auction-hall/internal/domain/player"
)

// Entry is one player's membership in one auction, unique on
// (auction, player). AgeGroup is denormalized from the player record and is
// the operative value for position sequencing.
type Entry struct {
	ID             string
	AuctionID      string
	PlayerID       string
	AgeGroup       player.AgeGroup
	PositionNumber int
	IsReserved     bool
	IsCurrent      bool
	IsRemoved      bool
	TeamID         *string
	SoldPoints     *int
}

// Sold reports whether the entry carries a recorded sale.
func (e Entry) Sold() bool {
	return e.SoldPoints != nil
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.AuctionID) == "" {
		return fmt.Errorf("roster entry auction id is required")
	}
	if strings.TrimSpace(e.PlayerID) == "" {
		return fmt.Errorf("roster entry player id is required")
	}
	if _, err := player.ParseAgeGroup(string(e.AgeGroup)); err != nil {
		return err
	}

	return nil
}
