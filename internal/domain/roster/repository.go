package roster

import (
	"context"

	"github.com/splcricket/auction-hall/internal/domain/player"
)

// Repository describes roster persistence needs from use cases.
//
// Every method is a single remote write or read. Multi-step sequences
// (the three-step position swap, clear-then-set current, unassign-then-delete
// team) are composed in the use cases and are not transactional.
type Repository interface {
	// ListByAuction returns non-removed entries ordered by position.
	ListByAuction(ctx context.Context, auctionID string) ([]Entry, error)
	// ListBracket returns non-removed entries of one (auction, age group)
	// bracket ordered by position.
	ListBracket(ctx context.Context, auctionID string, ageGroup player.AgeGroup) ([]Entry, error)
	GetByID(ctx context.Context, entryID string) (Entry, bool, error)
	GetByAuctionAndPlayer(ctx context.Context, auctionID, playerID string) (Entry, bool, error)
	// Upsert inserts or replaces the entry keyed on (auction, player).
	Upsert(ctx context.Context, item Entry) (Entry, error)
	UpdatePosition(ctx context.Context, auctionID, playerID string, position int) error
	SetReserved(ctx context.Context, auctionID, playerID string, reserved bool) error
	SetRemoved(ctx context.Context, auctionID, playerID string, removed bool) error
	ClearCurrent(ctx context.Context, auctionID string) error
	MarkCurrent(ctx context.Context, auctionID, playerID string) error
	AssignTeam(ctx context.Context, entryID string, teamID *string) error
	// UnassignTeam nulls team_id on every entry of the team.
	UnassignTeam(ctx context.Context, teamID string) error
	SetSale(ctx context.Context, entryID, teamID string, soldPoints int) error
	ClearSale(ctx context.Context, entryID string) error
	Delete(ctx context.Context, auctionID, playerID string) error
	// DeleteByAuction removes every entry of the auction, removed rows
	// included.
	DeleteByAuction(ctx context.Context, auctionID string) error
}
