package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByAuction(ctx context.Context, auctionID string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Insert(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) error
	Delete(ctx context.Context, teamID string) error
	// DeleteByAuction removes every team of the auction.
	DeleteByAuction(ctx context.Context, auctionID string) error
}
