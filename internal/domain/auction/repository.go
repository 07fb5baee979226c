package auction

import "context"

// Repository describes auction persistence needs from use cases.
//
// DeactivateAll and Activate are separate writes on purpose: the
// one-active-auction invariant is enforced by the clear-then-set sequence
// in the use case, not by the store.
type Repository interface {
	List(ctx context.Context) ([]Auction, error)
	GetByID(ctx context.Context, auctionID string) (Auction, bool, error)
	GetActive(ctx context.Context) (Auction, bool, error)
	Insert(ctx context.Context, item Auction) error
	Update(ctx context.Context, item Auction) error
	DeactivateAll(ctx context.Context) error
	Activate(ctx context.Context, auctionID string) error
	SetLocked(ctx context.Context, auctionID string, locked bool) error
	Delete(ctx context.Context, auctionID string) error
}
