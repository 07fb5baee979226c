package memory

import (
	"context"
	"sync"

	"github.com/splcricket/auction-hall/internal/domain/auction"
)

type AuctionRepository struct {
	mu       sync.RWMutex
	auctions map[string]auction.Auction
	order    []string
}

func NewAuctionRepository(items []auction.Auction) *AuctionRepository {
	auctions := make(map[string]auction.Auction, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		auctions[item.ID] = item
		order = append(order, item.ID)
	}

	return &AuctionRepository{auctions: auctions, order: order}
}

func (r *AuctionRepository) List(_ context.Context) ([]auction.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]auction.Auction, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.auctions[id])
	}

	return out, nil
}

func (r *AuctionRepository) GetByID(_ context.Context, auctionID string) (auction.Auction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.auctions[auctionID]
	return item, ok, nil
}

func (r *AuctionRepository) GetActive(_ context.Context) (auction.Auction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.auctions[id].IsActive {
			return r.auctions[id], true, nil
		}
	}

	return auction.Auction{}, false, nil
}

func (r *AuctionRepository) Insert(_ context.Context, item auction.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auctions[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.auctions[item.ID] = item

	return nil
}

func (r *AuctionRepository) Update(_ context.Context, item auction.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.auctions[item.ID]
	if !ok {
		return nil
	}
	item.IsActive = existing.IsActive
	item.IsLocked = existing.IsLocked
	r.auctions[item.ID] = item

	return nil
}

func (r *AuctionRepository) DeactivateAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.auctions {
		item.IsActive = false
		r.auctions[id] = item
	}

	return nil
}

func (r *AuctionRepository) Activate(_ context.Context, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.auctions[auctionID]
	if !ok {
		return nil
	}
	item.IsActive = true
	r.auctions[auctionID] = item

	return nil
}

func (r *AuctionRepository) SetLocked(_ context.Context, auctionID string, locked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.auctions[auctionID]
	if !ok {
		return nil
	}
	item.IsLocked = locked
	r.auctions[auctionID] = item

	return nil
}

func (r *AuctionRepository) Delete(_ context.Context, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.auctions, auctionID)
	for i, id := range r.order {
		if id == auctionID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
