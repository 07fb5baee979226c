package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/roster"
)

// RosterRepository mirrors the store's semantics closely enough for the
// engine tests: every mutation is a single row-level write, and listings
// exclude soft-removed entries the way the SQL filters do.
type RosterRepository struct {
	mu      sync.RWMutex
	entries map[string]roster.Entry
}

func NewRosterRepository(items []roster.Entry) *RosterRepository {
	entries := make(map[string]roster.Entry, len(items))
	for _, item := range items {
		entries[item.ID] = item
	}

	return &RosterRepository{entries: entries}
}

func (r *RosterRepository) ListByAuction(_ context.Context, auctionID string) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Entry, 0)
	for _, item := range r.entries {
		if item.AuctionID == auctionID && !item.IsRemoved {
			out = append(out, item)
		}
	}
	sortByPosition(out)

	return out, nil
}

func (r *RosterRepository) ListBracket(_ context.Context, auctionID string, ageGroup player.AgeGroup) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Entry, 0)
	for _, item := range r.entries {
		if item.AuctionID == auctionID && item.AgeGroup == ageGroup && !item.IsRemoved {
			out = append(out, item)
		}
	}
	sortByPosition(out)

	return out, nil
}

func (r *RosterRepository) GetByID(_ context.Context, entryID string) (roster.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.entries[entryID]
	return item, ok, nil
}

func (r *RosterRepository) GetByAuctionAndPlayer(_ context.Context, auctionID, playerID string) (roster.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.entries {
		if item.AuctionID == auctionID && item.PlayerID == playerID {
			return item, true, nil
		}
	}

	return roster.Entry{}, false, nil
}

func (r *RosterRepository) Upsert(_ context.Context, item roster.Entry) (roster.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.entries {
		if existing.AuctionID == item.AuctionID && existing.PlayerID == item.PlayerID {
			item.ID = id
			break
		}
	}
	r.entries[item.ID] = item

	return item, nil
}

func (r *RosterRepository) UpdatePosition(_ context.Context, auctionID, playerID string, position int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.entries {
		if item.AuctionID == auctionID && item.PlayerID == playerID {
			item.PositionNumber = position
			r.entries[id] = item
			break
		}
	}

	return nil
}

func (r *RosterRepository) SetReserved(_ context.Context, auctionID, playerID string, reserved bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.entries {
		if item.AuctionID == auctionID && item.PlayerID == playerID {
			item.IsReserved = reserved
			r.entries[id] = item
			break
		}
	}

	return nil
}

func (r *RosterRepository) SetRemoved(_ context.Context, auctionID, playerID string, removed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.entries {
		if item.AuctionID == auctionID && item.PlayerID == playerID {
			item.IsRemoved = removed
			r.entries[id] = item
			break
		}
	}

	return nil
}

func (r *RosterRepository) ClearCurrent(_ context.Context, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.entries {
		if item.AuctionID == auctionID {
			item.IsCurrent = false
			r.entries[id] = item
		}
	}

	return nil
}

func (r *RosterRepository) MarkCurrent(_ context.Context, auctionID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.entries {
		if item.AuctionID == auctionID && item.PlayerID == playerID {
			item.IsCurrent = true
			r.entries[id] = item
			break
		}
	}

	return nil
}

func (r *RosterRepository) AssignTeam(_ context.Context, entryID string, teamID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.entries[entryID]
	if !ok {
		return nil
	}
	item.TeamID = teamID
	r.entries[entryID] = item

	return nil
}

func (r *RosterRepository) UnassignTeam(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.entries {
		if item.TeamID != nil && *item.TeamID == teamID {
			item.TeamID = nil
			r.entries[id] = item
		}
	}

	return nil
}

func (r *RosterRepository) SetSale(_ context.Context, entryID, teamID string, soldPoints int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.entries[entryID]
	if !ok {
		return nil
	}
	item.TeamID = &teamID
	item.SoldPoints = &soldPoints
	r.entries[entryID] = item

	return nil
}

func (r *RosterRepository) ClearSale(_ context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.entries[entryID]
	if !ok {
		return nil
	}
	item.SoldPoints = nil
	r.entries[entryID] = item

	return nil
}

func (r *RosterRepository) Delete(_ context.Context, auctionID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.entries {
		if item.AuctionID == auctionID && item.PlayerID == playerID {
			delete(r.entries, id)
			break
		}
	}

	return nil
}

func (r *RosterRepository) DeleteByAuction(_ context.Context, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.entries {
		if item.AuctionID == auctionID {
			delete(r.entries, id)
		}
	}

	return nil
}

func sortByPosition(entries []roster.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AgeGroup != entries[j].AgeGroup {
			return ageGroupRank(entries[i].AgeGroup) < ageGroupRank(entries[j].AgeGroup)
		}
		return entries[i].PositionNumber < entries[j].PositionNumber
	})
}

func ageGroupRank(group player.AgeGroup) int {
	for i, g := range player.AgeGroupOrder {
		if g == group {
			return i
		}
	}
	return len(player.AgeGroupOrder)
}
