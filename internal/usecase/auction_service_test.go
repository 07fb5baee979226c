package usecase

import (
	"errors"
	"testing"

	"github.com/splcricket/auction-hall/internal/domain/auction"
	"github.com/splcricket/auction-hall/internal/infrastructure/repository/memory"
	"github.com/splcricket/auction-hall/internal/platform/logging"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func newAuctionService(auctionRepo *memory.AuctionRepository) *AuctionService {
	return NewAuctionService(
		auctionRepo,
		memory.NewTeamRepository(nil),
		memory.NewRosterRepository(nil),
		staticIDGenerator{id: "auction-001"},
		logging.NewNop(),
	)
}

func TestAuctionService_CreateAuction_DefaultsBasePoints(t *testing.T) {
	auctionRepo := memory.NewAuctionRepository(nil)
	service := newAuctionService(auctionRepo)

	created, err := service.CreateAuction(t.Context(), CreateAuctionInput{
		Name:   "SPL Spring Auction",
		Season: "2027",
	})
	if err != nil {
		t.Fatalf("create auction failed: %v", err)
	}

	if created.ID != "auction-001" {
		t.Fatalf("expected auction id auction-001, got %s", created.ID)
	}
	if created.BasePointsPerTeam != auction.DefaultBasePoints {
		t.Fatalf("expected default base points %d, got %d", auction.DefaultBasePoints, created.BasePointsPerTeam)
	}
	if created.IsActive {
		t.Fatalf("new auction must not start active")
	}
}

func TestAuctionService_CreateAuction_InvalidInput(t *testing.T) {
	auctionRepo := memory.NewAuctionRepository(nil)
	service := newAuctionService(auctionRepo)

	_, err := service.CreateAuction(t.Context(), CreateAuctionInput{Season: "2027"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
}

func TestAuctionService_SetActiveAuction_SingleActive(t *testing.T) {
	auctionRepo := memory.NewAuctionRepository(memory.SeedAuctions())
	service := newAuctionService(auctionRepo)

	activated, err := service.SetActiveAuction(t.Context(), memory.AuctionIDWinter2025)
	if err != nil {
		t.Fatalf("set active auction failed: %v", err)
	}
	if !activated.IsActive {
		t.Fatalf("expected activated auction to report active")
	}

	all, err := service.ListAuctions(t.Context())
	if err != nil {
		t.Fatalf("list auctions failed: %v", err)
	}

	activeCount := 0
	for _, item := range all {
		if item.IsActive {
			activeCount++
			if item.ID != memory.AuctionIDWinter2025 {
				t.Fatalf("expected %s to be the active auction, got %s", memory.AuctionIDWinter2025, item.ID)
			}
		}
	}
	if activeCount != 1 {
		t.Fatalf("expected exactly one active auction, got %d", activeCount)
	}
}

func TestAuctionService_GetActiveAuction_NoneActive(t *testing.T) {
	seeds := memory.SeedAuctions()
	for i := range seeds {
		seeds[i].IsActive = false
	}
	auctionRepo := memory.NewAuctionRepository(seeds)
	service := newAuctionService(auctionRepo)

	_, exists, err := service.GetActiveAuction(t.Context())
	if err != nil {
		t.Fatalf("get active auction failed: %v", err)
	}
	if exists {
		t.Fatalf("expected no active auction")
	}
}

func TestAuctionService_SetAuctionLocked_RoundTrip(t *testing.T) {
	auctionRepo := memory.NewAuctionRepository(memory.SeedAuctions())
	service := newAuctionService(auctionRepo)

	locked, err := service.SetAuctionLocked(t.Context(), memory.AuctionIDSummer2026, true)
	if err != nil {
		t.Fatalf("lock auction failed: %v", err)
	}
	if !locked.IsLocked {
		t.Fatalf("expected auction to be locked")
	}

	unlocked, err := service.SetAuctionLocked(t.Context(), memory.AuctionIDSummer2026, false)
	if err != nil {
		t.Fatalf("unlock auction failed: %v", err)
	}
	if unlocked.IsLocked {
		t.Fatalf("expected auction to be unlocked")
	}
}

func TestAuctionService_DeleteAuction_RemovesTeamsAndRoster(t *testing.T) {
	auctionRepo := memory.NewAuctionRepository(memory.SeedAuctions())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	rosterRepo := memory.NewRosterRepository(memory.SeedRoster())
	service := NewAuctionService(auctionRepo, teamRepo, rosterRepo, staticIDGenerator{id: "auction-001"}, logging.NewNop())

	if err := service.DeleteAuction(t.Context(), memory.AuctionIDSummer2026); err != nil {
		t.Fatalf("delete auction failed: %v", err)
	}

	_, err := service.GetAuction(t.Context(), memory.AuctionIDSummer2026)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted auction to be gone, got %v", err)
	}

	teams, err := teamRepo.ListByAuction(t.Context(), memory.AuctionIDSummer2026)
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no teams after auction delete, got %d", len(teams))
	}

	entries, err := rosterRepo.ListByAuction(t.Context(), memory.AuctionIDSummer2026)
	if err != nil {
		t.Fatalf("list roster entries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no roster entries after auction delete, got %d", len(entries))
	}
}

func TestAuctionService_GetAuction_NotFound(t *testing.T) {
	auctionRepo := memory.NewAuctionRepository(memory.SeedAuctions())
	service := newAuctionService(auctionRepo)

	_, err := service.GetAuction(t.Context(), "missing-auction")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
