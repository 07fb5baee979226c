package usecase

import (
	"errors"
	"testing"

	"github.com/splcricket/auction-hall/internal/domain/roster"
	"github.com/splcricket/auction-hall/internal/infrastructure/repository/memory"
	"github.com/splcricket/auction-hall/internal/platform/logging"
)

func newSaleService(entries []roster.Entry) (*SaleService, *memory.RosterRepository) {
	rosterRepo := memory.NewRosterRepository(entries)
	service := NewSaleService(
		memory.NewAuctionRepository(memory.SeedAuctions()),
		memory.NewTeamRepository(memory.SeedTeams()),
		rosterRepo,
		logging.NewNop(),
	)
	return service, rosterRepo
}

func TestSaleService_Sell_RecordsTeamAndPoints(t *testing.T) {
	service, rosterRepo := newSaleService(memory.SeedRoster())

	sold, err := service.Sell(t.Context(), "ap-open-01", "team-strikers", 1500)
	if err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if sold.TeamID == nil || *sold.TeamID != "team-strikers" {
		t.Fatalf("expected team-strikers assigned, got %v", sold.TeamID)
	}
	if sold.SoldPoints == nil || *sold.SoldPoints != 1500 {
		t.Fatalf("expected 1500 sold points, got %v", sold.SoldPoints)
	}

	stored, exists, err := rosterRepo.GetByID(t.Context(), "ap-open-01")
	if err != nil || !exists {
		t.Fatalf("expected stored entry, exists=%v err=%v", exists, err)
	}
	if !stored.Sold() {
		t.Fatalf("expected stored entry to report sold")
	}
}

func TestSaleService_Sell_PreconditionOrder(t *testing.T) {
	service, _ := newSaleService(memory.SeedRoster())

	// points check fires before the reservation check
	_, err := service.Sell(t.Context(), "ap-u19-02", "team-strikers", 0)
	if !errors.Is(err, roster.ErrInvalidSalePoints) {
		t.Fatalf("expected ErrInvalidSalePoints for zero points, got %v", err)
	}

	_, err = service.Sell(t.Context(), "ap-u19-02", "team-strikers", 500)
	if !errors.Is(err, roster.ErrReservedPlayer) {
		t.Fatalf("expected ErrReservedPlayer, got %v", err)
	}
}

func TestSaleService_Sell_InsufficientPoints(t *testing.T) {
	service, _ := newSaleService(memory.SeedRoster())

	if _, err := service.Sell(t.Context(), "ap-open-01", "team-strikers", 9000); err != nil {
		t.Fatalf("first sale failed: %v", err)
	}

	// 1000 points remain; asking for more must fail and name the remainder
	_, err := service.Sell(t.Context(), "ap-open-02", "team-strikers", 1500)
	if !errors.Is(err, roster.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}

	// spending exactly the remainder is allowed
	if _, err := service.Sell(t.Context(), "ap-open-02", "team-strikers", 1000); err != nil {
		t.Fatalf("exact-remainder sale failed: %v", err)
	}
}

func TestSaleService_Sell_CrossAuctionTeam(t *testing.T) {
	entries := memory.SeedRoster()
	teams := memory.SeedTeams()
	teams = append(teams, teams[0])
	teams[len(teams)-1].ID = "team-other"
	teams[len(teams)-1].AuctionID = memory.AuctionIDWinter2025

	rosterRepo := memory.NewRosterRepository(entries)
	service := NewSaleService(
		memory.NewAuctionRepository(memory.SeedAuctions()),
		memory.NewTeamRepository(teams),
		rosterRepo,
		logging.NewNop(),
	)

	_, err := service.Sell(t.Context(), "ap-open-01", "team-other", 500)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for cross-auction team, got %v", err)
	}
}

func TestSaleService_Unsell_KeepsTeamAssignment(t *testing.T) {
	service, rosterRepo := newSaleService(memory.SeedRoster())

	if _, err := service.Sell(t.Context(), "ap-open-01", "team-titans", 800); err != nil {
		t.Fatalf("sell failed: %v", err)
	}

	reversed, err := service.Unsell(t.Context(), "ap-open-01")
	if err != nil {
		t.Fatalf("unsell failed: %v", err)
	}
	if reversed.SoldPoints != nil {
		t.Fatalf("expected sold points cleared, got %v", reversed.SoldPoints)
	}
	if reversed.TeamID == nil || *reversed.TeamID != "team-titans" {
		t.Fatalf("expected team assignment kept after unsell, got %v", reversed.TeamID)
	}

	stored, _, err := rosterRepo.GetByID(t.Context(), "ap-open-01")
	if err != nil {
		t.Fatalf("get entry failed: %v", err)
	}
	if stored.Sold() {
		t.Fatalf("expected stored entry to no longer report sold")
	}
}

func TestSaleService_TeamBalances_IgnoreRemovedSale(t *testing.T) {
	service, rosterRepo := newSaleService(memory.SeedRoster())

	if _, err := service.Sell(t.Context(), "ap-open-01", "team-strikers", 1200); err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if err := rosterRepo.SetRemoved(t.Context(), memory.AuctionIDSummer2026, "plr-open-01", true); err != nil {
		t.Fatalf("set removed failed: %v", err)
	}

	balances, err := service.TeamBalances(t.Context(), memory.AuctionIDSummer2026)
	if err != nil {
		t.Fatalf("team balances failed: %v", err)
	}

	// Soft-removing a sold player drops the row from the ledger, so the
	// points flow back to the team until the entry is restored.
	for _, b := range balances {
		if b.Team.ID != "team-strikers" {
			continue
		}
		if b.SpentPoints != 0 || b.RemainingPoints != 10000 {
			t.Fatalf("expected refunded budget after soft removal, got %d spent / %d remaining",
				b.SpentPoints, b.RemainingPoints)
		}
		if b.PlayersBought != 0 {
			t.Fatalf("expected 0 players bought after soft removal, got %d", b.PlayersBought)
		}
	}
}

func TestSaleService_TeamBalances_RecomputedFromSales(t *testing.T) {
	service, _ := newSaleService(memory.SeedRoster())

	if _, err := service.Sell(t.Context(), "ap-open-01", "team-strikers", 1200); err != nil {
		t.Fatalf("first sale failed: %v", err)
	}
	if _, err := service.Sell(t.Context(), "ap-open-02", "team-strikers", 800); err != nil {
		t.Fatalf("second sale failed: %v", err)
	}

	balances, err := service.TeamBalances(t.Context(), memory.AuctionIDSummer2026)
	if err != nil {
		t.Fatalf("team balances failed: %v", err)
	}
	if len(balances) != 4 {
		t.Fatalf("expected 4 team balances, got %d", len(balances))
	}

	for _, b := range balances {
		switch b.Team.ID {
		case "team-strikers":
			if b.SpentPoints != 2000 || b.RemainingPoints != 8000 {
				t.Fatalf("expected 2000 spent / 8000 remaining, got %d / %d", b.SpentPoints, b.RemainingPoints)
			}
			if b.PlayersBought != 2 || b.PlayersRemaining != roster.RosterTarget-2 {
				t.Fatalf("expected 2 bought / %d remaining slots, got %d / %d",
					roster.RosterTarget-2, b.PlayersBought, b.PlayersRemaining)
			}
		default:
			if b.SpentPoints != 0 || b.RemainingPoints != 10000 {
				t.Fatalf("expected untouched budget for %s, got %d / %d",
					b.Team.ID, b.SpentPoints, b.RemainingPoints)
			}
		}
	}
}
