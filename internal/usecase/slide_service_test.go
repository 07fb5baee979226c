package usecase

import (
	"testing"

	"github.com/splcricket/auction-hall/internal/domain/slides"
	"github.com/splcricket/auction-hall/internal/infrastructure/repository/memory"
	"github.com/splcricket/auction-hall/internal/platform/logging"
)

func TestSlideService_ActiveSlides(t *testing.T) {
	service := NewSlideService(
		memory.NewAuctionRepository(memory.SeedAuctions()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewRosterRepository(memory.SeedRoster()),
		logging.NewNop(),
	)

	sequence, err := service.ActiveSlides(t.Context())
	if err != nil {
		t.Fatalf("active slides failed: %v", err)
	}
	if len(sequence) == 0 {
		t.Fatalf("expected a non-empty show sequence")
	}

	if sequence[0].Kind != slides.KindLabel || sequence[0].Label != "Welcome to the SPL Summer Auction" {
		t.Fatalf("expected welcome label first, got %+v", sequence[0])
	}

	// seed reserves one Under 19 player; only 7 of the 8 entries show
	playerSlides := 0
	for _, s := range sequence {
		if s.Kind == slides.KindPlayer {
			playerSlides++
			if s.PhotoURL == "" {
				t.Fatalf("expected every player card to carry a photo url")
			}
		}
	}
	if playerSlides != 7 {
		t.Fatalf("expected 7 player slides, got %d", playerSlides)
	}

	// 1 welcome + 3 bracket headers + 7 players
	if len(sequence) != 11 {
		t.Fatalf("expected 11 slides, got %d", len(sequence))
	}

	if sequence[1].Label != "UNDER 16" {
		t.Fatalf("expected UNDER 16 header second, got %q", sequence[1].Label)
	}
}

func TestSlideService_ActiveSlides_NoActiveAuction(t *testing.T) {
	seeds := memory.SeedAuctions()
	for i := range seeds {
		seeds[i].IsActive = false
	}
	service := NewSlideService(
		memory.NewAuctionRepository(seeds),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewRosterRepository(memory.SeedRoster()),
		logging.NewNop(),
	)

	sequence, err := service.ActiveSlides(t.Context())
	if err != nil {
		t.Fatalf("active slides failed: %v", err)
	}
	if len(sequence) != 0 {
		t.Fatalf("expected empty sequence without an active auction, got %d slides", len(sequence))
	}
}

func TestSlideService_SlidesForAuction_CurrentFlagCarried(t *testing.T) {
	service := NewSlideService(
		memory.NewAuctionRepository(memory.SeedAuctions()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewRosterRepository(memory.SeedRoster()),
		logging.NewNop(),
	)

	sequence, err := service.SlidesForAuction(t.Context(), memory.AuctionIDSummer2026)
	if err != nil {
		t.Fatalf("slides for auction failed: %v", err)
	}

	currentCount := 0
	for _, s := range sequence {
		if s.IsCurrent {
			currentCount++
			if s.PlayerName != "Aarav Mehta" {
				t.Fatalf("expected the seeded current player highlighted, got %q", s.PlayerName)
			}
		}
	}
	if currentCount != 1 {
		t.Fatalf("expected exactly one current slide, got %d", currentCount)
	}
}

func TestSlideService_SlidesForAuction_FallbackPhoto(t *testing.T) {
	players := memory.SeedPlayers()
	for i := range players {
		if players[i].ID == "plr-u16-01" {
			players[i].PhotoURL = ""
		}
	}
	service := NewSlideService(
		memory.NewAuctionRepository(memory.SeedAuctions()),
		memory.NewPlayerRepository(players),
		memory.NewRosterRepository(memory.SeedRoster()),
		logging.NewNop(),
	)

	sequence, err := service.SlidesForAuction(t.Context(), memory.AuctionIDSummer2026)
	if err != nil {
		t.Fatalf("slides for auction failed: %v", err)
	}

	for _, s := range sequence {
		if s.PlayerName == "Aarav Mehta" && s.PhotoURL != slides.FallbackPhotoURL {
			t.Fatalf("expected fallback photo url, got %q", s.PhotoURL)
		}
	}
}
