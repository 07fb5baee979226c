package usecase

import (
	"errors"
	"testing"

	"github.com/splcricket/auction-hall/internal/infrastructure/repository/memory"
	"github.com/splcricket/auction-hall/internal/platform/logging"
)

func TestPlayerService_CreatePlayer_AcceptsLegacyAgeGroup(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(nil)
	service := NewPlayerService(playerRepo, staticIDGenerator{id: "player-001"}, logging.NewNop())

	created, err := service.CreatePlayer(t.Context(), PlayerInput{
		FullName: "Arjun Desai",
		Role:     "Batsman",
		AgeGroup: "U16",
		PhotoURL: "/photos/arjun-desai.jpg",
	})
	if err != nil {
		t.Fatalf("create player failed: %v", err)
	}
	if string(created.AgeGroup) != "Under 16" {
		t.Fatalf("expected legacy U16 normalized to Under 16, got %q", created.AgeGroup)
	}

	_, err = service.CreatePlayer(t.Context(), PlayerInput{
		FullName: "Bad Role",
		Role:     "Wicketkeeper",
		AgeGroup: "Open",
		PhotoURL: "/photos/x.jpg",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestPlayerService_SearchPlayers(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	service := NewPlayerService(playerRepo, staticIDGenerator{id: "player-001"}, logging.NewNop())

	hits, err := service.SearchPlayers(t.Context(), "vikram")
	if err != nil {
		t.Fatalf("search players failed: %v", err)
	}
	if len(hits) != 1 || hits[0].FullName != "Vikram Rao" {
		t.Fatalf("expected a single case-insensitive name hit, got %d", len(hits))
	}

	byMobile, err := service.SearchPlayers(t.Context(), "0400222001")
	if err != nil {
		t.Fatalf("search by mobile failed: %v", err)
	}
	if len(byMobile) != 1 || byMobile[0].FullName != "Dev Patel" {
		t.Fatalf("expected mobile lookup to hit Dev Patel, got %d", len(byMobile))
	}

	all, err := service.SearchPlayers(t.Context(), "   ")
	if err != nil {
		t.Fatalf("blank search failed: %v", err)
	}
	if len(all) != len(memory.SeedPlayers()) {
		t.Fatalf("expected blank query to list everyone, got %d", len(all))
	}
}

func TestPlayerService_DeletePlayer_NotFound(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	service := NewPlayerService(playerRepo, staticIDGenerator{id: "player-001"}, logging.NewNop())

	if err := service.DeletePlayer(t.Context(), "missing-player"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
