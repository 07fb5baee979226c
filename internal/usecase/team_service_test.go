package usecase

import (
	"errors"
	"testing"

	"github.com/splcricket/auction-hall/internal/domain/roster"
	"github.com/splcricket/auction-hall/internal/infrastructure/repository/memory"
	"github.com/splcricket/auction-hall/internal/platform/logging"
)

func newTeamService(entries []roster.Entry) (*TeamService, *memory.RosterRepository, *memory.TeamRepository) {
	rosterRepo := memory.NewRosterRepository(entries)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	service := NewTeamService(
		memory.NewAuctionRepository(memory.SeedAuctions()),
		teamRepo,
		rosterRepo,
		staticIDGenerator{id: "team-001"},
		logging.NewNop(),
	)
	return service, rosterRepo, teamRepo
}

func TestTeamService_CreateTeam(t *testing.T) {
	service, _, _ := newTeamService(nil)

	created, err := service.CreateTeam(t.Context(), memory.AuctionIDSummer2026, TeamInput{
		Name:      "Eastside Eagles",
		Franchise: "Eastside",
		Color:     "#f39c12",
	})
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	if created.ID != "team-001" {
		t.Fatalf("expected team id team-001, got %s", created.ID)
	}
	if created.AuctionID != memory.AuctionIDSummer2026 {
		t.Fatalf("expected team bound to auction, got %s", created.AuctionID)
	}

	_, err = service.CreateTeam(t.Context(), memory.AuctionIDSummer2026, TeamInput{Franchise: "Nameless"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
}

func TestTeamService_DeleteTeam_UnassignsPlayersFirst(t *testing.T) {
	entries := memory.SeedRoster()
	teamID := "team-strikers"
	points := 700
	for i := range entries {
		switch entries[i].PlayerID {
		case "plr-open-01", "plr-open-02":
			entries[i].TeamID = &teamID
			entries[i].SoldPoints = &points
		}
	}
	service, rosterRepo, teamRepo := newTeamService(entries)

	if err := service.DeleteTeam(t.Context(), "team-strikers"); err != nil {
		t.Fatalf("delete team failed: %v", err)
	}

	if _, exists, err := teamRepo.GetByID(t.Context(), "team-strikers"); err != nil || exists {
		t.Fatalf("expected team row gone, exists=%v err=%v", exists, err)
	}

	remaining, err := rosterRepo.ListByAuction(t.Context(), memory.AuctionIDSummer2026)
	if err != nil {
		t.Fatalf("list roster failed: %v", err)
	}
	for _, e := range remaining {
		if e.TeamID != nil && *e.TeamID == "team-strikers" {
			t.Fatalf("expected no roster entry still pointing at deleted team")
		}
	}
}

func TestTeamService_AssignPlayerToTeam(t *testing.T) {
	service, rosterRepo, _ := newTeamService(memory.SeedRoster())

	teamID := "team-royals"
	assigned, err := service.AssignPlayerToTeam(t.Context(), "ap-u16-01", &teamID)
	if err != nil {
		t.Fatalf("assign player failed: %v", err)
	}
	if assigned.TeamID == nil || *assigned.TeamID != teamID {
		t.Fatalf("expected team-royals assigned, got %v", assigned.TeamID)
	}

	cleared, err := service.AssignPlayerToTeam(t.Context(), "ap-u16-01", nil)
	if err != nil {
		t.Fatalf("clear assignment failed: %v", err)
	}
	if cleared.TeamID != nil {
		t.Fatalf("expected assignment cleared, got %v", cleared.TeamID)
	}

	stored, _, err := rosterRepo.GetByID(t.Context(), "ap-u16-01")
	if err != nil {
		t.Fatalf("get entry failed: %v", err)
	}
	if stored.TeamID != nil {
		t.Fatalf("expected cleared assignment persisted, got %v", stored.TeamID)
	}
}

func TestTeamService_AssignPlayerToTeam_CrossAuction(t *testing.T) {
	rosterRepo := memory.NewRosterRepository(memory.SeedRoster())
	teams := memory.SeedTeams()
	teams = append(teams, teams[0])
	teams[len(teams)-1].ID = "team-other"
	teams[len(teams)-1].AuctionID = memory.AuctionIDWinter2025
	service := NewTeamService(
		memory.NewAuctionRepository(memory.SeedAuctions()),
		memory.NewTeamRepository(teams),
		rosterRepo,
		staticIDGenerator{id: "team-001"},
		logging.NewNop(),
	)

	otherTeam := "team-other"
	_, err := service.AssignPlayerToTeam(t.Context(), "ap-u16-01", &otherTeam)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for cross-auction assignment, got %v", err)
	}
}

func TestTeamService_ListTeamsByAuction_UnknownAuction(t *testing.T) {
	service, _, _ := newTeamService(nil)

	_, err := service.ListTeamsByAuction(t.Context(), "missing-auction")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
