package slides

import (
	"testing"

	"github.com/splcricket/auction-hall/internal/domain/auction"
	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/roster"
)

func TestBuild_ReservedAndEmptyBracketsExcluded(t *testing.T) {
	a := auction.Auction{ID: "auc-1", WelcomeText: "Welcome"}
	players := map[string]player.Player{
		"p1": {ID: "p1", FullName: "Arjun Mehta", Role: player.RoleBatsman, AgeGroup: player.AgeGroupUnder16, PhotoURL: "https://cdn.example.com/p1.jpg"},
		"p2": {ID: "p2", FullName: "Sameer Shah", Role: player.RoleBowler, AgeGroup: player.AgeGroupUnder19, PhotoURL: "https://cdn.example.com/p2.jpg"},
	}
	entries := []roster.Entry{
		{ID: "e1", AuctionID: "auc-1", PlayerID: "p1", AgeGroup: player.AgeGroupUnder16, PositionNumber: 1},
		{ID: "e2", AuctionID: "auc-1", PlayerID: "p2", AgeGroup: player.AgeGroupUnder19, PositionNumber: 1, IsReserved: true},
	}

	got := Build(a, entries, players)

	// Exactly: welcome label, UNDER 16 header, P1. The reserved Under 19
	// player must not leak a header either, and Open never appears.
	if len(got) != 3 {
		t.Fatalf("expected 3 slides, got %d: %+v", len(got), got)
	}
	if got[0].Kind != KindLabel || got[0].Label != "Welcome" {
		t.Fatalf("slide 0 should be the welcome label, got %+v", got[0])
	}
	if got[1].Kind != KindLabel || got[1].Label != "UNDER 16" {
		t.Fatalf("slide 1 should be the UNDER 16 header, got %+v", got[1])
	}
	if got[2].Kind != KindPlayer || got[2].PlayerName != "Arjun Mehta" {
		t.Fatalf("slide 2 should be P1, got %+v", got[2])
	}
}

func TestBuild_PositionOrderAndPresentationFlags(t *testing.T) {
	a := auction.Auction{ID: "auc-1", WelcomeText: "Welcome"}
	players := map[string]player.Player{
		"p1": {ID: "p1", FullName: "First", Role: player.RoleBatsman, PhotoURL: "x"},
		"p2": {ID: "p2", FullName: "Second", Role: player.RoleBowler, PhotoURL: "y"},
	}
	entries := []roster.Entry{
		{ID: "e2", AuctionID: "auc-1", PlayerID: "p2", AgeGroup: player.AgeGroupOpen, PositionNumber: 2, IsCurrent: true},
		{ID: "e1", AuctionID: "auc-1", PlayerID: "p1", AgeGroup: player.AgeGroupOpen, PositionNumber: 1},
	}

	got := Build(a, entries, players)
	if len(got) != 4 {
		t.Fatalf("expected 4 slides, got %d", len(got))
	}
	if got[2].PlayerName != "First" || got[3].PlayerName != "Second" {
		t.Fatalf("players out of position order: %q then %q", got[2].PlayerName, got[3].PlayerName)
	}
	if !got[3].IsCurrent {
		t.Fatal("current entry should carry IsCurrent")
	}
	for _, s := range got {
		if s.Sold || s.GifPlayed {
			t.Fatalf("presentation flags must reset on every build: %+v", s)
		}
	}
}

func TestBuild_MissingPhotoGetsFallback(t *testing.T) {
	a := auction.Auction{ID: "auc-1", WelcomeText: "Welcome"}
	players := map[string]player.Player{
		"p1": {ID: "p1", FullName: "No Photo", Role: player.RoleBatsman},
	}
	entries := []roster.Entry{
		{ID: "e1", AuctionID: "auc-1", PlayerID: "p1", AgeGroup: player.AgeGroupOpen, PositionNumber: 1},
	}

	got := Build(a, entries, players)
	if got[2].PhotoURL != FallbackPhotoURL {
		t.Fatalf("expected fallback photo, got %q", got[2].PhotoURL)
	}
}

func TestBuild_RemovedEntriesExcluded(t *testing.T) {
	a := auction.Auction{ID: "auc-1", WelcomeText: "Welcome"}
	players := map[string]player.Player{
		"p1": {ID: "p1", FullName: "Gone", Role: player.RoleBatsman, PhotoURL: "x"},
	}
	entries := []roster.Entry{
		{ID: "e1", AuctionID: "auc-1", PlayerID: "p1", AgeGroup: player.AgeGroupOpen, PositionNumber: 1, IsRemoved: true},
	}

	got := Build(a, entries, players)
	if len(got) != 1 {
		t.Fatalf("removed entry must not appear, got %d slides", len(got))
	}
}
