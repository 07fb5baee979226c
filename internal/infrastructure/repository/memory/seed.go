package memory

import (
	"github.com/splcricket/auction-hall/internal/domain/auction"
	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/roster"
	"github.com/splcricket/auction-hall/internal/domain/team"
)

const (
	AuctionIDSummer2026 = "spl-summer-2026"
	AuctionIDWinter2025 = "spl-winter-2025"
)

func SeedAuctions() []auction.Auction {
	return []auction.Auction{
		{
			ID:                AuctionIDSummer2026,
			Name:              "SPL Summer Auction",
			Season:            "2026",
			WelcomeText:       "Welcome to the SPL Summer Auction",
			IsActive:          true,
			BasePointsPerTeam: auction.DefaultBasePoints,
		},
		{
			ID:                AuctionIDWinter2025,
			Name:              "SPL Winter Auction",
			Season:            "2025",
			WelcomeText:       "Welcome to the SPL Winter Auction",
			IsActive:          false,
			BasePointsPerTeam: auction.DefaultBasePoints,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-strikers", AuctionID: AuctionIDSummer2026, Name: "Southside Strikers", Franchise: "Southside", Color: "#c0392b"},
		{ID: "team-titans", AuctionID: AuctionIDSummer2026, Name: "Harbour Titans", Franchise: "Harbour", Color: "#2980b9"},
		{ID: "team-royals", AuctionID: AuctionIDSummer2026, Name: "Northgate Royals", Franchise: "Northgate", Color: "#8e44ad"},
		{ID: "team-hawks", AuctionID: AuctionIDSummer2026, Name: "Westfield Hawks", Franchise: "Westfield", Color: "#27ae60"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "plr-u16-01", FullName: "Aarav Mehta", Role: player.RoleBatsman, AgeGroup: player.AgeGroupUnder16, Mobile: "0400111001", PhotoURL: "/photos/aarav-mehta.jpg"},
		{ID: "plr-u16-02", FullName: "Kiaan Sharma", Role: player.RoleBowler, AgeGroup: player.AgeGroupUnder16, Mobile: "0400111002", PhotoURL: "/photos/kiaan-sharma.jpg"},
		{ID: "plr-u16-03", FullName: "Rohan Iyer", Role: player.RoleAllRounder, AgeGroup: player.AgeGroupUnder16, Mobile: "0400111003", PhotoURL: "/photos/rohan-iyer.jpg"},
		{ID: "plr-u19-01", FullName: "Dev Patel", Role: player.RoleBatsman, AgeGroup: player.AgeGroupUnder19, Mobile: "0400222001", PhotoURL: "/photos/dev-patel.jpg"},
		{ID: "plr-u19-02", FullName: "Ishaan Nair", Role: player.RoleBowler, AgeGroup: player.AgeGroupUnder19, Mobile: "0400222002", PhotoURL: "/photos/ishaan-nair.jpg"},
		{ID: "plr-open-01", FullName: "Vikram Rao", Role: player.RoleAllRounder, AgeGroup: player.AgeGroupOpen, Mobile: "0400333001", PhotoURL: "/photos/vikram-rao.jpg"},
		{ID: "plr-open-02", FullName: "Sandeep Kulkarni", Role: player.RoleBatsman, AgeGroup: player.AgeGroupOpen, Mobile: "0400333002", PhotoURL: "/photos/sandeep-kulkarni.jpg"},
		{ID: "plr-open-03", FullName: "Manish Verma", Role: player.RoleBowler, AgeGroup: player.AgeGroupOpen, Mobile: "0400333003", PhotoURL: "/photos/manish-verma.jpg"},
	}
}

func SeedRoster() []roster.Entry {
	return []roster.Entry{
		{ID: "ap-u16-01", AuctionID: AuctionIDSummer2026, PlayerID: "plr-u16-01", AgeGroup: player.AgeGroupUnder16, PositionNumber: 1, IsCurrent: true},
		{ID: "ap-u16-02", AuctionID: AuctionIDSummer2026, PlayerID: "plr-u16-02", AgeGroup: player.AgeGroupUnder16, PositionNumber: 2},
		{ID: "ap-u16-03", AuctionID: AuctionIDSummer2026, PlayerID: "plr-u16-03", AgeGroup: player.AgeGroupUnder16, PositionNumber: 3},
		{ID: "ap-u19-01", AuctionID: AuctionIDSummer2026, PlayerID: "plr-u19-01", AgeGroup: player.AgeGroupUnder19, PositionNumber: 1},
		{ID: "ap-u19-02", AuctionID: AuctionIDSummer2026, PlayerID: "plr-u19-02", AgeGroup: player.AgeGroupUnder19, PositionNumber: 2, IsReserved: true},
		{ID: "ap-open-01", AuctionID: AuctionIDSummer2026, PlayerID: "plr-open-01", AgeGroup: player.AgeGroupOpen, PositionNumber: 1},
		{ID: "ap-open-02", AuctionID: AuctionIDSummer2026, PlayerID: "plr-open-02", AgeGroup: player.AgeGroupOpen, PositionNumber: 2},
		{ID: "ap-open-03", AuctionID: AuctionIDSummer2026, PlayerID: "plr-open-03", AgeGroup: player.AgeGroupOpen, PositionNumber: 3},
	}
}
