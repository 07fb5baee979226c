package httpapi

import (
	"github.com/splcricket/auction-hall/internal/domain/auction"
	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/roster"
	"github.com/splcricket/auction-hall/internal/domain/slides"
	"github.com/splcricket/auction-hall/internal/domain/team"
	"github.com/splcricket/auction-hall/internal/infrastructure/upload"
	"github.com/splcricket/auction-hall/internal/usecase"
)

type auctionDTO struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Season            string `json:"season"`
	WelcomeText       string `json:"welcomeText,omitempty"`
	IsActive          bool   `json:"isActive"`
	IsLocked          bool   `json:"isLocked"`
	BasePointsPerTeam int    `json:"basePointsPerTeam"`
}

func auctionToDTO(a auction.Auction) auctionDTO {
	return auctionDTO{
		ID:                a.ID,
		Name:              a.Name,
		Season:            a.Season,
		WelcomeText:       a.WelcomeText,
		IsActive:          a.IsActive,
		IsLocked:          a.IsLocked,
		BasePointsPerTeam: a.BasePointsPerTeam,
	}
}

type playerDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Role     string `json:"role"`
	AgeGroup string `json:"ageGroup"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:       p.ID,
		FullName: p.FullName,
		Email:    p.Email,
		Mobile:   p.Mobile,
		Role:     string(p.Role),
		AgeGroup: string(p.AgeGroup),
		PhotoURL: p.PhotoURL,
	}
}

type teamDTO struct {
	ID        string `json:"id"`
	AuctionID string `json:"auctionId"`
	Name      string `json:"name"`
	Franchise string `json:"franchise,omitempty"`
	Color     string `json:"color,omitempty"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:        t.ID,
		AuctionID: t.AuctionID,
		Name:      t.Name,
		Franchise: t.Franchise,
		Color:     t.Color,
		LogoURL:   t.LogoURL,
	}
}

type rosterEntryDTO struct {
	ID             string  `json:"id"`
	AuctionID      string  `json:"auctionId"`
	PlayerID       string  `json:"playerId"`
	AgeGroup       string  `json:"ageGroup"`
	PositionNumber int     `json:"positionNumber"`
	IsReserved     bool    `json:"isReserved"`
	IsCurrent      bool    `json:"isCurrent"`
	IsRemoved      bool    `json:"isRemoved"`
	TeamID         *string `json:"teamId,omitempty"`
	SoldPoints     *int    `json:"soldPoints,omitempty"`
	Sold           bool    `json:"sold"`
}

func rosterEntryToDTO(e roster.Entry) rosterEntryDTO {
	return rosterEntryDTO{
		ID:             e.ID,
		AuctionID:      e.AuctionID,
		PlayerID:       e.PlayerID,
		AgeGroup:       string(e.AgeGroup),
		PositionNumber: e.PositionNumber,
		IsReserved:     e.IsReserved,
		IsCurrent:      e.IsCurrent,
		IsRemoved:      e.IsRemoved,
		TeamID:         e.TeamID,
		SoldPoints:     e.SoldPoints,
		Sold:           e.Sold(),
	}
}

type rosterItemDTO struct {
	rosterEntryDTO
	Player playerDTO `json:"player"`
}

func rosterItemToDTO(item usecase.RosterItem) rosterItemDTO {
	return rosterItemDTO{
		rosterEntryDTO: rosterEntryToDTO(item.Entry),
		Player:         playerToDTO(item.Player),
	}
}

func rosterItemsToDTO(items []usecase.RosterItem) []rosterItemDTO {
	out := make([]rosterItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, rosterItemToDTO(item))
	}

	return out
}

type teamBalanceDTO struct {
	Team             teamDTO `json:"team"`
	TotalPoints      int     `json:"totalPoints"`
	SpentPoints      int     `json:"spentPoints"`
	RemainingPoints  int     `json:"remainingPoints"`
	PlayersBought    int     `json:"playersBought"`
	PlayersRemaining int     `json:"playersRemaining"`
}

func teamBalanceToDTO(b roster.TeamBalance) teamBalanceDTO {
	return teamBalanceDTO{
		Team:             teamToDTO(b.Team),
		TotalPoints:      b.TotalPoints,
		SpentPoints:      b.SpentPoints,
		RemainingPoints:  b.RemainingPoints,
		PlayersBought:    b.PlayersBought,
		PlayersRemaining: b.PlayersRemaining,
	}
}

type slideDTO struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Label      string `json:"label,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	Speciality string `json:"speciality,omitempty"`
	AgeGroup   string `json:"ageGroup,omitempty"`
	PhotoURL   string `json:"photoUrl,omitempty"`
	IsCurrent  bool   `json:"isCurrent"`
	Sold       bool   `json:"sold"`
	GifPlayed  bool   `json:"gifPlayed"`
}

func slideToDTO(s slides.Slide) slideDTO {
	return slideDTO{
		ID:         s.ID,
		Kind:       string(s.Kind),
		Label:      s.Label,
		PlayerName: s.PlayerName,
		Speciality: s.Speciality,
		AgeGroup:   s.AgeGroup,
		PhotoURL:   s.PhotoURL,
		IsCurrent:  s.IsCurrent,
		Sold:       s.Sold,
		GifPlayed:  s.GifPlayed,
	}
}

func slidesToDTO(items []slides.Slide) []slideDTO {
	out := make([]slideDTO, 0, len(items))
	for _, s := range items {
		out = append(out, slideToDTO(s))
	}

	return out
}

type uploadResultDTO struct {
	Filename  string `json:"filename"`
	PublicURL string `json:"publicUrl"`
}

func uploadResultToDTO(result upload.Result) uploadResultDTO {
	return uploadResultDTO{
		Filename:  result.Filename,
		PublicURL: result.PublicURL,
	}
}
