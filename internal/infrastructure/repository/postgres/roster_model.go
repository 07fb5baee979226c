package postgres

import (
	"database/sql"
	"time"

	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/roster"
)

type rosterTableModel struct {
	ID             string         `db:"id"`
	AuctionID      string         `db:"auction_id"`
	PlayerID       string         `db:"player_id"`
	AgeGroup       string         `db:"age_group"`
	PositionNumber int            `db:"position_number"`
	IsReserved     bool           `db:"is_reserved"`
	IsCurrent      bool           `db:"is_current"`
	IsRemoved      bool           `db:"is_removed"`
	TeamID         sql.NullString `db:"team_id"`
	SoldPoints     sql.NullInt64  `db:"sold_points"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type rosterInsertModel struct {
	ID             string `db:"id"`
	AuctionID      string `db:"auction_id"`
	PlayerID       string `db:"player_id"`
	AgeGroup       string `db:"age_group"`
	PositionNumber int    `db:"position_number"`
}

func rosterEntryFromRow(row rosterTableModel) roster.Entry {
	entry := roster.Entry{
		ID:             row.ID,
		AuctionID:      row.AuctionID,
		PlayerID:       row.PlayerID,
		AgeGroup:       player.AgeGroup(row.AgeGroup),
		PositionNumber: row.PositionNumber,
		IsReserved:     row.IsReserved,
		IsCurrent:      row.IsCurrent,
		IsRemoved:      row.IsRemoved,
	}
	if row.TeamID.Valid {
		teamID := row.TeamID.String
		entry.TeamID = &teamID
	}
	if row.SoldPoints.Valid {
		points := int(row.SoldPoints.Int64)
		entry.SoldPoints = &points
	}
	return entry
}
