package postgres

import (
	"database/sql"
	"strings"
	"time"

	"github.com/splcricket/auction-hall/internal/domain/team"
)

type teamTableModel struct {
	ID        string         `db:"id"`
	AuctionID string         `db:"auction_id"`
	Name      string         `db:"name"`
	Franchise sql.NullString `db:"franchise"`
	Color     sql.NullString `db:"color"`
	LogoURL   sql.NullString `db:"logo_url"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type teamInsertModel struct {
	ID        string  `db:"id"`
	AuctionID string  `db:"auction_id"`
	Name      string  `db:"name"`
	Franchise *string `db:"franchise"`
	Color     *string `db:"color"`
	LogoURL   *string `db:"logo_url"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:        row.ID,
		AuctionID: row.AuctionID,
		Name:      row.Name,
		Franchise: strings.TrimSpace(row.Franchise.String),
		Color:     strings.TrimSpace(row.Color.String),
		LogoURL:   strings.TrimSpace(row.LogoURL.String),
	}
}
