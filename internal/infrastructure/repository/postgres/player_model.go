package postgres

import (
	"database/sql"
	"strings"
	"time"

	"github.com/splcricket/auction-hall/internal/domain/player"
)

type playerTableModel struct {
	ID        string         `db:"id"`
	FullName  string         `db:"full_name"`
	Email     sql.NullString `db:"email"`
	Mobile    sql.NullString `db:"mobile"`
	Role      string         `db:"speciality"`
	AgeGroup  string         `db:"age_group"`
	PhotoURL  string         `db:"photo_url"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type playerInsertModel struct {
	ID       string  `db:"id"`
	FullName string  `db:"full_name"`
	Email    *string `db:"email"`
	Mobile   *string `db:"mobile"`
	Role     string  `db:"speciality"`
	AgeGroup string  `db:"age_group"`
	PhotoURL string  `db:"photo_url"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.ID,
		FullName: row.FullName,
		Email:    strings.TrimSpace(row.Email.String),
		Mobile:   strings.TrimSpace(row.Mobile.String),
		Role:     player.Role(row.Role),
		AgeGroup: player.AgeGroup(row.AgeGroup),
		PhotoURL: row.PhotoURL,
	}
}
