package postgres

import "time"

type auctionTableModel struct {
	ID                string    `db:"id"`
	Name              string    `db:"name"`
	Season            string    `db:"season"`
	WelcomeText       string    `db:"welcome_text"`
	IsActive          bool      `db:"is_active"`
	IsLocked          bool      `db:"is_locked"`
	BasePointsPerTeam int       `db:"base_points_per_team"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type auctionInsertModel struct {
	ID                string `db:"id"`
	Name              string `db:"name"`
	Season            string `db:"season"`
	WelcomeText       string `db:"welcome_text"`
	IsActive          bool   `db:"is_active"`
	IsLocked          bool   `db:"is_locked"`
	BasePointsPerTeam int    `db:"base_points_per_team"`
}
