package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/roster"
	qb "github.com/splcricket/auction-hall/internal/platform/querybuilder"
)

// bracketOrder sorts roster rows by the fixed age-group sequence, then by
// position within the bracket.
const bracketOrder = `CASE age_group WHEN 'Under 16' THEN 1 WHEN 'Under 19' THEN 2 ELSE 3 END`

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListByAuction(ctx context.Context, auctionID string) ([]roster.Entry, error) {
	query, args, err := qb.Select("*").From("auction_players").
		Where(
			qb.Eq("auction_id", auctionID),
			qb.Eq("is_removed", false),
		).
		OrderBy(bracketOrder, "position_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster entries query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster entries: %w", err)
	}

	return rosterEntriesFromRows(rows), nil
}

func (r *RosterRepository) ListBracket(ctx context.Context, auctionID string, ageGroup player.AgeGroup) ([]roster.Entry, error) {
	query, args, err := qb.Select("*").From("auction_players").
		Where(
			qb.Eq("auction_id", auctionID),
			qb.Eq("age_group", string(ageGroup)),
			qb.Eq("is_removed", false),
		).
		OrderBy("position_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bracket entries query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select bracket entries: %w", err)
	}

	return rosterEntriesFromRows(rows), nil
}

func (r *RosterRepository) GetByID(ctx context.Context, entryID string) (roster.Entry, bool, error) {
	query, args, err := qb.Select("*").From("auction_players").
		Where(qb.Eq("id", entryID)).
		ToSQL()
	if err != nil {
		return roster.Entry{}, false, fmt.Errorf("build get roster entry query: %w", err)
	}

	var row rosterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Entry{}, false, nil
		}
		return roster.Entry{}, false, fmt.Errorf("get roster entry: %w", err)
	}

	return rosterEntryFromRow(row), true, nil
}

func (r *RosterRepository) GetByAuctionAndPlayer(ctx context.Context, auctionID, playerID string) (roster.Entry, bool, error) {
	query, args, err := qb.Select("*").From("auction_players").
		Where(
			qb.Eq("auction_id", auctionID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return roster.Entry{}, false, fmt.Errorf("build get roster entry query: %w", err)
	}

	var row rosterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Entry{}, false, nil
		}
		return roster.Entry{}, false, fmt.Errorf("get roster entry: %w", err)
	}

	return rosterEntryFromRow(row), true, nil
}

// Upsert inserts the entry or, on the (auction_id, player_id) key, replaces
// the existing row: the entry takes the new bracket and position and every
// flag and sale field resets.
func (r *RosterRepository) Upsert(ctx context.Context, item roster.Entry) (roster.Entry, error) {
	insertModel := rosterInsertModel{
		ID:             item.ID,
		AuctionID:      item.AuctionID,
		PlayerID:       item.PlayerID,
		AgeGroup:       string(item.AgeGroup),
		PositionNumber: item.PositionNumber,
	}

	query, args, err := qb.InsertModel("auction_players", insertModel, `ON CONFLICT (auction_id, player_id)
DO UPDATE SET
    age_group = EXCLUDED.age_group,
    position_number = EXCLUDED.position_number,
    is_reserved = FALSE,
    is_current = FALSE,
    is_removed = FALSE,
    team_id = NULL,
    sold_points = NULL,
    updated_at = NOW()`)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("build upsert roster entry query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return roster.Entry{}, fmt.Errorf("upsert roster entry: %w", err)
	}

	return item, nil
}

func (r *RosterRepository) UpdatePosition(ctx context.Context, auctionID, playerID string, position int) error {
	query, args, err := qb.Update("auction_players").
		Set("position_number", position).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("auction_id", auctionID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update position query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update roster position: %w", err)
	}

	return nil
}

func (r *RosterRepository) SetReserved(ctx context.Context, auctionID, playerID string, reserved bool) error {
	return r.setEntryFlag(ctx, auctionID, playerID, "is_reserved", reserved)
}

func (r *RosterRepository) SetRemoved(ctx context.Context, auctionID, playerID string, removed bool) error {
	return r.setEntryFlag(ctx, auctionID, playerID, "is_removed", removed)
}

func (r *RosterRepository) ClearCurrent(ctx context.Context, auctionID string) error {
	query, args, err := qb.Update("auction_players").
		Set("is_current", false).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("auction_id", auctionID),
			qb.Eq("is_current", true),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear current query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear current roster entry: %w", err)
	}

	return nil
}

func (r *RosterRepository) MarkCurrent(ctx context.Context, auctionID, playerID string) error {
	return r.setEntryFlag(ctx, auctionID, playerID, "is_current", true)
}

func (r *RosterRepository) AssignTeam(ctx context.Context, entryID string, teamID *string) error {
	query, args, err := qb.Update("auction_players").
		Set("team_id", teamID).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", entryID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build assign team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("assign team on roster entry: %w", err)
	}

	return nil
}

func (r *RosterRepository) UnassignTeam(ctx context.Context, teamID string) error {
	query, args, err := qb.Update("auction_players").
		SetExpr("team_id", "NULL").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build unassign team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unassign team from roster entries: %w", err)
	}

	return nil
}

// SetSale writes team and points in a single statement so a sale is never
// half-recorded.
func (r *RosterRepository) SetSale(ctx context.Context, entryID, teamID string, soldPoints int) error {
	query, args, err := qb.Update("auction_players").
		Set("team_id", teamID).
		Set("sold_points", soldPoints).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", entryID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build record sale query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("record sale: %w", err)
	}

	return nil
}

// ClearSale blanks the points only; the team assignment survives the undo.
func (r *RosterRepository) ClearSale(ctx context.Context, entryID string) error {
	query, args, err := qb.Update("auction_players").
		SetExpr("sold_points", "NULL").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", entryID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear sale query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear sale: %w", err)
	}

	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, auctionID, playerID string) error {
	query, args, err := qb.DeleteFrom("auction_players").
		Where(
			qb.Eq("auction_id", auctionID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete roster entry query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete roster entry: %w", err)
	}

	return nil
}

func (r *RosterRepository) DeleteByAuction(ctx context.Context, auctionID string) error {
	query, args, err := qb.DeleteFrom("auction_players").
		Where(qb.Eq("auction_id", auctionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete roster entries query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete roster entries: %w", err)
	}

	return nil
}

func (r *RosterRepository) setEntryFlag(ctx context.Context, auctionID, playerID, column string, value bool) error {
	query, args, err := qb.Update("auction_players").
		Set(column, value).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("auction_id", auctionID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set %s query: %w", column, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set %s on roster entry: %w", column, err)
	}

	return nil
}

func rosterEntriesFromRows(rows []rosterTableModel) []roster.Entry {
	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, rosterEntryFromRow(row))
	}
	return out
}
