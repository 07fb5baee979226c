package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/splcricket/auction-hall/internal/domain/auction"
	qb "github.com/splcricket/auction-hall/internal/platform/querybuilder"
)

type AuctionRepository struct {
	db *sqlx.DB
}

func NewAuctionRepository(db *sqlx.DB) *AuctionRepository {
	return &AuctionRepository{db: db}
}

func (r *AuctionRepository) List(ctx context.Context) ([]auction.Auction, error) {
	query, args, err := qb.Select("*").From("auctions").
		OrderBy("created_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select auctions query: %w", err)
	}

	var rows []auctionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select auctions: %w", err)
	}

	out := make([]auction.Auction, 0, len(rows))
	for _, row := range rows {
		out = append(out, auctionFromRow(row))
	}

	return out, nil
}

func (r *AuctionRepository) GetByID(ctx context.Context, auctionID string) (auction.Auction, bool, error) {
	query, args, err := qb.Select("*").From("auctions").
		Where(qb.Eq("id", auctionID)).
		ToSQL()
	if err != nil {
		return auction.Auction{}, false, fmt.Errorf("build get auction by id query: %w", err)
	}

	var row auctionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return auction.Auction{}, false, nil
		}
		return auction.Auction{}, false, fmt.Errorf("get auction by id: %w", err)
	}

	return auctionFromRow(row), true, nil
}

func (r *AuctionRepository) GetActive(ctx context.Context) (auction.Auction, bool, error) {
	query, args, err := qb.Select("*").From("auctions").
		Where(qb.Eq("is_active", true)).
		Limit(1).
		ToSQL()
	if err != nil {
		return auction.Auction{}, false, fmt.Errorf("build get active auction query: %w", err)
	}

	var row auctionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return auction.Auction{}, false, nil
		}
		return auction.Auction{}, false, fmt.Errorf("get active auction: %w", err)
	}

	return auctionFromRow(row), true, nil
}

func (r *AuctionRepository) Insert(ctx context.Context, item auction.Auction) error {
	insertModel := auctionInsertModel{
		ID:                item.ID,
		Name:              item.Name,
		Season:            item.Season,
		WelcomeText:       item.WelcomeText,
		IsActive:          item.IsActive,
		IsLocked:          item.IsLocked,
		BasePointsPerTeam: item.BasePointsPerTeam,
	}

	query, args, err := qb.InsertModel("auctions", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert auction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert auction: %w", err)
	}

	return nil
}

// Update writes the editable fields only; the activation and lock flags have
// dedicated mutations.
func (r *AuctionRepository) Update(ctx context.Context, item auction.Auction) error {
	query, args, err := qb.Update("auctions").
		Set("name", item.Name).
		Set("season", item.Season).
		Set("welcome_text", item.WelcomeText).
		Set("base_points_per_team", item.BasePointsPerTeam).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update auction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update auction: %w", err)
	}

	return nil
}

func (r *AuctionRepository) DeactivateAll(ctx context.Context) error {
	query, args, err := qb.Update("auctions").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("is_active", true)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build deactivate auctions query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deactivate auctions: %w", err)
	}

	return nil
}

func (r *AuctionRepository) Activate(ctx context.Context, auctionID string) error {
	query, args, err := qb.Update("auctions").
		Set("is_active", true).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", auctionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build activate auction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("activate auction: %w", err)
	}

	return nil
}

func (r *AuctionRepository) SetLocked(ctx context.Context, auctionID string, locked bool) error {
	query, args, err := qb.Update("auctions").
		Set("is_locked", locked).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", auctionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set auction locked query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set auction locked: %w", err)
	}

	return nil
}

func (r *AuctionRepository) Delete(ctx context.Context, auctionID string) error {
	query, args, err := qb.DeleteFrom("auctions").
		Where(qb.Eq("id", auctionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete auction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete auction: %w", err)
	}

	return nil
}

func auctionFromRow(row auctionTableModel) auction.Auction {
	return auction.Auction{
		ID:                row.ID,
		Name:              row.Name,
		Season:            row.Season,
		WelcomeText:       row.WelcomeText,
		IsActive:          row.IsActive,
		IsLocked:          row.IsLocked,
		BasePointsPerTeam: row.BasePointsPerTeam,
	}
}
