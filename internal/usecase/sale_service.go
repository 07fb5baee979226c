package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/splcricket/auction-hall/internal/domain/auction"
	"github.com/splcricket/auction-hall/internal/domain/roster"
	"github.com/splcricket/auction-hall/internal/domain/team"
	"github.com/splcricket/auction-hall/internal/platform/logging"
)

// SaleService records and reverses player sales and serves the team points
// ledger. The ledger is a pure read-side aggregation recomputed from live
// rows on every call; no running balance is persisted.
type SaleService struct {
	auctionRepo auction.Repository
	teamRepo    team.Repository
	rosterRepo  roster.Repository
	logger      *logging.Logger
}

func NewSaleService(
	auctionRepo auction.Repository,
	teamRepo team.Repository,
	rosterRepo roster.Repository,
	logger *logging.Logger,
) *SaleService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SaleService{
		auctionRepo: auctionRepo,
		teamRepo:    teamRepo,
		rosterRepo:  rosterRepo,
		logger:      logger,
	}
}

// TeamBalances recomputes every team's budget position for the auction.
// Only live roster rows count: a soft-removed sale stops charging the team
// until the entry is restored.
func (s *SaleService) TeamBalances(ctx context.Context, auctionID string) ([]roster.TeamBalance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SaleService.TeamBalances")
	defer span.End()

	a, err := s.getAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByAuction(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by auction: %w", err)
	}
	entries, err := s.rosterRepo.ListByAuction(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}

	return roster.ComputeBalances(a.BasePointsPerTeam, teams, entries), nil
}

// Sell validates and records a sale: positive points, not reserved, within
// the team's recomputed remaining budget, then one write setting team and
// points together.
//
// The budget check reads live data without any lock or token; two sales
// racing on the same team can both pass against a stale remaining value and
// jointly overspend. Accepted limitation of the non-transactional design.
func (s *SaleService) Sell(ctx context.Context, entryID, teamID string, soldPoints int) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SaleService.Sell")
	defer span.End()

	entry, err := s.getEntry(ctx, entryID)
	if err != nil {
		return roster.Entry{}, err
	}
	t, err := s.getTeam(ctx, teamID)
	if err != nil {
		return roster.Entry{}, err
	}
	if t.AuctionID != entry.AuctionID {
		return roster.Entry{}, fmt.Errorf("%w: team %s belongs to a different auction", ErrInvalidInput, t.ID)
	}

	balances, err := s.TeamBalances(ctx, entry.AuctionID)
	if err != nil {
		return roster.Entry{}, err
	}
	remaining := 0
	for _, b := range balances {
		if b.Team.ID == t.ID {
			remaining = b.RemainingPoints
			break
		}
	}

	if err := roster.ValidateSale(entry, soldPoints, remaining); err != nil {
		return roster.Entry{}, err
	}

	if err := s.rosterRepo.SetSale(ctx, entry.ID, t.ID, soldPoints); err != nil {
		return roster.Entry{}, fmt.Errorf("record sale: %w", err)
	}

	s.logger.InfoContext(ctx, "player sold",
		"auction_id", entry.AuctionID,
		"entry_id", entry.ID,
		"team_id", t.ID,
		"sold_points", soldPoints,
	)

	entry.TeamID = &t.ID
	entry.SoldPoints = &soldPoints
	return entry, nil
}

// Unsell clears the recorded points but keeps the team assignment, so the
// admin can re-sell without re-picking a team. The asymmetry with Sell is
// deliberate.
func (s *SaleService) Unsell(ctx context.Context, entryID string) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SaleService.Unsell")
	defer span.End()

	entry, err := s.getEntry(ctx, entryID)
	if err != nil {
		return roster.Entry{}, err
	}

	if err := s.rosterRepo.ClearSale(ctx, entry.ID); err != nil {
		return roster.Entry{}, fmt.Errorf("clear sale: %w", err)
	}

	s.logger.InfoContext(ctx, "sale reversed", "auction_id", entry.AuctionID, "entry_id", entry.ID)

	entry.SoldPoints = nil
	return entry, nil
}

func (s *SaleService) getEntry(ctx context.Context, entryID string) (roster.Entry, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return roster.Entry{}, fmt.Errorf("%w: roster entry id is required", ErrInvalidInput)
	}

	entry, exists, err := s.rosterRepo.GetByID(ctx, entryID)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("get roster entry: %w", err)
	}
	if !exists {
		return roster.Entry{}, fmt.Errorf("%w: roster entry=%s", ErrNotFound, entryID)
	}

	return entry, nil
}

func (s *SaleService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *SaleService) getAuction(ctx context.Context, auctionID string) (auction.Auction, error) {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return auction.Auction{}, fmt.Errorf("%w: auction id is required", ErrInvalidInput)
	}

	item, exists, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return auction.Auction{}, fmt.Errorf("get auction: %w", err)
	}
	if !exists {
		return auction.Auction{}, fmt.Errorf("%w: auction=%s", ErrNotFound, auctionID)
	}

	return item, nil
}
