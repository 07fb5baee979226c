package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/splcricket/auction-hall/internal/domain/auction"
	"github.com/splcricket/auction-hall/internal/domain/roster"
	"github.com/splcricket/auction-hall/internal/domain/team"
	idgen "github.com/splcricket/auction-hall/internal/platform/id"
	"github.com/splcricket/auction-hall/internal/platform/logging"
)

// CreateAuctionInput is the incoming payload for creating an auction.
type CreateAuctionInput struct {
	Name              string
	Season            string
	WelcomeText       string
	BasePointsPerTeam int
}

// UpdateAuctionInput carries editable auction fields.
type UpdateAuctionInput struct {
	Name              string
	Season            string
	WelcomeText       string
	BasePointsPerTeam int
}

type AuctionService struct {
	auctionRepo auction.Repository
	teamRepo    team.Repository
	rosterRepo  roster.Repository
	idGen       idgen.Generator
	logger      *logging.Logger
}

func NewAuctionService(
	auctionRepo auction.Repository,
	teamRepo team.Repository,
	rosterRepo roster.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *AuctionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuctionService{
		auctionRepo: auctionRepo,
		teamRepo:    teamRepo,
		rosterRepo:  rosterRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

func (s *AuctionService) ListAuctions(ctx context.Context) ([]auction.Auction, error) {
	items, err := s.auctionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}

	return items, nil
}

func (s *AuctionService) GetAuction(ctx context.Context, auctionID string) (auction.Auction, error) {
	return s.getAuction(ctx, auctionID)
}

// GetActiveAuction returns the active auction and false when no auction is
// active. A missing active auction is a normal state, not an error.
func (s *AuctionService) GetActiveAuction(ctx context.Context) (auction.Auction, bool, error) {
	item, exists, err := s.auctionRepo.GetActive(ctx)
	if err != nil {
		return auction.Auction{}, false, fmt.Errorf("get active auction: %w", err)
	}

	return item, exists, nil
}

func (s *AuctionService) CreateAuction(ctx context.Context, input CreateAuctionInput) (auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.CreateAuction")
	defer span.End()

	id, err := s.idGen.NewID()
	if err != nil {
		return auction.Auction{}, fmt.Errorf("generate auction id: %w", err)
	}

	basePoints := input.BasePointsPerTeam
	if basePoints == 0 {
		basePoints = auction.DefaultBasePoints
	}

	item := auction.Auction{
		ID:                id,
		Name:              strings.TrimSpace(input.Name),
		Season:            strings.TrimSpace(input.Season),
		WelcomeText:       strings.TrimSpace(input.WelcomeText),
		IsActive:          false,
		IsLocked:          false,
		BasePointsPerTeam: basePoints,
	}
	if err := item.Validate(); err != nil {
		return auction.Auction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.auctionRepo.Insert(ctx, item); err != nil {
		return auction.Auction{}, fmt.Errorf("insert auction: %w", err)
	}

	s.logger.InfoContext(ctx, "auction created", "auction_id", item.ID, "auction_name", item.Name)

	return item, nil
}

func (s *AuctionService) UpdateAuction(ctx context.Context, auctionID string, input UpdateAuctionInput) (auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.UpdateAuction")
	defer span.End()

	item, err := s.getAuction(ctx, auctionID)
	if err != nil {
		return auction.Auction{}, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Season = strings.TrimSpace(input.Season)
	item.WelcomeText = strings.TrimSpace(input.WelcomeText)
	if input.BasePointsPerTeam != 0 {
		item.BasePointsPerTeam = input.BasePointsPerTeam
	}
	if err := item.Validate(); err != nil {
		return auction.Auction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.auctionRepo.Update(ctx, item); err != nil {
		return auction.Auction{}, fmt.Errorf("update auction: %w", err)
	}

	return item, nil
}

// SetActiveAuction deactivates every auction and then activates the target.
// Two sequential writes: a failure between them leaves zero active auctions,
// which readers treat as "no active auction" rather than an error state.
func (s *AuctionService) SetActiveAuction(ctx context.Context, auctionID string) (auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.SetActiveAuction")
	defer span.End()

	item, err := s.getAuction(ctx, auctionID)
	if err != nil {
		return auction.Auction{}, err
	}

	if err := s.auctionRepo.DeactivateAll(ctx); err != nil {
		return auction.Auction{}, fmt.Errorf("deactivate auctions: %w", err)
	}
	if err := s.auctionRepo.Activate(ctx, item.ID); err != nil {
		return auction.Auction{}, fmt.Errorf("activate auction: %w", err)
	}

	s.logger.InfoContext(ctx, "auction activated", "auction_id", item.ID, "auction_name", item.Name)

	item.IsActive = true
	return item, nil
}

func (s *AuctionService) SetAuctionLocked(ctx context.Context, auctionID string, locked bool) (auction.Auction, error) {
	item, err := s.getAuction(ctx, auctionID)
	if err != nil {
		return auction.Auction{}, err
	}

	if err := s.auctionRepo.SetLocked(ctx, item.ID, locked); err != nil {
		return auction.Auction{}, fmt.Errorf("set auction locked: %w", err)
	}

	item.IsLocked = locked
	return item, nil
}

// DeleteAuction removes the auction together with its roster entries and
// teams. Dependents go first so the auction foreign keys stay satisfied; a
// failure mid-sequence leaves the auction row in place with part of its
// dependents gone, and a retry finishes the job.
func (s *AuctionService) DeleteAuction(ctx context.Context, auctionID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.DeleteAuction")
	defer span.End()

	item, err := s.getAuction(ctx, auctionID)
	if err != nil {
		return err
	}

	if err := s.rosterRepo.DeleteByAuction(ctx, item.ID); err != nil {
		return fmt.Errorf("delete auction roster: %w", err)
	}
	if err := s.teamRepo.DeleteByAuction(ctx, item.ID); err != nil {
		return fmt.Errorf("delete auction teams: %w", err)
	}
	if err := s.auctionRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete auction: %w", err)
	}

	s.logger.InfoContext(ctx, "auction deleted", "auction_id", item.ID)

	return nil
}

func (s *AuctionService) getAuction(ctx context.Context, auctionID string) (auction.Auction, error) {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return auction.Auction{}, fmt.Errorf("%w: auction id is required", ErrInvalidInput)
	}

	item, exists, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return auction.Auction{}, fmt.Errorf("get auction by id: %w", err)
	}
	if !exists {
		return auction.Auction{}, fmt.Errorf("%w: auction=%s", ErrNotFound, auctionID)
	}

	return item, nil
}
