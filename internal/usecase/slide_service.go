package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/splcricket/auction-hall/internal/domain/auction"
	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/roster"
	"github.com/splcricket/auction-hall/internal/domain/slides"
	"github.com/splcricket/auction-hall/internal/platform/logging"
)

type SlideService struct {
	auctionRepo auction.Repository
	playerRepo  player.Repository
	rosterRepo  roster.Repository
	logger      *logging.Logger
}

func NewSlideService(
	auctionRepo auction.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	logger *logging.Logger,
) *SlideService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SlideService{
		auctionRepo: auctionRepo,
		playerRepo:  playerRepo,
		rosterRepo:  rosterRepo,
		logger:      logger,
	}
}

// ActiveSlides builds the show sequence for the active auction. No active
// auction yields an empty sequence, not an error: the display loop renders
// an idle screen and keeps polling.
func (s *SlideService) ActiveSlides(ctx context.Context) ([]slides.Slide, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SlideService.ActiveSlides")
	defer span.End()

	a, exists, err := s.auctionRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active auction: %w", err)
	}
	if !exists {
		s.logger.WarnContext(ctx, "no active auction for slideshow")
		return []slides.Slide{}, nil
	}

	return s.buildForAuction(ctx, a)
}

// SlidesForAuction builds the show sequence for a specific auction.
func (s *SlideService) SlidesForAuction(ctx context.Context, auctionID string) ([]slides.Slide, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SlideService.SlidesForAuction")
	defer span.End()

	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return nil, fmt.Errorf("%w: auction id is required", ErrInvalidInput)
	}

	a, exists, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("get auction: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: auction=%s", ErrNotFound, auctionID)
	}

	return s.buildForAuction(ctx, a)
}

func (s *SlideService) buildForAuction(ctx context.Context, a auction.Auction) ([]slides.Slide, error) {
	entries, err := s.rosterRepo.ListByAuction(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	byID := make(map[string]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	return slides.Build(a, entries, byID), nil
}
