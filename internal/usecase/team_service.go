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

// TeamInput carries the editable fields of a team.
type TeamInput struct {
	Name      string
	Franchise string
	Color     string
	LogoURL   string
}

type TeamService struct {
	auctionRepo auction.Repository
	teamRepo    team.Repository
	rosterRepo  roster.Repository
	idGen       idgen.Generator
	logger      *logging.Logger
}

func NewTeamService(
	auctionRepo auction.Repository,
	teamRepo team.Repository,
	rosterRepo roster.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		auctionRepo: auctionRepo,
		teamRepo:    teamRepo,
		rosterRepo:  rosterRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

func (s *TeamService) ListTeamsByAuction(ctx context.Context, auctionID string) ([]team.Team, error) {
	if err := s.validateAuction(ctx, auctionID); err != nil {
		return nil, err
	}

	items, err := s.teamRepo.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list teams by auction: %w", err)
	}

	return items, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, auctionID string, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	if err := s.validateAuction(ctx, auctionID); err != nil {
		return team.Team{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:        id,
		AuctionID: strings.TrimSpace(auctionID),
		Name:      strings.TrimSpace(input.Name),
		Franchise: strings.TrimSpace(input.Franchise),
		Color:     strings.TrimSpace(input.Color),
		LogoURL:   strings.TrimSpace(input.LogoURL),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Insert(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", item.ID, "auction_id", item.AuctionID, "team_name", item.Name)

	return item, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, teamID string, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Franchise = strings.TrimSpace(input.Franchise)
	item.Color = strings.TrimSpace(input.Color)
	item.LogoURL = strings.TrimSpace(input.LogoURL)
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return item, nil
}

// DeleteTeam unassigns the team from every roster entry, then deletes the
// team row. Order matters: a failed delete after the unassign leaves players
// unassigned but the team intact, which the admin can retry; the reverse
// order could strand entries pointing at a dead team.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}

	if err := s.rosterRepo.UnassignTeam(ctx, item.ID); err != nil {
		return fmt.Errorf("unassign players from team: %w", err)
	}
	if err := s.teamRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", item.ID, "auction_id", item.AuctionID)

	return nil
}

// AssignPlayerToTeam sets the pre-sale team pick on a roster entry. A nil
// teamID clears the assignment.
func (s *TeamService) AssignPlayerToTeam(ctx context.Context, entryID string, teamID *string) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AssignPlayerToTeam")
	defer span.End()

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

	if teamID != nil {
		t, err := s.getTeam(ctx, *teamID)
		if err != nil {
			return roster.Entry{}, err
		}
		if t.AuctionID != entry.AuctionID {
			return roster.Entry{}, fmt.Errorf("%w: team %s belongs to a different auction", ErrInvalidInput, t.ID)
		}
	}

	if err := s.rosterRepo.AssignTeam(ctx, entry.ID, teamID); err != nil {
		return roster.Entry{}, fmt.Errorf("assign team on roster entry: %w", err)
	}

	entry.TeamID = teamID
	return entry, nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
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

func (s *TeamService) validateAuction(ctx context.Context, auctionID string) error {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return fmt.Errorf("%w: auction id is required", ErrInvalidInput)
	}

	_, exists, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("get auction: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: auction=%s", ErrNotFound, auctionID)
	}

	return nil
}
