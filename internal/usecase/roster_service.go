package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/splcricket/auction-hall/internal/domain/auction"
	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/roster"
	idgen "github.com/splcricket/auction-hall/internal/platform/id"
	"github.com/splcricket/auction-hall/internal/platform/logging"
)

// RosterItem is a roster entry joined with its player record for listings.
type RosterItem struct {
	Entry  roster.Entry
	Player player.Player
}

type RosterService struct {
	auctionRepo auction.Repository
	playerRepo  player.Repository
	rosterRepo  roster.Repository
	idGen       idgen.Generator
	logger      *logging.Logger
}

func NewRosterService(
	auctionRepo auction.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		auctionRepo: auctionRepo,
		playerRepo:  playerRepo,
		rosterRepo:  rosterRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

// ListRoster returns non-removed entries of the auction, position ordered,
// with player data joined in.
func (s *RosterService) ListRoster(ctx context.Context, auctionID string) ([]RosterItem, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListRoster")
	defer span.End()

	if err := s.validateAuction(ctx, auctionID); err != nil {
		return nil, err
	}

	entries, err := s.rosterRepo.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}

	return s.joinPlayers(ctx, entries)
}

// AddPlayer places a player on the auction roster at the next free position
// of the bracket. Re-adding an existing (auction, player) pair replaces the
// row: flags reset and the entry takes a fresh position at the end of the
// bracket, matching the upsert semantics of the store.
func (s *RosterService) AddPlayer(ctx context.Context, auctionID, playerID, ageGroup string) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.AddPlayer")
	defer span.End()

	if err := s.validateAuction(ctx, auctionID); err != nil {
		return roster.Entry{}, err
	}
	if _, err := s.getPlayer(ctx, playerID); err != nil {
		return roster.Entry{}, err
	}
	group, err := player.ParseAgeGroup(ageGroup)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bracket, err := s.rosterRepo.ListBracket(ctx, auctionID, group)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("list bracket entries: %w", err)
	}
	position := roster.NextPosition(bracket, group)

	entry := roster.Entry{
		AuctionID:      strings.TrimSpace(auctionID),
		PlayerID:       strings.TrimSpace(playerID),
		AgeGroup:       group,
		PositionNumber: position,
	}

	existing, exists, err := s.rosterRepo.GetByAuctionAndPlayer(ctx, entry.AuctionID, entry.PlayerID)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("get roster entry: %w", err)
	}
	if exists {
		entry.ID = existing.ID
	} else {
		id, err := s.idGen.NewID()
		if err != nil {
			return roster.Entry{}, fmt.Errorf("generate roster entry id: %w", err)
		}
		entry.ID = id
	}

	saved, err := s.rosterRepo.Upsert(ctx, entry)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("upsert roster entry: %w", err)
	}

	s.logger.InfoContext(ctx, "player added to auction",
		"auction_id", entry.AuctionID,
		"player_id", entry.PlayerID,
		"age_group", string(group),
		"position", position,
	)

	return saved, nil
}

// RemovePlayer hard-deletes the roster entry. Surviving positions are not
// renumbered; the gap stays until the bracket is reordered.
func (s *RosterService) RemovePlayer(ctx context.Context, auctionID, playerID string) error {
	entry, err := s.getEntry(ctx, auctionID, playerID)
	if err != nil {
		return err
	}

	if err := s.rosterRepo.Delete(ctx, entry.AuctionID, entry.PlayerID); err != nil {
		return fmt.Errorf("delete roster entry: %w", err)
	}

	return nil
}

// SetRemoved toggles the soft-remove flag. Soft-removed entries drop out of
// listings, sequencing, and the slideshow but keep their row.
func (s *RosterService) SetRemoved(ctx context.Context, auctionID, playerID string, removed bool) (roster.Entry, error) {
	entry, err := s.getEntry(ctx, auctionID, playerID)
	if err != nil {
		return roster.Entry{}, err
	}

	if err := s.rosterRepo.SetRemoved(ctx, entry.AuctionID, entry.PlayerID, removed); err != nil {
		return roster.Entry{}, fmt.Errorf("set roster entry removed: %w", err)
	}

	entry.IsRemoved = removed
	return entry, nil
}

func (s *RosterService) SetReserved(ctx context.Context, auctionID, playerID string, reserved bool) (roster.Entry, error) {
	entry, err := s.getEntry(ctx, auctionID, playerID)
	if err != nil {
		return roster.Entry{}, err
	}

	if err := s.rosterRepo.SetReserved(ctx, entry.AuctionID, entry.PlayerID, reserved); err != nil {
		return roster.Entry{}, fmt.Errorf("set roster entry reserved: %w", err)
	}

	entry.IsReserved = reserved
	return entry, nil
}

// MovePlayer swaps the entry at the given position with its neighbour via the
// three-step sentinel sequence. Edge moves are silent no-ops. A failure
// between steps leaves the sentinel position in storage; the caller's
// recovery is to reload the bracket, not to retry blindly.
func (s *RosterService) MovePlayer(ctx context.Context, auctionID, ageGroup string, position int, direction roster.MoveDirection) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.MovePlayer")
	defer span.End()

	if err := s.validateAuction(ctx, auctionID); err != nil {
		return err
	}
	group, err := player.ParseAgeGroup(ageGroup)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bracket, err := s.rosterRepo.ListBracket(ctx, auctionID, group)
	if err != nil {
		return fmt.Errorf("list bracket entries: %w", err)
	}

	steps, ok := roster.PlanSwap(bracket, group, position, direction)
	if !ok {
		return nil
	}

	for i, step := range steps {
		if err := s.rosterRepo.UpdatePosition(ctx, auctionID, step.PlayerID, step.Position); err != nil {
			s.logger.ErrorContext(ctx, "position swap failed mid-sequence",
				"auction_id", auctionID,
				"age_group", ageGroup,
				"step", i+1,
				"error", err,
			)
			return fmt.Errorf("swap step %d: %w", i+1, err)
		}
	}

	return nil
}

// SetCurrent clears the current flag across the auction and then marks the
// target. A crash between the writes leaves no current player, which is the
// safe degenerate state.
func (s *RosterService) SetCurrent(ctx context.Context, auctionID, playerID string) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SetCurrent")
	defer span.End()

	entry, err := s.getEntry(ctx, auctionID, playerID)
	if err != nil {
		return roster.Entry{}, err
	}

	if err := s.rosterRepo.ClearCurrent(ctx, entry.AuctionID); err != nil {
		return roster.Entry{}, fmt.Errorf("clear current player: %w", err)
	}
	if err := s.rosterRepo.MarkCurrent(ctx, entry.AuctionID, entry.PlayerID); err != nil {
		return roster.Entry{}, fmt.Errorf("mark current player: %w", err)
	}

	entry.IsCurrent = true
	return entry, nil
}

// ListSold returns entries that carry a team assignment, ordered by team, for
// the sold-players board.
func (s *RosterService) ListSold(ctx context.Context, auctionID string) ([]RosterItem, error) {
	if err := s.validateAuction(ctx, auctionID); err != nil {
		return nil, err
	}

	entries, err := s.rosterRepo.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}

	sold := make([]roster.Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsReserved || e.TeamID == nil {
			continue
		}
		sold = append(sold, e)
	}
	// Group by team so the board shows each squad together; within a team
	// the bracket order from the repository is kept.
	sort.SliceStable(sold, func(i, j int) bool {
		return *sold[i].TeamID < *sold[j].TeamID
	})

	return s.joinPlayers(ctx, sold)
}

// ListUnsold returns non-reserved entries without a team, in bracket order.
func (s *RosterService) ListUnsold(ctx context.Context, auctionID string) ([]RosterItem, error) {
	if err := s.validateAuction(ctx, auctionID); err != nil {
		return nil, err
	}

	entries, err := s.rosterRepo.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}

	unsold := make([]roster.Entry, 0, len(entries))
	for _, group := range player.AgeGroupOrder {
		for _, e := range entries {
			if e.IsReserved || e.TeamID != nil || e.AgeGroup != group {
				continue
			}
			unsold = append(unsold, e)
		}
	}

	return s.joinPlayers(ctx, unsold)
}

func (s *RosterService) joinPlayers(ctx context.Context, entries []roster.Entry) ([]RosterItem, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	byID := make(map[string]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	out := make([]RosterItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, RosterItem{Entry: e, Player: byID[e.PlayerID]})
	}

	return out, nil
}

func (s *RosterService) getEntry(ctx context.Context, auctionID, playerID string) (roster.Entry, error) {
	auctionID = strings.TrimSpace(auctionID)
	playerID = strings.TrimSpace(playerID)
	if auctionID == "" {
		return roster.Entry{}, fmt.Errorf("%w: auction id is required", ErrInvalidInput)
	}
	if playerID == "" {
		return roster.Entry{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	entry, exists, err := s.rosterRepo.GetByAuctionAndPlayer(ctx, auctionID, playerID)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("get roster entry: %w", err)
	}
	if !exists {
		return roster.Entry{}, fmt.Errorf("%w: auction=%s player=%s", ErrNotFound, auctionID, playerID)
	}

	return entry, nil
}

func (s *RosterService) getPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *RosterService) validateAuction(ctx context.Context, auctionID string) error {
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
