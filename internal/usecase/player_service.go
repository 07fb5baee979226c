package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/splcricket/auction-hall/internal/domain/player"
	idgen "github.com/splcricket/auction-hall/internal/platform/id"
	"github.com/splcricket/auction-hall/internal/platform/logging"
)

// PlayerInput carries the editable fields of a player record.
type PlayerInput struct {
	FullName string
	Email    string
	Mobile   string
	Role     string
	AgeGroup string
	PhotoURL string
}

type PlayerService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, idGen idgen.Generator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

// SearchPlayers matches the query against full name, mobile, and email,
// case-insensitively. An empty query returns the full listing.
func (s *PlayerService) SearchPlayers(ctx context.Context, query string) ([]player.Player, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListPlayers(ctx)
	}

	items, err := s.playerRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	return s.getPlayer(ctx, playerID)
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	item, err := s.playerFromInput(input)
	if err != nil {
		return player.Player{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	item.ID = id

	if err := s.playerRepo.Insert(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", item.ID, "full_name", item.FullName)

	return item, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	existing, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	item, err := s.playerFromInput(input)
	if err != nil {
		return player.Player{}, err
	}
	item.ID = existing.ID

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", item.ID)

	return nil
}

func (s *PlayerService) playerFromInput(input PlayerInput) (player.Player, error) {
	role, err := player.ParseRole(input.Role)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ageGroup, err := player.ParseAgeGroup(input.AgeGroup)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item := player.Player{
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.TrimSpace(input.Email),
		Mobile:   strings.TrimSpace(input.Mobile),
		Role:     role,
		AgeGroup: ageGroup,
		PhotoURL: strings.TrimSpace(input.PhotoURL),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return item, nil
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID string) (player.Player, error) {
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
