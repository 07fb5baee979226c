package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/splcricket/auction-hall/internal/domain/roster"
	"github.com/splcricket/auction-hall/internal/usecase"
)

type addRosterPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	AgeGroup string `json:"ageGroup" validate:"required"`
}

type moveRosterPlayerRequest struct {
	AgeGroup  string `json:"ageGroup" validate:"required"`
	Position  int    `json:"position" validate:"required,gt=0"`
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type rosterFlagRequest struct {
	Value bool `json:"value"`
}

func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoster")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	items, err := h.rosterService.ListRoster(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list roster failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterItemsToDTO(items))
}

func (h *Handler) AddRosterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddRosterPlayer")
	defer span.End()

	auctionID := r.PathValue("auctionID")

	var req addRosterPlayerRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.rosterService.AddPlayer(ctx, auctionID, req.PlayerID, req.AgeGroup)
	if err != nil {
		h.logger.WarnContext(ctx, "add roster player failed", "auction_id", auctionID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, rosterEntryToDTO(entry))
}

func (h *Handler) MoveRosterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MoveRosterPlayer")
	defer span.End()

	auctionID := r.PathValue("auctionID")

	var req moveRosterPlayerRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	direction := roster.MoveUp
	if strings.EqualFold(req.Direction, "down") {
		direction = roster.MoveDown
	}

	if err := h.rosterService.MovePlayer(ctx, auctionID, req.AgeGroup, req.Position, direction); err != nil {
		h.logger.WarnContext(ctx, "move roster player failed", "auction_id", auctionID, "age_group", req.AgeGroup, "position", req.Position, "error", err)
		writeError(ctx, w, err)
		return
	}

	items, err := h.rosterService.ListRoster(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list roster after move failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterItemsToDTO(items))
}

func (h *Handler) ListSoldPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSoldPlayers")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	items, err := h.rosterService.ListSold(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list sold players failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterItemsToDTO(items))
}

func (h *Handler) ListUnsoldPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUnsoldPlayers")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	items, err := h.rosterService.ListUnsold(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list unsold players failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterItemsToDTO(items))
}

func (h *Handler) RemoveRosterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveRosterPlayer")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	playerID := r.PathValue("playerID")
	if err := h.rosterService.RemovePlayer(ctx, auctionID, playerID); err != nil {
		h.logger.WarnContext(ctx, "remove roster player failed", "auction_id", auctionID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *Handler) SetRosterReserved(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetRosterReserved")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	playerID := r.PathValue("playerID")

	var req rosterFlagRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	entry, err := h.rosterService.SetReserved(ctx, auctionID, playerID, req.Value)
	if err != nil {
		h.logger.WarnContext(ctx, "set roster reserved failed", "auction_id", auctionID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterEntryToDTO(entry))
}

func (h *Handler) SetRosterRemoved(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetRosterRemoved")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	playerID := r.PathValue("playerID")

	var req rosterFlagRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	entry, err := h.rosterService.SetRemoved(ctx, auctionID, playerID, req.Value)
	if err != nil {
		h.logger.WarnContext(ctx, "set roster removed failed", "auction_id", auctionID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterEntryToDTO(entry))
}

func (h *Handler) SetCurrentPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCurrentPlayer")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	playerID := r.PathValue("playerID")
	entry, err := h.rosterService.SetCurrent(ctx, auctionID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "set current player failed", "auction_id", auctionID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterEntryToDTO(entry))
}
