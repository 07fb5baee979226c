package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/splcricket/auction-hall/internal/usecase"
)

type teamWriteRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Franchise string `json:"franchise" validate:"omitempty,max=200"`
	Color     string `json:"color" validate:"omitempty,max=50"`
	LogoURL   string `json:"logoUrl" validate:"omitempty,max=500"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	teams, err := h.teamService.ListTeamsByAuction(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	auctionID := r.PathValue("auctionID")

	var req teamWriteRequest
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

	item, err := h.teamService.CreateTeam(ctx, auctionID, usecase.TeamInput{
		Name:      req.Name,
		Franchise: req.Franchise,
		Color:     req.Color,
		LogoURL:   req.LogoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := r.PathValue("teamID")

	var req teamWriteRequest
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

	item, err := h.teamService.UpdateTeam(ctx, teamID, usecase.TeamInput{
		Name:      req.Name,
		Franchise: req.Franchise,
		Color:     req.Color,
		LogoURL:   req.LogoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.teamService.DeleteTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ListTeamBalances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamBalances")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	balances, err := h.saleService.TeamBalances(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team balances failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamBalanceDTO, 0, len(balances))
	for _, b := range balances {
		items = append(items, teamBalanceToDTO(b))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
