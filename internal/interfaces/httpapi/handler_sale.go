package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/splcricket/auction-hall/internal/usecase"
)

type sellPlayerRequest struct {
	TeamID     string `json:"teamId" validate:"required"`
	SoldPoints int    `json:"soldPoints" validate:"required,gt=0"`
}

type assignTeamRequest struct {
	TeamID *string `json:"teamId"`
}

func (h *Handler) AssignRosterTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignRosterTeam")
	defer span.End()

	entryID := r.PathValue("entryID")

	var req assignTeamRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	entry, err := h.teamService.AssignPlayerToTeam(ctx, entryID, req.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "assign roster team failed", "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterEntryToDTO(entry))
}

func (h *Handler) SellPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SellPlayer")
	defer span.End()

	entryID := r.PathValue("entryID")

	var req sellPlayerRequest
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

	entry, err := h.saleService.Sell(ctx, entryID, req.TeamID, req.SoldPoints)
	if err != nil {
		h.logger.WarnContext(ctx, "sell player failed", "entry_id", entryID, "team_id", req.TeamID, "sold_points", req.SoldPoints, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterEntryToDTO(entry))
}

func (h *Handler) UnsellPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnsellPlayer")
	defer span.End()

	entryID := r.PathValue("entryID")
	entry, err := h.saleService.Unsell(ctx, entryID)
	if err != nil {
		h.logger.WarnContext(ctx, "unsell player failed", "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterEntryToDTO(entry))
}
