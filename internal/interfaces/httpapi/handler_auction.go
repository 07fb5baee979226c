package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/splcricket/auction-hall/internal/usecase"
)

type auctionWriteRequest struct {
	Name              string `json:"name" validate:"required,max=200"`
	Season            string `json:"season" validate:"required,max=100"`
	WelcomeText       string `json:"welcomeText" validate:"omitempty,max=500"`
	BasePointsPerTeam int    `json:"basePointsPerTeam" validate:"omitempty,gt=0"`
}

type auctionLockRequest struct {
	Locked bool `json:"locked"`
}

func (h *Handler) ListAuctions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAuctions")
	defer span.End()

	auctions, err := h.auctionService.ListAuctions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list auctions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]auctionDTO, 0, len(auctions))
	for _, a := range auctions {
		items = append(items, auctionToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAuction")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	item, err := h.auctionService.GetAuction(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get auction failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(item))
}

func (h *Handler) GetActiveAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveAuction")
	defer span.End()

	item, ok, err := h.auctionService.GetActiveAuction(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get active auction failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no auction is active", usecase.ErrNotFound))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(item))
}

func (h *Handler) CreateAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAuction")
	defer span.End()

	var req auctionWriteRequest
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

	item, err := h.auctionService.CreateAuction(ctx, usecase.CreateAuctionInput{
		Name:              req.Name,
		Season:            req.Season,
		WelcomeText:       req.WelcomeText,
		BasePointsPerTeam: req.BasePointsPerTeam,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create auction failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, auctionToDTO(item))
}

func (h *Handler) UpdateAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAuction")
	defer span.End()

	auctionID := r.PathValue("auctionID")

	var req auctionWriteRequest
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

	item, err := h.auctionService.UpdateAuction(ctx, auctionID, usecase.UpdateAuctionInput{
		Name:              req.Name,
		Season:            req.Season,
		WelcomeText:       req.WelcomeText,
		BasePointsPerTeam: req.BasePointsPerTeam,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update auction failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(item))
}

func (h *Handler) ActivateAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ActivateAuction")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	item, err := h.auctionService.SetActiveAuction(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "activate auction failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(item))
}

func (h *Handler) SetAuctionLock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetAuctionLock")
	defer span.End()

	auctionID := r.PathValue("auctionID")

	var req auctionLockRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	item, err := h.auctionService.SetAuctionLocked(ctx, auctionID, req.Locked)
	if err != nil {
		h.logger.WarnContext(ctx, "set auction lock failed", "auction_id", auctionID, "locked", req.Locked, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(item))
}

func (h *Handler) DeleteAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAuction")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	if err := h.auctionService.DeleteAuction(ctx, auctionID); err != nil {
		h.logger.WarnContext(ctx, "delete auction failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
