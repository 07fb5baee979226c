package httpapi

import (
	"net/http"

	"github.com/splcricket/auction-hall/internal/domain/slides"
)

// ListActiveSlides builds the presentation sequence for the active auction.
// Concurrent requests for the same auction share a single build.
func (h *Handler) ListActiveSlides(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActiveSlides")
	defer span.End()

	result, err, shared := h.slideFlight.Do("slides:active", func() (any, error) {
		return h.slideService.ActiveSlides(ctx)
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list active slides failed", "shared", shared, "error", err)
		writeError(ctx, w, err)
		return
	}

	sequence, _ := result.([]slides.Slide)
	writeSuccess(ctx, w, http.StatusOK, slidesToDTO(sequence))
}

func (h *Handler) ListAuctionSlides(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAuctionSlides")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	result, err, shared := h.slideFlight.Do("slides:"+auctionID, func() (any, error) {
		return h.slideService.SlidesForAuction(ctx, auctionID)
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list auction slides failed", "auction_id", auctionID, "shared", shared, "error", err)
		writeError(ctx, w, err)
		return
	}

	sequence, _ := result.([]slides.Slide)
	writeSuccess(ctx, w, http.StatusOK, slidesToDTO(sequence))
}
