package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/splcricket/auction-hall/internal/infrastructure/upload"
	"github.com/splcricket/auction-hall/internal/platform/logging"
	"github.com/splcricket/auction-hall/internal/platform/resilience"
	"github.com/splcricket/auction-hall/internal/usecase"
)

// AssetUploader pushes presentation assets (player photos, team logos) to the
// object store.
type AssetUploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, content io.Reader) (upload.Result, error)
}

type Handler struct {
	auctionService *usecase.AuctionService
	playerService  *usecase.PlayerService
	teamService    *usecase.TeamService
	rosterService  *usecase.RosterService
	saleService    *usecase.SaleService
	slideService   *usecase.SlideService
	uploader       AssetUploader
	logger         *logging.Logger
	validator      *validator.Validate
	slideFlight    resilience.SingleFlight
}

func NewHandler(
	auctionService *usecase.AuctionService,
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	rosterService *usecase.RosterService,
	saleService *usecase.SaleService,
	slideService *usecase.SlideService,
	uploader AssetUploader,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		auctionService: auctionService,
		playerService:  playerService,
		teamService:    teamService,
		rosterService:  rosterService,
		saleService:    saleService,
		slideService:   slideService,
		uploader:       uploader,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
