package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/splcricket/auction-hall/internal/infrastructure/repository/memory"
	idgen "github.com/splcricket/auction-hall/internal/platform/id"
	"github.com/splcricket/auction-hall/internal/platform/logging"
	"github.com/splcricket/auction-hall/internal/usecase"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	auctionRepo := memory.NewAuctionRepository(memory.SeedAuctions())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	rosterRepo := memory.NewRosterRepository(memory.SeedRoster())
	idGen := idgen.NewRandomGenerator()

	handler := NewHandler(
		usecase.NewAuctionService(auctionRepo, teamRepo, rosterRepo, idGen, logger),
		usecase.NewPlayerService(playerRepo, idGen, logger),
		usecase.NewTeamService(auctionRepo, teamRepo, rosterRepo, idGen, logger),
		usecase.NewRosterService(auctionRepo, playerRepo, rosterRepo, idGen, logger),
		usecase.NewSaleService(auctionRepo, teamRepo, rosterRepo, logger),
		usecase.NewSlideService(auctionRepo, playerRepo, rosterRepo, logger),
		nil,
		logger,
	)

	return NewRouter(handler, logger, []string{"*"})
}

type testEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       json.RawMessage  `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (int, testEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope testEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec.Code, envelope
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	code, envelope := doRequest(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "2.0", envelope.APIVersion)
}

func TestRouter_GetActiveAuction(t *testing.T) {
	router := newTestRouter(t)

	code, envelope := doRequest(t, router, http.MethodGet, "/v1/auctions/active", "")
	require.Equal(t, http.StatusOK, code)

	var data auctionDTO
	require.NoError(t, sonic.Unmarshal(envelope.Data, &data))
	require.Equal(t, memory.AuctionIDSummer2026, data.ID)
	require.True(t, data.IsActive)
}

func TestRouter_CreateAuctionRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	code, envelope := doRequest(t, router, http.MethodPost, "/v1/auctions",
		`{"name":"Test Cup","season":"2027","surprise":true}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, envelope.Error)
	require.Equal(t, "INVALID_ARGUMENT", envelope.Error.Status)
}

func TestRouter_ActiveSlidesSequence(t *testing.T) {
	router := newTestRouter(t)

	code, envelope := doRequest(t, router, http.MethodGet, "/v1/slides", "")
	require.Equal(t, http.StatusOK, code)

	var sequence []slideDTO
	require.NoError(t, sonic.Unmarshal(envelope.Data, &sequence))
	// 1 welcome + 3 bracket headers + 7 eligible players (one seeded entry is
	// reserved and never appears).
	require.Len(t, sequence, 11)
	require.Equal(t, "label", sequence[0].Kind)
	require.Equal(t, "Welcome to the SPL Summer Auction", sequence[0].Label)
	require.Equal(t, "UNDER 16", sequence[1].Label)
}

func TestRouter_SellThenBalances(t *testing.T) {
	router := newTestRouter(t)

	code, envelope := doRequest(t, router, http.MethodPost, "/v1/roster/ap-open-01/sell",
		`{"teamId":"team-strikers","soldPoints":1200}`)
	require.Equal(t, http.StatusOK, code)

	var entry rosterEntryDTO
	require.NoError(t, sonic.Unmarshal(envelope.Data, &entry))
	require.True(t, entry.Sold)
	require.NotNil(t, entry.TeamID)
	require.Equal(t, "team-strikers", *entry.TeamID)

	code, envelope = doRequest(t, router, http.MethodGet, "/v1/auctions/"+memory.AuctionIDSummer2026+"/balances", "")
	require.Equal(t, http.StatusOK, code)

	var balances []teamBalanceDTO
	require.NoError(t, sonic.Unmarshal(envelope.Data, &balances))
	require.Len(t, balances, 4)

	var strikers *teamBalanceDTO
	for i := range balances {
		if balances[i].Team.ID == "team-strikers" {
			strikers = &balances[i]
		}
	}
	require.NotNil(t, strikers)
	require.Equal(t, 1200, strikers.SpentPoints)
	require.Equal(t, 8800, strikers.RemainingPoints)
	require.Equal(t, 1, strikers.PlayersBought)
}

func TestRouter_SellReservedPlayerRejected(t *testing.T) {
	router := newTestRouter(t)

	code, envelope := doRequest(t, router, http.MethodPost, "/v1/roster/ap-u19-02/sell",
		`{"teamId":"team-strikers","soldPoints":500}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, envelope.Error)
	require.Equal(t, "invalidSale", envelope.Error.Errors[0].Reason)
}

func TestRouter_UnknownAuctionIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	code, envelope := doRequest(t, router, http.MethodGet, "/v1/auctions/no-such-auction", "")
	require.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, envelope.Error)
	require.Equal(t, "NOT_FOUND", envelope.Error.Status)
}

func TestRouter_UploadWithoutStoreIsUnavailable(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/uploads/player-photo", strings.NewReader(""))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
