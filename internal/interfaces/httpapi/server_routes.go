package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuctionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/auctions", handler.ListAuctions)
	mux.HandleFunc("POST /v1/auctions", handler.CreateAuction)
	mux.HandleFunc("GET /v1/auctions/active", handler.GetActiveAuction)
	mux.HandleFunc("GET /v1/auctions/{auctionID}", handler.GetAuction)
	mux.HandleFunc("PUT /v1/auctions/{auctionID}", handler.UpdateAuction)
	mux.HandleFunc("DELETE /v1/auctions/{auctionID}", handler.DeleteAuction)
	mux.HandleFunc("POST /v1/auctions/{auctionID}/activate", handler.ActivateAuction)
	mux.HandleFunc("PUT /v1/auctions/{auctionID}/lock", handler.SetAuctionLock)

	mux.HandleFunc("GET /v1/auctions/{auctionID}/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/auctions/{auctionID}/teams", handler.CreateTeam)
	mux.HandleFunc("PUT /v1/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)

	mux.HandleFunc("GET /v1/auctions/{auctionID}/balances", handler.ListTeamBalances)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("POST /v1/uploads/{kind}", handler.UploadAsset)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/auctions/{auctionID}/roster", handler.ListRoster)
	mux.HandleFunc("POST /v1/auctions/{auctionID}/roster", handler.AddRosterPlayer)
	mux.HandleFunc("POST /v1/auctions/{auctionID}/roster/move", handler.MoveRosterPlayer)
	mux.HandleFunc("GET /v1/auctions/{auctionID}/roster/sold", handler.ListSoldPlayers)
	mux.HandleFunc("GET /v1/auctions/{auctionID}/roster/unsold", handler.ListUnsoldPlayers)
	mux.HandleFunc("DELETE /v1/auctions/{auctionID}/roster/{playerID}", handler.RemoveRosterPlayer)
	mux.HandleFunc("PUT /v1/auctions/{auctionID}/roster/{playerID}/reserved", handler.SetRosterReserved)
	mux.HandleFunc("PUT /v1/auctions/{auctionID}/roster/{playerID}/removed", handler.SetRosterRemoved)
	mux.HandleFunc("POST /v1/auctions/{auctionID}/roster/{playerID}/current", handler.SetCurrentPlayer)

	mux.HandleFunc("PUT /v1/roster/{entryID}/team", handler.AssignRosterTeam)
	mux.HandleFunc("POST /v1/roster/{entryID}/sell", handler.SellPlayer)
	mux.HandleFunc("POST /v1/roster/{entryID}/unsell", handler.UnsellPlayer)
}

func registerDisplayRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/slides", handler.ListActiveSlides)
	mux.HandleFunc("GET /v1/auctions/{auctionID}/slides", handler.ListAuctionSlides)
}
