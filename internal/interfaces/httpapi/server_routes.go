package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
	mux.HandleFunc("GET /v1/clubs/{clubID}", handler.GetClub)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/rounds", handler.ListRounds)
	mux.HandleFunc("GET /v1/rounds/{roundID}", handler.GetRound)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/recent", handler.ListRecentMatches)
	mux.HandleFunc("GET /v1/matches/upcoming", handler.ListUpcomingMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/events", handler.ListMatchEvents)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/standings/live", handler.ListLiveStandings)
	mux.HandleFunc("GET /v1/topscorers", handler.ListTopScorers)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("POST /v1/clubs", admin(handler.CreateClub))
	mux.Handle("POST /v1/players", admin(handler.CreatePlayer))
	mux.Handle("PUT /v1/players/{playerID}", admin(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players/{playerID}", admin(handler.DeletePlayer))
	mux.Handle("POST /v1/players/{playerID}/photo", admin(handler.UploadPlayerPhoto))
	mux.Handle("POST /v1/rounds", admin(handler.CreateRound))
	mux.Handle("POST /v1/rounds/seed", admin(handler.SeedRounds))
	mux.Handle("POST /v1/matches", admin(handler.CreateMatch))
	mux.Handle("PUT /v1/matches/{matchID}", admin(handler.UpdateMatch))
	mux.Handle("DELETE /v1/matches/{matchID}", admin(handler.DeleteMatch))
	mux.Handle("POST /v1/matches/{matchID}/events", admin(handler.SubmitMatchEvents))
	mux.Handle("PUT /v1/goals/{goalID}", admin(handler.UpdateGoal))
	mux.Handle("DELETE /v1/goals/{goalID}", admin(handler.DeleteGoal))
	mux.Handle("PUT /v1/cards/{cardID}", admin(handler.UpdateCard))
	mux.Handle("DELETE /v1/cards/{cardID}", admin(handler.DeleteCard))
	mux.Handle("POST /v1/internal/stats/refresh", admin(handler.RefreshStats))
}
