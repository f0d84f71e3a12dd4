package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/courtside/internal/api/respond"
	"github.com/albapepper/courtside/internal/cache"
	"github.com/albapepper/courtside/internal/config"
)

// GetGames serves games for a league on a date.
// @Summary Games by date
// @Description Returns all games for a league on a YYYY-MM-DD date. Unknown leagues return an empty list.
// @Tags games
// @Produce json
// @Param league query string true "League id (nba, wnba, ncaam)"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} provider.Game
// @Failure 400 {object} respond.ErrorResponse
// @Router /games [get]
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	date := r.URL.Query().Get("date")

	games, err := h.orc.GamesByDate(r.Context(), league, date)
	if err != nil {
		writeOrchestratorError(w, err)
		return
	}
	h.writeEntity(w, r, games, cache.TTLGamesToday)
}

// GetLiveGames serves in-progress games across all leagues.
// @Summary Live games
// @Description Returns in-progress games across every supported league.
// @Tags games
// @Produce json
// @Success 200 {array} provider.Game
// @Router /games/live [get]
func (h *Handler) GetLiveGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.orc.LiveGames(r.Context())
	if err != nil {
		writeOrchestratorError(w, err)
		return
	}
	h.writeEntity(w, r, games, cache.TTLGamesToday)
}

// GetBoxScore serves player stat lines for one game.
// @Summary Game box score
// @Description Returns every player stat line for a game.
// @Tags games
// @Produce json
// @Param league query string true "League id"
// @Param gameID path string true "Canonical game id (provider-prefixed)"
// @Success 200 {array} provider.PlayerGameStats
// @Failure 400 {object} respond.ErrorResponse
// @Router /games/{gameID}/boxscore [get]
func (h *Handler) GetBoxScore(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	gameID := chi.URLParam(r, "gameID")

	lines, err := h.orc.BoxScore(r.Context(), league, gameID)
	if err != nil {
		writeOrchestratorError(w, err)
		return
	}
	h.writeEntity(w, r, lines, cache.TTLBoxScore)
}

// GetTeams serves all teams for a league.
// @Summary Teams
// @Description Returns all teams for a league.
// @Tags teams
// @Produce json
// @Param league query string true "League id"
// @Success 200 {array} provider.Team
// @Router /teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")

	teams, err := h.orc.Teams(r.Context(), league)
	if err != nil {
		writeOrchestratorError(w, err)
		return
	}
	h.writeEntity(w, r, teams, cache.TTLTeams)
}

// GetTeamGames serves one team's games for a season.
// @Summary Games by team
// @Description Returns a team's games for one season.
// @Tags teams
// @Produce json
// @Param league query string true "League id"
// @Param season query int false "Season year (defaults to current)"
// @Param teamID path string true "Canonical team id (provider-prefixed)"
// @Success 200 {array} provider.Game
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams/{teamID}/games [get]
func (h *Handler) GetTeamGames(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	teamID := chi.URLParam(r, "teamID")
	season := h.seasonParam(r, league)

	games, err := h.orc.GamesByTeam(r.Context(), league, teamID, season)
	if err != nil {
		writeOrchestratorError(w, err)
		return
	}
	h.writeEntity(w, r, games, cache.TTLSeasonAverages)
}

// SearchPlayers serves a free-text player search.
// @Summary Player search
// @Description Returns players matching a free-text query.
// @Tags players
// @Produce json
// @Param league query string true "League id"
// @Param search query string true "Free-text search"
// @Success 200 {array} provider.Player
// @Failure 400 {object} respond.ErrorResponse
// @Router /players [get]
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	query := r.URL.Query().Get("search")

	players, err := h.orc.SearchPlayers(r.Context(), league, query)
	if err != nil {
		writeOrchestratorError(w, err)
		return
	}
	h.writeEntity(w, r, players, cache.TTLPlayers)
}

// GetPlayer serves one player profile.
// @Summary Player profile
// @Description Returns one player profile, or 404 when unknown.
// @Tags players
// @Produce json
// @Param league query string true "League id"
// @Param playerID path string true "Canonical player id (provider-prefixed)"
// @Success 200 {object} provider.Player
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	playerID := chi.URLParam(r, "playerID")

	player, err := h.orc.Player(r.Context(), league, playerID)
	if err != nil {
		writeOrchestratorError(w, err)
		return
	}
	if player == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Player not found")
		return
	}
	h.writeEntity(w, r, player, cache.TTLPlayers)
}

// GetPlayerSeasonAverages serves a player's per-game season averages.
// @Summary Player season averages
// @Description Returns a player's per-game averages for one season, or 404 when the player has no recorded games.
// @Tags players
// @Produce json
// @Param league query string true "League id"
// @Param season query int false "Season year (defaults to current)"
// @Param playerID path string true "Canonical player id (provider-prefixed)"
// @Success 200 {object} provider.SeasonAverages
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID}/averages [get]
func (h *Handler) GetPlayerSeasonAverages(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	playerID := chi.URLParam(r, "playerID")
	season := h.seasonParam(r, league)

	avg, err := h.orc.PlayerSeasonAverages(r.Context(), league, playerID, season)
	if err != nil {
		writeOrchestratorError(w, err)
		return
	}
	if avg == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "No averages for player/season")
		return
	}
	h.writeEntity(w, r, avg, cache.TTLSeasonAverages)
}

// seasonParam reads ?season=, defaulting to the league's current season.
func (h *Handler) seasonParam(r *http.Request, league string) int {
	if s := r.URL.Query().Get("season"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	if lc, ok := config.LeagueRegistry[league]; ok {
		return lc.CurrentSeason
	}
	return 0
}
