package bdl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/albapepper/courtside/internal/provider"
)

// perPage is the page size requested from every paginated endpoint.
const perPage = "100"

// NBAHandler fetches and normalizes NBA data from BallDontLie. It is the
// league-specific layer over the shared Client: endpoint paths and raw
// response shapes live here, transport concerns live in Client.
type NBAHandler struct {
	client *Client
	logger *slog.Logger
}

// NewNBAHandler creates an NBA handler over an existing client.
func NewNBAHandler(client *Client, logger *slog.Logger) *NBAHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NBAHandler{client: client, logger: logger}
}

// Configured reports whether the underlying client has a credential.
func (h *NBAHandler) Configured() bool {
	return h.client.Configured()
}

// --------------------------------------------------------------------------
// Raw response shapes
// --------------------------------------------------------------------------

type teamRaw struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}

type gameRaw struct {
	ID               int     `json:"id"`
	Date             string  `json:"date"`
	Season           int     `json:"season"`
	Status           string  `json:"status"`
	Period           int     `json:"period"`
	Time             string  `json:"time"`
	Postseason       bool    `json:"postseason"`
	HomeTeamScore    int     `json:"home_team_score"`
	VisitorTeamScore int     `json:"visitor_team_score"`
	HomeTeam         teamRaw `json:"home_team"`
	VisitorTeam      teamRaw `json:"visitor_team"`
}

type playerRaw struct {
	ID           int      `json:"id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Position     string   `json:"position"`
	Height       string   `json:"height"`
	Weight       string   `json:"weight"`
	JerseyNumber string   `json:"jersey_number"`
	College      string   `json:"college"`
	Country      string   `json:"country"`
	Team         *teamRaw `json:"team"`
}

type statLineRaw struct {
	Min      string `json:"min"`
	FGM      int    `json:"fgm"`
	FGA      int    `json:"fga"`
	FG3M     int    `json:"fg3m"`
	FG3A     int    `json:"fg3a"`
	FTM      int    `json:"ftm"`
	FTA      int    `json:"fta"`
	OReb     int    `json:"oreb"`
	DReb     int    `json:"dreb"`
	Reb      int    `json:"reb"`
	Ast      int    `json:"ast"`
	Stl      int    `json:"stl"`
	Blk      int    `json:"blk"`
	Turnover int    `json:"turnover"`
	PF       int    `json:"pf"`
	Pts      int    `json:"pts"`
	Player   struct {
		ID int `json:"id"`
	} `json:"player"`
	Game struct {
		ID int `json:"id"`
	} `json:"game"`
}

type seasonAverageRaw struct {
	PlayerID    int     `json:"player_id"`
	Season      int     `json:"season"`
	GamesPlayed int     `json:"games_played"`
	Min         string  `json:"min"`
	Pts         float64 `json:"pts"`
	Reb         float64 `json:"reb"`
	Ast         float64 `json:"ast"`
	Stl         float64 `json:"stl"`
	Blk         float64 `json:"blk"`
	Turnover    float64 `json:"turnover"`
	FGPct       float64 `json:"fg_pct"`
	FG3Pct      float64 `json:"fg3_pct"`
	FTPct       float64 `json:"ft_pct"`
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

// Teams fetches all NBA teams in canonical form. BDL also returns historical
// franchises past id 30; those lack a conference and are filtered out.
func (h *NBAHandler) Teams(ctx context.Context) ([]provider.Team, error) {
	resp, err := h.client.get(ctx, "/teams", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch NBA teams: %w", err)
	}

	var raw []teamRaw
	if err := json.Unmarshal(resp.Data, &raw); err != nil {
		return nil, fmt.Errorf("decode NBA teams: %w", err)
	}

	teams := make([]provider.Team, 0, len(raw))
	for _, t := range raw {
		if t.Conference == "" {
			continue
		}
		teams = append(teams, normalizeTeam(t))
	}
	return teams, nil
}

// --------------------------------------------------------------------------
// Games
// --------------------------------------------------------------------------

// GamesByDate fetches all games on a YYYY-MM-DD date, following cursors until
// the result set is exhausted.
func (h *NBAHandler) GamesByDate(ctx context.Context, date string) ([]provider.Game, error) {
	params := url.Values{
		"dates[]":  {date},
		"per_page": {perPage},
	}
	return h.collectGames(ctx, params)
}

// GamesByTeam fetches a team's games for one season. teamID is the bare BDL
// team id, without the provider prefix.
func (h *NBAHandler) GamesByTeam(ctx context.Context, teamID string, season int) ([]provider.Game, error) {
	if _, err := strconv.Atoi(teamID); err != nil {
		return nil, fmt.Errorf("invalid BDL team id %q", teamID)
	}
	params := url.Values{
		"team_ids[]": {teamID},
		"seasons[]":  {strconv.Itoa(season)},
		"per_page":   {perPage},
	}
	return h.collectGames(ctx, params)
}

func (h *NBAHandler) collectGames(ctx context.Context, params url.Values) ([]provider.Game, error) {
	var all []provider.Game

	for {
		resp, err := h.client.get(ctx, "/games", params)
		if err != nil {
			return nil, fmt.Errorf("fetch NBA games: %w", err)
		}

		var raw []gameRaw
		if err := json.Unmarshal(resp.Data, &raw); err != nil {
			return nil, fmt.Errorf("decode NBA games: %w", err)
		}

		for _, g := range raw {
			all = append(all, normalizeGame(g))
		}

		if resp.Meta.NextCursor == nil {
			break
		}
		params.Set("cursor", strconv.Itoa(*resp.Meta.NextCursor))
	}
	return all, nil
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

// SearchPlayers fetches the first page of players matching a free-text query.
func (h *NBAHandler) SearchPlayers(ctx context.Context, query string) ([]provider.Player, error) {
	params := url.Values{
		"search":   {query},
		"per_page": {perPage},
	}

	resp, err := h.client.get(ctx, "/players", params)
	if err != nil {
		return nil, fmt.Errorf("search NBA players: %w", err)
	}

	var raw []playerRaw
	if err := json.Unmarshal(resp.Data, &raw); err != nil {
		return nil, fmt.Errorf("decode NBA players: %w", err)
	}

	players := make([]provider.Player, len(raw))
	for i, p := range raw {
		players[i] = normalizePlayer(p)
	}
	return players, nil
}

// PlayerByID fetches one player profile. id is the bare BDL player id.
func (h *NBAHandler) PlayerByID(ctx context.Context, id string) (*provider.Player, error) {
	if _, err := strconv.Atoi(id); err != nil {
		return nil, fmt.Errorf("invalid BDL player id %q", id)
	}

	resp, err := h.client.get(ctx, "/players/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch NBA player %s: %w", id, err)
	}

	var raw playerRaw
	if err := json.Unmarshal(resp.Data, &raw); err != nil {
		return nil, fmt.Errorf("decode NBA player %s: %w", id, err)
	}

	p := normalizePlayer(raw)
	return &p, nil
}

// --------------------------------------------------------------------------
// Stats
// --------------------------------------------------------------------------

// SeasonAverages fetches a player's per-game averages for one season.
// Returns nil (no error) when the player has no recorded games.
func (h *NBAHandler) SeasonAverages(ctx context.Context, season int, playerID string) (*provider.SeasonAverages, error) {
	if _, err := strconv.Atoi(playerID); err != nil {
		return nil, fmt.Errorf("invalid BDL player id %q", playerID)
	}
	params := url.Values{
		"season":       {strconv.Itoa(season)},
		"player_ids[]": {playerID},
	}

	resp, err := h.client.get(ctx, "/season_averages", params)
	if err != nil {
		return nil, fmt.Errorf("fetch NBA season averages: %w", err)
	}

	var raw []seasonAverageRaw
	if err := json.Unmarshal(resp.Data, &raw); err != nil {
		return nil, fmt.Errorf("decode NBA season averages: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	avg := normalizeSeasonAverages(raw[0])
	return &avg, nil
}

// BoxScore fetches every player stat line for one game, following cursors.
// gameID is the bare BDL game id.
func (h *NBAHandler) BoxScore(ctx context.Context, gameID string) ([]provider.PlayerGameStats, error) {
	if _, err := strconv.Atoi(gameID); err != nil {
		return nil, fmt.Errorf("invalid BDL game id %q", gameID)
	}
	params := url.Values{
		"game_ids[]": {gameID},
		"per_page":   {perPage},
	}

	var all []provider.PlayerGameStats

	for {
		resp, err := h.client.get(ctx, "/stats", params)
		if err != nil {
			return nil, fmt.Errorf("fetch NBA box score: %w", err)
		}

		var raw []statLineRaw
		if err := json.Unmarshal(resp.Data, &raw); err != nil {
			return nil, fmt.Errorf("decode NBA box score: %w", err)
		}

		for _, line := range raw {
			all = append(all, normalizeStatLine(line))
		}

		if resp.Meta.NextCursor == nil {
			break
		}
		params.Set("cursor", strconv.Itoa(*resp.Meta.NextCursor))
	}
	return all, nil
}
