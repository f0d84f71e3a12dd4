package espn

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/albapepper/courtside/internal/provider"
)

// Handler fetches and normalizes one league's data from the ESPN site API.
// Handlers for different leagues share one Client, so the rate limiter covers
// the provider as a whole rather than per league.
type Handler struct {
	client *Client
	league string // canonical league id ("nba", "wnba", "ncaam")
	path   string // ESPN path segment ("nba", "mens-college-basketball")
	logger *slog.Logger
}

// NewHandler creates a handler for one league.
func NewHandler(client *Client, league, espnPath string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{client: client, league: league, path: "/" + espnPath, logger: logger}
}

// --------------------------------------------------------------------------
// Raw response shapes
// --------------------------------------------------------------------------

type scoreboardResponse struct {
	Events []eventRaw `json:"events"`
}

type eventRaw struct {
	ID           string           `json:"id"`
	Date         string           `json:"date"`
	Season       *seasonRaw       `json:"season"`
	Competitions []competitionRaw `json:"competitions"`
	Status       statusRaw        `json:"status"`
}

type seasonRaw struct {
	Year int `json:"year"`
	Type int `json:"type"` // 2 = regular season, 3 = postseason
}

type competitionRaw struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Competitors []competitorRaw `json:"competitors"`
	Status      *statusRaw      `json:"status"`
}

type competitorRaw struct {
	HomeAway string  `json:"homeAway"`
	Score    string  `json:"score"`
	Team     teamRaw `json:"team"`
}

type teamRaw struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Logo         string `json:"logo"`
	Logos        []struct {
		Href string `json:"href"`
	} `json:"logos"`
}

type statusRaw struct {
	Period       int     `json:"period"`
	DisplayClock string  `json:"displayClock"`
	Clock        float64 `json:"clock"`
	Type         struct {
		State     string `json:"state"` // pre, in, post
		Completed bool   `json:"completed"`
	} `json:"type"`
}

// --------------------------------------------------------------------------
// Scoreboard
// --------------------------------------------------------------------------

// GamesByDate fetches the scoreboard for a YYYY-MM-DD date.
func (h *Handler) GamesByDate(ctx context.Context, date string) ([]provider.Game, error) {
	params := url.Values{
		"dates": {compactDate(date)},
		"limit": {"100"},
	}

	var resp scoreboardResponse
	if err := h.client.get(ctx, h.path+"/scoreboard", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch %s scoreboard: %w", h.league, err)
	}

	games := make([]provider.Game, 0, len(resp.Events))
	for _, ev := range resp.Events {
		if g, ok := h.normalizeEvent(ev); ok {
			games = append(games, g)
		}
	}
	return games, nil
}

// compactDate turns YYYY-MM-DD into ESPN's 8-digit YYYYMMDD form. Input is
// validated upstream; anything else passes through stripped of dashes.
func compactDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

type teamsResponse struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team teamRaw `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

// Teams fetches the league's team list.
func (h *Handler) Teams(ctx context.Context) ([]provider.Team, error) {
	var resp teamsResponse
	if err := h.client.get(ctx, h.path+"/teams", url.Values{"limit": {"500"}}, &resp); err != nil {
		return nil, fmt.Errorf("fetch %s teams: %w", h.league, err)
	}

	var teams []provider.Team
	for _, sport := range resp.Sports {
		for _, lg := range sport.Leagues {
			for _, entry := range lg.Teams {
				teams = append(teams, h.normalizeTeam(entry.Team))
			}
		}
	}
	return teams, nil
}

// --------------------------------------------------------------------------
// Box score (game summary)
// --------------------------------------------------------------------------

type summaryResponse struct {
	Boxscore struct {
		Players []struct {
			Statistics []struct {
				Names    []string `json:"names"`
				Athletes []struct {
					Athlete struct {
						ID string `json:"id"`
					} `json:"athlete"`
					Stats []string `json:"stats"`
				} `json:"athletes"`
			} `json:"statistics"`
		} `json:"players"`
	} `json:"boxscore"`
}

// BoxScore fetches the player stat lines for one game. gameID is the bare
// ESPN event id, without the provider prefix.
func (h *Handler) BoxScore(ctx context.Context, gameID string) ([]provider.PlayerGameStats, error) {
	var resp summaryResponse
	if err := h.client.get(ctx, h.path+"/summary", url.Values{"event": {gameID}}, &resp); err != nil {
		return nil, fmt.Errorf("fetch %s game summary: %w", h.league, err)
	}

	var lines []provider.PlayerGameStats
	for _, side := range resp.Boxscore.Players {
		for _, block := range side.Statistics {
			idx := statIndex(block.Names)
			for _, a := range block.Athletes {
				if a.Athlete.ID == "" {
					continue
				}
				lines = append(lines, normalizeStatLine(a.Athlete.ID, gameID, a.Stats, idx))
			}
		}
	}
	return lines, nil
}

// statIndex maps ESPN stat column labels to their positions. The summary
// endpoint declares column order per response, so positions are never
// hard-coded.
func statIndex(names []string) map[string]int {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[strings.ToUpper(n)] = i
	}
	return idx
}
