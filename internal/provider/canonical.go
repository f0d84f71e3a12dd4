// Package provider defines the canonical data types that all upstream
// providers normalize into. These structs are the contract between provider
// clients and the orchestrator — providers output these, the orchestrator
// caches and serves them.
//
// Adding a new provider means implementing normalizers that return these
// types. The orchestrator and the API surface never change.
package provider

// GameStatus is the canonical game lifecycle state. Transitions only move
// forward: scheduled -> live -> final.
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusFinal     GameStatus = "final"
)

// Team is the canonical team shape.
//
// ID is an opaque provider-prefixed identifier ("bdl-14", "espn-5") — ids are
// never comparable across providers. Cross-provider identity is reconciled by
// Abbreviation, which is uppercase, 2-4 characters, and stable for the same
// real-world team regardless of source.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city,omitempty"`
	Conference   string `json:"conference,omitempty"`
	Division     string `json:"division,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
}

// Game is the canonical game shape. Period and Clock are populated only while
// Status is live.
type Game struct {
	ID         string     `json:"id"`
	League     string     `json:"league"`
	HomeTeam   Team       `json:"home_team"`
	AwayTeam   Team       `json:"away_team"`
	HomeScore  int        `json:"home_score"`
	AwayScore  int        `json:"away_score"`
	Status     GameStatus `json:"status"`
	Period     int        `json:"period,omitempty"`
	Clock      string     `json:"clock,omitempty"`
	Date       string     `json:"date"` // YYYY-MM-DD
	StartTime  string     `json:"start_time,omitempty"`
	Postseason bool       `json:"postseason,omitempty"`
	Season     string     `json:"season,omitempty"`
}

// Player is the canonical player shape. Team is nil for free agents.
// Optional descriptive fields stay empty when the provider omits them;
// HeadshotURL is derived from the provider id when absent upstream.
type Player struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	DisplayName  string `json:"display_name"`
	Position     string `json:"position,omitempty"`
	JerseyNumber string `json:"jersey_number,omitempty"`
	Height       string `json:"height,omitempty"`
	Weight       string `json:"weight,omitempty"`
	College      string `json:"college,omitempty"`
	Country      string `json:"country,omitempty"`
	Team         *Team  `json:"team,omitempty"`
	HeadshotURL  string `json:"headshot_url,omitempty"`
}

// PlayerGameStats is one player's box-score line for one game.
//
// Shooting invariant: makes never exceed attempts, and each percentage equals
// makes/attempts when attempts > 0, else 0. Normalizers recompute percentages
// rather than trusting provider-supplied ones.
type PlayerGameStats struct {
	PlayerID string `json:"player_id"`
	GameID   string `json:"game_id"`

	Minutes          float64 `json:"minutes"`
	Points           int     `json:"points"`
	OffensiveRebound int     `json:"offensive_rebounds"`
	DefensiveRebound int     `json:"defensive_rebounds"`
	Rebounds         int     `json:"rebounds"`
	Assists          int     `json:"assists"`
	Steals           int     `json:"steals"`
	Blocks           int     `json:"blocks"`
	Turnovers        int     `json:"turnovers"`
	Fouls            int     `json:"fouls"`

	FGM    int     `json:"fgm"`
	FGA    int     `json:"fga"`
	FGPct  float64 `json:"fg_pct"`
	FG3M   int     `json:"fg3m"`
	FG3A   int     `json:"fg3a"`
	FG3Pct float64 `json:"fg3_pct"`
	FTM    int     `json:"ftm"`
	FTA    int     `json:"fta"`
	FTPct  float64 `json:"ft_pct"`
}

// SeasonAverages is a player's per-game averages for one season.
type SeasonAverages struct {
	PlayerID    string  `json:"player_id"`
	Season      int     `json:"season"`
	GamesPlayed int     `json:"games_played"`
	Minutes     float64 `json:"minutes"`
	Points      float64 `json:"points"`
	Rebounds    float64 `json:"rebounds"`
	Assists     float64 `json:"assists"`
	Steals      float64 `json:"steals"`
	Blocks      float64 `json:"blocks"`
	Turnovers   float64 `json:"turnovers"`
	FGPct       float64 `json:"fg_pct"`
	FG3Pct      float64 `json:"fg3_pct"`
	FTPct       float64 `json:"ft_pct"`
}

// ShootingLine bounds a makes/attempts pair and derives its percentage.
// Returns makes clamped to attempts and the recomputed percentage.
func ShootingLine(makes, attempts int) (int, int, float64) {
	if makes < 0 {
		makes = 0
	}
	if attempts < 0 {
		attempts = 0
	}
	if makes > attempts {
		makes = attempts
	}
	if attempts == 0 {
		return makes, attempts, 0
	}
	return makes, attempts, float64(makes) / float64(attempts)
}
