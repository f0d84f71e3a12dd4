package bdl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/courtside/internal/provider"
)

func canonicalID(id int) string {
	return fmt.Sprintf("%s-%d", Name, id)
}

func normalizeTeam(raw teamRaw) provider.Team {
	abbr := strings.ToUpper(raw.Abbreviation)
	return provider.Team{
		ID:           canonicalID(raw.ID),
		Name:         raw.FullName,
		Abbreviation: abbr,
		City:         raw.City,
		Conference:   raw.Conference,
		Division:     raw.Division,
		LogoURL:      provider.TeamLogoURL(abbr),
	}
}

// normalizeGame maps a raw BDL game to canonical form.
//
// BDL overloads the status field: "Final" for completed games, a quarter
// label ("1st Qtr", "Halftime") while in progress, and the tip-off time as an
// RFC3339 timestamp before the game starts. Status derivation precedence: an
// explicit final signal wins; otherwise a non-zero period or score means
// live; otherwise scheduled.
func normalizeGame(raw gameRaw) provider.Game {
	g := provider.Game{
		ID:         canonicalID(raw.ID),
		League:     "nba",
		HomeTeam:   normalizeTeam(raw.HomeTeam),
		AwayTeam:   normalizeTeam(raw.VisitorTeam),
		HomeScore:  max(raw.HomeTeamScore, 0),
		AwayScore:  max(raw.VisitorTeamScore, 0),
		Date:       normalizeDate(raw.Date),
		Postseason: raw.Postseason,
	}
	if raw.Season > 0 {
		g.Season = strconv.Itoa(raw.Season)
	}

	status := strings.TrimSpace(raw.Status)
	switch {
	case strings.EqualFold(status, "Final"):
		g.Status = provider.StatusFinal
	case raw.Period > 0 || g.HomeScore > 0 || g.AwayScore > 0:
		g.Status = provider.StatusLive
		g.Period = raw.Period
		g.Clock = strings.TrimSpace(raw.Time)
	default:
		g.Status = provider.StatusScheduled
		if t, err := time.Parse(time.RFC3339, status); err == nil {
			g.StartTime = t.UTC().Format(time.RFC3339)
		}
	}
	return g
}

// normalizeDate reduces BDL's date field to YYYY-MM-DD. Older API revisions
// returned a full timestamp, current ones a bare date; handle both.
func normalizeDate(date string) string {
	if len(date) >= 10 {
		return date[:10]
	}
	return date
}

func normalizePlayer(raw playerRaw) provider.Player {
	display := strings.TrimSpace(raw.FirstName + " " + raw.LastName)
	if display == "" {
		display = fmt.Sprintf("Player %d", raw.ID)
	}

	p := provider.Player{
		ID:           canonicalID(raw.ID),
		FirstName:    raw.FirstName,
		LastName:     raw.LastName,
		DisplayName:  display,
		Position:     raw.Position,
		JerseyNumber: raw.JerseyNumber,
		Height:       raw.Height,
		Weight:       raw.Weight,
		College:      raw.College,
		Country:      raw.Country,
		HeadshotURL:  provider.PlayerHeadshotURL(raw.ID),
	}
	if raw.Team != nil && raw.Team.ID != 0 {
		t := normalizeTeam(*raw.Team)
		p.Team = &t
	}
	return p
}

func normalizeStatLine(raw statLineRaw) provider.PlayerGameStats {
	fgm, fga, fgPct := provider.ShootingLine(raw.FGM, raw.FGA)
	fg3m, fg3a, fg3Pct := provider.ShootingLine(raw.FG3M, raw.FG3A)
	ftm, fta, ftPct := provider.ShootingLine(raw.FTM, raw.FTA)

	oreb := max(raw.OReb, 0)
	dreb := max(raw.DReb, 0)
	reb := max(raw.Reb, 0)
	if reb < oreb+dreb {
		reb = oreb + dreb
	}

	return provider.PlayerGameStats{
		PlayerID: canonicalID(raw.Player.ID),
		GameID:   canonicalID(raw.Game.ID),

		Minutes:          parseMinutes(raw.Min),
		Points:           max(raw.Pts, 0),
		OffensiveRebound: oreb,
		DefensiveRebound: dreb,
		Rebounds:         reb,
		Assists:          max(raw.Ast, 0),
		Steals:           max(raw.Stl, 0),
		Blocks:           max(raw.Blk, 0),
		Turnovers:        max(raw.Turnover, 0),
		Fouls:            max(raw.PF, 0),

		FGM: fgm, FGA: fga, FGPct: fgPct,
		FG3M: fg3m, FG3A: fg3a, FG3Pct: fg3Pct,
		FTM: ftm, FTA: fta, FTPct: ftPct,
	}
}

func normalizeSeasonAverages(raw seasonAverageRaw) provider.SeasonAverages {
	return provider.SeasonAverages{
		PlayerID:    canonicalID(raw.PlayerID),
		Season:      raw.Season,
		GamesPlayed: max(raw.GamesPlayed, 0),
		Minutes:     parseMinutes(raw.Min),
		Points:      maxf(raw.Pts, 0),
		Rebounds:    maxf(raw.Reb, 0),
		Assists:     maxf(raw.Ast, 0),
		Steals:      maxf(raw.Stl, 0),
		Blocks:      maxf(raw.Blk, 0),
		Turnovers:   maxf(raw.Turnover, 0),
		FGPct:       clampPct(raw.FGPct),
		FG3Pct:      clampPct(raw.FG3Pct),
		FTPct:       clampPct(raw.FTPct),
	}
}

// parseMinutes converts BDL minutes ("34" or "34:12") to a float.
func parseMinutes(min string) float64 {
	min = strings.TrimSpace(min)
	if min == "" {
		return 0
	}
	if mins, secs, ok := strings.Cut(min, ":"); ok {
		m, _ := strconv.Atoi(mins)
		s, _ := strconv.Atoi(secs)
		v := float64(m) + float64(s)/60.0
		return maxf(v, 0)
	}
	f, _ := strconv.ParseFloat(min, 64)
	return maxf(f, 0)
}

func maxf(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
