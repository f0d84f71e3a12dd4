package espn

import (
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/courtside/internal/provider"
)

func canonicalID(id string) string {
	return Name + "-" + id
}

// normalizeEvent maps one scoreboard event to a canonical game. Returns
// ok=false when the event lacks a competition with two home/away-flagged
// competitors — a malformed event is dropped, not guessed at.
func (h *Handler) normalizeEvent(ev eventRaw) (provider.Game, bool) {
	if len(ev.Competitions) == 0 {
		return provider.Game{}, false
	}
	comp := ev.Competitions[0]

	var home, away *competitorRaw
	for i := range comp.Competitors {
		switch comp.Competitors[i].HomeAway {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return provider.Game{}, false
	}

	status := ev.Status
	if comp.Status != nil {
		status = *comp.Status
	}

	g := provider.Game{
		ID:        canonicalID(ev.ID),
		League:    h.league,
		HomeTeam:  h.normalizeTeam(home.Team),
		AwayTeam:  h.normalizeTeam(away.Team),
		HomeScore: parseScore(home.Score),
		AwayScore: parseScore(away.Score),
	}

	if t, err := time.Parse(time.RFC3339, ev.Date); err == nil {
		g.Date = t.UTC().Format("2006-01-02")
		g.StartTime = t.UTC().Format(time.RFC3339)
	} else if t, err := time.Parse("2006-01-02T15:04Z", ev.Date); err == nil {
		// Scoreboard events drop the seconds from their timestamps.
		g.Date = t.UTC().Format("2006-01-02")
		g.StartTime = t.UTC().Format(time.RFC3339)
	}

	if ev.Season != nil {
		g.Season = strconv.Itoa(ev.Season.Year)
		g.Postseason = ev.Season.Type == 3
	}

	// Explicit completion signal wins; otherwise a running period means live.
	switch {
	case status.Type.Completed || status.Type.State == "post":
		g.Status = provider.StatusFinal
	case status.Type.State == "in" || status.Period > 0:
		g.Status = provider.StatusLive
		g.Period = status.Period
		g.Clock = status.DisplayClock
	default:
		g.Status = provider.StatusScheduled
	}
	return g, true
}

func (h *Handler) normalizeTeam(raw teamRaw) provider.Team {
	abbr := strings.ToUpper(raw.Abbreviation)

	logo := raw.Logo
	if logo == "" && len(raw.Logos) > 0 {
		logo = raw.Logos[0].Href
	}
	if logo == "" {
		logo = provider.TeamLogoURL(abbr)
	}

	name := raw.DisplayName
	if name == "" {
		name = strings.TrimSpace(raw.Location + " " + raw.Name)
	}

	return provider.Team{
		ID:           canonicalID(raw.ID),
		Name:         name,
		Abbreviation: abbr,
		City:         raw.Location,
		LogoURL:      logo,
	}
}

// normalizeStatLine maps one athlete's stats row using the column index from
// the response's names array. ESPN reports shooting splits as "makes-attempts"
// strings; percentages are recomputed, never read from the feed.
func normalizeStatLine(athleteID, gameID string, stats []string, idx map[string]int) provider.PlayerGameStats {
	at := func(label string) string {
		i, ok := idx[label]
		if !ok || i >= len(stats) {
			return ""
		}
		return stats[i]
	}

	fgm, fga := parseSplit(at("FG"))
	fg3m, fg3a := parseSplit(at("3PT"))
	ftm, fta := parseSplit(at("FT"))

	fgm, fga, fgPct := provider.ShootingLine(fgm, fga)
	fg3m, fg3a, fg3Pct := provider.ShootingLine(fg3m, fg3a)
	ftm, fta, ftPct := provider.ShootingLine(ftm, fta)

	oreb := parseStatInt(at("OREB"))
	dreb := parseStatInt(at("DREB"))
	reb := parseStatInt(at("REB"))
	if reb < oreb+dreb {
		reb = oreb + dreb
	}

	return provider.PlayerGameStats{
		PlayerID: canonicalID(athleteID),
		GameID:   canonicalID(gameID),

		Minutes:          parseMinutes(at("MIN")),
		Points:           parseStatInt(at("PTS")),
		OffensiveRebound: oreb,
		DefensiveRebound: dreb,
		Rebounds:         reb,
		Assists:          parseStatInt(at("AST")),
		Steals:           parseStatInt(at("STL")),
		Blocks:           parseStatInt(at("BLK")),
		Turnovers:        parseStatInt(at("TO")),
		Fouls:            parseStatInt(at("PF")),

		FGM: fgm, FGA: fga, FGPct: fgPct,
		FG3M: fg3m, FG3A: fg3a, FG3Pct: fg3Pct,
		FTM: ftm, FTA: fta, FTPct: ftPct,
	}
}

// parseSplit parses a "5-10" makes-attempts pair.
func parseSplit(s string) (makes, attempts int) {
	m, a, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0
	}
	makes, _ = strconv.Atoi(m)
	attempts, _ = strconv.Atoi(a)
	return makes, attempts
}

// parseScore parses a competitor score. DNP and empty strings become zero.
func parseScore(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseStatInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseMinutes converts ESPN minutes ("34" or "34:12") to a float.
func parseMinutes(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if mins, secs, ok := strings.Cut(s, ":"); ok {
		m, _ := strconv.Atoi(mins)
		sec, _ := strconv.Atoi(secs)
		v := float64(m) + float64(sec)/60.0
		if v < 0 {
			return 0
		}
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
