package bdl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/albapepper/courtside/internal/provider"
)

func TestNormalizeGameStatusDerivation(t *testing.T) {
	base := gameRaw{
		ID:          7,
		Date:        "2024-01-15",
		HomeTeam:    teamRaw{ID: 2, Abbreviation: "BOS"},
		VisitorTeam: teamRaw{ID: 14, Abbreviation: "LAL"},
	}

	t.Run("explicit final wins regardless of period and score", func(t *testing.T) {
		raw := base
		raw.Status = "Final"
		raw.Period = 4
		raw.HomeTeamScore = 102

		g := normalizeGame(raw)
		assert.Equal(t, provider.StatusFinal, g.Status)
		assert.Zero(t, g.Period, "period is only populated while live")
	})

	t.Run("running period without completion signal means live", func(t *testing.T) {
		raw := base
		raw.Status = "2nd Qtr"
		raw.Period = 2
		raw.Time = "5:42"
		raw.HomeTeamScore = 48
		raw.VisitorTeamScore = 51

		g := normalizeGame(raw)
		assert.Equal(t, provider.StatusLive, g.Status)
		assert.Equal(t, 2, g.Period)
		assert.Equal(t, "5:42", g.Clock)
	})

	t.Run("no period and no scores means scheduled", func(t *testing.T) {
		raw := base
		raw.Status = "2024-01-15T19:30:00Z"

		g := normalizeGame(raw)
		assert.Equal(t, provider.StatusScheduled, g.Status)
		assert.Equal(t, "2024-01-15T19:30:00Z", g.StartTime)
	})
}

func TestNormalizeGameDateAndIdentity(t *testing.T) {
	g := normalizeGame(gameRaw{
		ID:          1038,
		Date:        "2024-01-15T00:00:00.000Z",
		Season:      2023,
		Postseason:  true,
		HomeTeam:    teamRaw{ID: 2, Abbreviation: "bos", FullName: "Boston Celtics", City: "Boston"},
		VisitorTeam: teamRaw{ID: 14, Abbreviation: "LAL"},
	})

	assert.Equal(t, "bdl-1038", g.ID)
	assert.Equal(t, "2024-01-15", g.Date, "timestamps reduce to YYYY-MM-DD")
	assert.Equal(t, "BOS", g.HomeTeam.Abbreviation, "abbreviations are uppercased")
	assert.Equal(t, "2023", g.Season)
	assert.True(t, g.Postseason)
}

func TestNormalizeTeamDerivesLogo(t *testing.T) {
	team := normalizeTeam(teamRaw{ID: 10, Abbreviation: "GSW", FullName: "Golden State Warriors"})
	assert.Equal(t, "https://a.espncdn.com/i/teamlogos/nba/500/gs.png", team.LogoURL)

	unknown := normalizeTeam(teamRaw{ID: 99, Abbreviation: "XYZ"})
	assert.Empty(t, unknown.LogoURL)
}

func TestNormalizePlayerTotality(t *testing.T) {
	// All optional fields omitted: every required field must still be set.
	p := normalizePlayer(playerRaw{ID: 115})

	assert.Equal(t, "bdl-115", p.ID)
	assert.Equal(t, "Player 115", p.DisplayName)
	assert.Nil(t, p.Team, "free agents carry no team reference")
	assert.NotEmpty(t, p.HeadshotURL, "headshot is derived from the id when absent")
	assert.Empty(t, p.College)
	assert.Empty(t, p.JerseyNumber)
}

func TestNormalizeStatLineShootingConsistency(t *testing.T) {
	t.Run("percentage recomputed from makes and attempts", func(t *testing.T) {
		line := normalizeStatLine(statLineRaw{FGM: 5, FGA: 10})
		assert.Equal(t, 0.5, line.FGPct)
	})

	t.Run("zero attempts yields zero percentage", func(t *testing.T) {
		line := normalizeStatLine(statLineRaw{FGM: 0, FGA: 0, FTM: 0, FTA: 0})
		assert.Zero(t, line.FGPct)
		assert.Zero(t, line.FTPct)
	})

	t.Run("makes clamped to attempts", func(t *testing.T) {
		line := normalizeStatLine(statLineRaw{FG3M: 7, FG3A: 5})
		assert.Equal(t, 5, line.FG3M)
		assert.Equal(t, 5, line.FG3A)
		assert.Equal(t, 1.0, line.FG3Pct)
	})
}

func TestNormalizeStatLineReboundsAndMinutes(t *testing.T) {
	line := normalizeStatLine(statLineRaw{Min: "34:30", OReb: 3, DReb: 8, Reb: 0})
	assert.InDelta(t, 34.5, line.Minutes, 0.001)
	assert.Equal(t, 11, line.Rebounds, "total rebounds never below the sum of the splits")
}

func TestNormalizeStatLineDefaultsToZero(t *testing.T) {
	line := normalizeStatLine(statLineRaw{})
	assert.Zero(t, line.Points)
	assert.Zero(t, line.Minutes)
	assert.Zero(t, line.FGPct)
	assert.GreaterOrEqual(t, line.Rebounds, 0)
}

func TestParseMinutes(t *testing.T) {
	assert.Equal(t, 0.0, parseMinutes(""))
	assert.Equal(t, 33.0, parseMinutes("33"))
	assert.InDelta(t, 33.25, parseMinutes("33:15"), 0.001)
}
