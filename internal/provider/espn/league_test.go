package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/courtside/internal/provider"
)

func newTestLeague(t *testing.T, league string, h http.HandlerFunc) *Handler {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, 600, 5*time.Second, nil)
	return NewHandler(client, league, league, nil)
}

const scoreboardFixture = `{
  "events": [
    {
      "id": "401585601",
      "date": "2024-01-15T19:30Z",
      "season": {"year": 2023, "type": 2},
      "status": {
        "period": 3,
        "displayClock": "7:02",
        "type": {"state": "in", "completed": false}
      },
      "competitions": [
        {
          "competitors": [
            {
              "homeAway": "home",
              "score": "67",
              "team": {"id": "2", "abbreviation": "BOS", "displayName": "Boston Celtics", "location": "Boston"}
            },
            {
              "homeAway": "away",
              "score": "64",
              "team": {"id": "13", "abbreviation": "LAL", "displayName": "Los Angeles Lakers", "location": "Los Angeles"}
            }
          ]
        }
      ]
    }
  ]
}`

func TestGamesByDateSendsCompactDate(t *testing.T) {
	var gotDates string
	h := newTestLeague(t, "wnba", func(w http.ResponseWriter, r *http.Request) {
		gotDates = r.URL.Query().Get("dates")
		w.Write([]byte(`{"events":[]}`))
	})

	_, err := h.GamesByDate(context.Background(), "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "20240115", gotDates, "ESPN date filter is 8-digit YYYYMMDD")
}

func TestGamesByDateNormalizesEvents(t *testing.T) {
	h := newTestLeague(t, "nba", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(scoreboardFixture))
	})

	games, err := h.GamesByDate(context.Background(), "2024-01-15")
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	assert.Equal(t, "espn-401585601", g.ID)
	assert.Equal(t, "nba", g.League)
	assert.Equal(t, "BOS", g.HomeTeam.Abbreviation)
	assert.Equal(t, "LAL", g.AwayTeam.Abbreviation)
	assert.Equal(t, 67, g.HomeScore)
	assert.Equal(t, 64, g.AwayScore)
	assert.Equal(t, provider.StatusLive, g.Status)
	assert.Equal(t, 3, g.Period)
	assert.Equal(t, "7:02", g.Clock)
	assert.Equal(t, "2024-01-15", g.Date)
}

func TestNormalizeEventStatusBoundaries(t *testing.T) {
	h := &Handler{league: "nba"}

	base := eventRaw{
		ID: "1",
		Competitions: []competitionRaw{{
			Competitors: []competitorRaw{
				{HomeAway: "home", Team: teamRaw{ID: "2", Abbreviation: "BOS"}},
				{HomeAway: "away", Team: teamRaw{ID: "13", Abbreviation: "LAL"}},
			},
		}},
	}

	t.Run("completed flag wins regardless of period", func(t *testing.T) {
		ev := base
		ev.Status.Period = 4
		ev.Status.Type.Completed = true

		g, ok := h.normalizeEvent(ev)
		require.True(t, ok)
		assert.Equal(t, provider.StatusFinal, g.Status)
	})

	t.Run("running period means live", func(t *testing.T) {
		ev := base
		ev.Status.Period = 1
		ev.Status.Type.State = "in"

		g, ok := h.normalizeEvent(ev)
		require.True(t, ok)
		assert.Equal(t, provider.StatusLive, g.Status)
	})

	t.Run("pre state with no period means scheduled", func(t *testing.T) {
		ev := base
		ev.Status.Type.State = "pre"

		g, ok := h.normalizeEvent(ev)
		require.True(t, ok)
		assert.Equal(t, provider.StatusScheduled, g.Status)
	})

	t.Run("event without two flagged competitors is dropped", func(t *testing.T) {
		ev := eventRaw{
			ID: "1",
			Competitions: []competitionRaw{{
				Competitors: []competitorRaw{
					{HomeAway: "home", Team: teamRaw{ID: "2", Abbreviation: "BOS"}},
				},
			}},
		}

		_, ok := h.normalizeEvent(ev)
		assert.False(t, ok)
	})
}

func TestBoxScoreParsesLabelledColumns(t *testing.T) {
	const summary = `{
	  "boxscore": {
	    "players": [
	      {
	        "statistics": [
	          {
	            "names": ["MIN", "FG", "3PT", "FT", "OREB", "DREB", "REB", "AST", "STL", "BLK", "TO", "PF", "+/-", "PTS"],
	            "athletes": [
	              {
	                "athlete": {"id": "3917376"},
	                "stats": ["36", "10-18", "4-9", "6-6", "1", "7", "8", "9", "2", "1", "3", "2", "+12", "30"]
	              }
	            ]
	          }
	        ]
	      }
	    ]
	  }
	}`

	h := newTestLeague(t, "nba", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "401585601", r.URL.Query().Get("event"))
		w.Write([]byte(summary))
	})

	lines, err := h.BoxScore(context.Background(), "401585601")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	line := lines[0]
	assert.Equal(t, "espn-3917376", line.PlayerID)
	assert.Equal(t, "espn-401585601", line.GameID)
	assert.Equal(t, 36.0, line.Minutes)
	assert.Equal(t, 10, line.FGM)
	assert.Equal(t, 18, line.FGA)
	assert.InDelta(t, 10.0/18.0, line.FGPct, 0.0001)
	assert.Equal(t, 4, line.FG3M)
	assert.Equal(t, 1.0, line.FTPct)
	assert.Equal(t, 8, line.Rebounds)
	assert.Equal(t, 30, line.Points)
	assert.Equal(t, 3, line.Turnovers)
}

func TestBoxScoreMissingColumnsDefaultToZero(t *testing.T) {
	line := normalizeStatLine("1", "2", []string{"12"}, map[string]int{"MIN": 0})
	assert.Equal(t, 12.0, line.Minutes)
	assert.Zero(t, line.Points)
	assert.Zero(t, line.FGPct)
	assert.Zero(t, line.FGA)
}

func TestNon2xxBecomesStatusError(t *testing.T) {
	h := newTestLeague(t, "nba", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream sad", http.StatusBadGateway)
	})

	_, err := h.GamesByDate(context.Background(), "2024-01-15")
	var statusErr *provider.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Status)
}
