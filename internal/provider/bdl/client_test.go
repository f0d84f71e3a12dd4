package bdl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/courtside/internal/provider"
)

func newTestHandler(t *testing.T, h http.HandlerFunc) (*NBAHandler, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "test-key", 600, 5*time.Second, nil)
	return NewNBAHandler(client, nil), srv
}

func TestMissingCredentialFailsFastWithoutNetworkCall(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 600, 5*time.Second, nil)
	h := NewNBAHandler(client, nil)

	_, err := h.Teams(context.Background())
	assert.ErrorIs(t, err, provider.ErrMissingCredential)
	assert.Equal(t, int64(0), calls.Load(), "no network call may be attempted without a credential")
}

func TestAuthorizationHeaderCarriesRawKey(t *testing.T) {
	var gotAuth string
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := h.Teams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotAuth)
}

func TestNon2xxBecomesStatusError(t *testing.T) {
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	})

	_, err := h.Teams(context.Background())
	var statusErr *provider.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Status)
	assert.Equal(t, Name, statusErr.Provider)
}

func TestGamesByDateFollowsCursor(t *testing.T) {
	var requests []string
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RawQuery)

		game := map[string]any{
			"id": 1, "date": "2024-01-15", "status": "Final",
			"home_team": map[string]any{"id": 2, "abbreviation": "BOS", "full_name": "Boston Celtics"},
			"visitor_team": map[string]any{"id": 14, "abbreviation": "LAL", "full_name": "Los Angeles Lakers"},
			"home_team_score": 102, "visitor_team_score": 100,
		}

		if r.URL.Query().Get("cursor") == "" {
			json.NewEncoder(w).Encode(map[string]any{
				"data": []any{game},
				"meta": map[string]any{"next_cursor": 25},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": []any{game}})
	})

	games, err := h.GamesByDate(context.Background(), "2024-01-15")
	require.NoError(t, err)
	assert.Len(t, games, 2)
	require.Len(t, requests, 2)
	assert.Contains(t, requests[1], "cursor=25")
	assert.Contains(t, requests[0], "dates%5B%5D=2024-01-15", "date filter must use the []-suffixed parameter")
}

func TestGamesByTeamRejectsNonNumericID(t *testing.T) {
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an invalid id")
	})

	_, err := h.GamesByTeam(context.Background(), "espn-5", 2024)
	assert.Error(t, err)
}

func TestSeasonAveragesEmptyMeansNoGames(t *testing.T) {
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	avg, err := h.SeasonAverages(context.Background(), 2024, "115")
	require.NoError(t, err)
	assert.Nil(t, avg)
}
