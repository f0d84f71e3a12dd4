package orchestrator

import (
	"context"
	"strings"

	"github.com/albapepper/courtside/internal/provider"
)

// Capability interfaces implemented by provider handlers. A provider exposes
// whichever subset it supports; the orchestrator skips nil capabilities when
// walking a fallback chain.
//
// Date parameters are YYYY-MM-DD. Entity ids are the provider's bare ids —
// the orchestrator strips the provider prefix before routing a call.

type GameSource interface {
	GamesByDate(ctx context.Context, date string) ([]provider.Game, error)
}

type TeamGameSource interface {
	GamesByTeam(ctx context.Context, teamID string, season int) ([]provider.Game, error)
}

type TeamSource interface {
	Teams(ctx context.Context) ([]provider.Team, error)
}

type PlayerSource interface {
	SearchPlayers(ctx context.Context, query string) ([]provider.Player, error)
	PlayerByID(ctx context.Context, id string) (*provider.Player, error)
}

type AverageSource interface {
	SeasonAverages(ctx context.Context, season int, playerID string) (*provider.SeasonAverages, error)
}

type BoxScoreSource interface {
	BoxScore(ctx context.Context, gameID string) ([]provider.PlayerGameStats, error)
}

// Source bundles one provider's capabilities for one league. Nil fields mean
// the provider does not serve that query type for the league.
type Source struct {
	Name      string
	Games     GameSource
	TeamGames TeamGameSource
	Teams     TeamSource
	Players   PlayerSource
	Averages  AverageSource
	BoxScores BoxScoreSource
}

// splitID separates a canonical "provider-id" identifier into its provider
// name and bare id. Returns ok=false when the prefix is missing.
func splitID(id string) (providerName, bare string, ok bool) {
	providerName, bare, ok = strings.Cut(id, "-")
	if !ok || providerName == "" || bare == "" {
		return "", "", false
	}
	return providerName, bare, true
}
