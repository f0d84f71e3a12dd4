// Package wiring assembles provider clients into the orchestrator's league
// chains. Shared by cmd/api and cmd/fetch so both binaries route queries
// identically.
package wiring

import (
	"log/slog"

	"github.com/albapepper/courtside/internal/config"
	"github.com/albapepper/courtside/internal/orchestrator"
	"github.com/albapepper/courtside/internal/provider/bdl"
	"github.com/albapepper/courtside/internal/provider/espn"
)

// RegisterLeagues installs every league's fallback chain.
//
// The NBA gets first-class treatment: BallDontLie first (richer data, box
// scores, season averages), ESPN as scoreboard fallback. Leagues BDL does not
// carry go straight to ESPN with no fallback chain. The BDL source is
// registered even without an API key — its client fails fast with a typed
// error and the chain moves on, which keeps wiring independent of deploy-time
// configuration.
func RegisterLeagues(orc *orchestrator.Orchestrator, cfg *config.Config, logger *slog.Logger) {
	bdlClient := bdl.NewClient(bdl.DefaultBaseURL, cfg.BDLAPIKey, cfg.BDLRequestsPerMinute, cfg.ProviderTimeout, logger)
	nba := bdl.NewNBAHandler(bdlClient, logger)

	espnClient := espn.NewClient(espn.DefaultBaseURL, cfg.ESPNRequestsPerMinute, cfg.ProviderTimeout, logger)

	for id, lc := range config.LeagueRegistry {
		espnHandler := espn.NewHandler(espnClient, id, lc.ESPNPath, logger)
		espnSource := orchestrator.Source{
			Name:      espn.Name,
			Games:     espnHandler,
			Teams:     espnHandler,
			BoxScores: espnHandler,
		}

		if id == "nba" {
			bdlSource := orchestrator.Source{
				Name:      bdl.Name,
				Games:     nba,
				TeamGames: nba,
				Teams:     nba,
				Players:   nba,
				Averages:  nba,
				BoxScores: nba,
			}
			orc.Register(id, bdlSource, espnSource)
			continue
		}
		orc.Register(id, espnSource)
	}
}
