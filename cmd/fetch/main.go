// Command fetch is the Courtside ad hoc query CLI. It drives the same
// orchestrator the API server uses and prints canonical JSON, which makes it
// the quickest way to check what a provider chain is actually returning.
//
// Usage:
//
//	courtside-fetch games --league nba --date 2024-01-15
//	courtside-fetch games --live
//	courtside-fetch teams --league wnba
//	courtside-fetch players --league nba --search curry
//	courtside-fetch boxscore --league nba --game bdl-1038184
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/courtside/internal/cache"
	"github.com/albapepper/courtside/internal/config"
	"github.com/albapepper/courtside/internal/orchestrator"
	"github.com/albapepper/courtside/internal/wiring"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "courtside-fetch",
		Short: "Courtside ad hoc query CLI",
	}

	root.AddCommand(gamesCmd())
	root.AddCommand(teamsCmd())
	root.AddCommand(playersCmd())
	root.AddCommand(boxscoreCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// run builds the orchestrator and invokes fn with a signal-aware context.
func run(fn func(ctx context.Context, orc *orchestrator.Orchestrator) (any, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// One-shot invocations gain nothing from caching.
	orc := orchestrator.New(cache.New(false), logger)
	wiring.RegisterLeagues(orc, cfg, logger)

	result, err := fn(ctx, orc)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func gamesCmd() *cobra.Command {
	var league, date string
	var live bool
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Fetch games for a league and date, or all live games",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, orc *orchestrator.Orchestrator) (any, error) {
				if live {
					return orc.LiveGames(ctx)
				}
				return orc.GamesByDate(ctx, league, date)
			})
		},
	}
	cmd.Flags().StringVar(&league, "league", "nba", "League id")
	cmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "Date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&live, "live", false, "Fetch live games across all leagues")
	return cmd
}

func teamsCmd() *cobra.Command {
	var league string
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Fetch all teams for a league",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, orc *orchestrator.Orchestrator) (any, error) {
				return orc.Teams(ctx, league)
			})
		},
	}
	cmd.Flags().StringVar(&league, "league", "nba", "League id")
	return cmd
}

func playersCmd() *cobra.Command {
	var league, search string
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Search players by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, orc *orchestrator.Orchestrator) (any, error) {
				return orc.SearchPlayers(ctx, league, search)
			})
		},
	}
	cmd.Flags().StringVar(&league, "league", "nba", "League id")
	cmd.Flags().StringVar(&search, "search", "", "Free-text search")
	return cmd
}

func boxscoreCmd() *cobra.Command {
	var league, gameID string
	cmd := &cobra.Command{
		Use:   "boxscore",
		Short: "Fetch player stat lines for a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, orc *orchestrator.Orchestrator) (any, error) {
				return orc.BoxScore(ctx, league, gameID)
			})
		},
	}
	cmd.Flags().StringVar(&league, "league", "nba", "League id")
	cmd.Flags().StringVar(&gameID, "game", "", "Canonical game id (provider-prefixed)")
	return cmd
}
