// Package orchestrator is the single entry point over all leagues and
// providers. It owns provider selection, fallback order, and caching; callers
// receive canonical entities and never see which provider served them.
//
// Read operations never surface provider failures. A provider error is
// logged, the next candidate in the league's chain is tried, and when the
// chain is exhausted the caller gets an empty result — absence of data and a
// provider outage are deliberately indistinguishable at this boundary. The
// only errors returned are for invalid arguments.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/albapepper/courtside/internal/cache"
	"github.com/albapepper/courtside/internal/provider"
)

// ErrInvalidArgument marks caller mistakes — malformed dates, empty queries,
// unprefixed ids. Everything else is swallowed.
var ErrInvalidArgument = errors.New("invalid argument")

// Orchestrator routes league-scoped queries through ordered provider chains.
type Orchestrator struct {
	mu      sync.RWMutex
	leagues map[string][]Source
	cache   *cache.Cache
	logger  *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// New creates an Orchestrator. Provider chains are registered per league via
// Register; clients are injected so tests can substitute fakes.
func New(c *cache.Cache, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		leagues: make(map[string][]Source),
		cache:   c,
		logger:  logger,
		now:     time.Now,
	}
}

// Register installs a league's fallback chain. Sources are tried strictly in
// the given order; registering again replaces the chain wholesale.
func (o *Orchestrator) Register(league string, sources ...Source) {
	o.mu.Lock()
	o.leagues[league] = sources
	o.mu.Unlock()
}

// Leagues returns the registered league ids, sorted.
func (o *Orchestrator) Leagues() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]string, 0, len(o.leagues))
	for l := range o.leagues {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func (o *Orchestrator) chain(league string) []Source {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.leagues[league]
}

// --------------------------------------------------------------------------
// Games
// --------------------------------------------------------------------------

// GamesByDate returns all games for a league on a YYYY-MM-DD date. Unknown
// leagues return an empty slice — "no data" is a normal, displayable state.
func (o *Orchestrator) GamesByDate(ctx context.Context, league, date string) ([]provider.Game, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidArgument, date)
	}

	key := cache.Key("games", league, date)
	if games, ok := cache.Typed[[]provider.Game](o.cache, key); ok {
		return games, nil
	}

	ttl := gamesTTL(date, o.today())

	for _, src := range o.chain(league) {
		if src.Games == nil {
			continue
		}
		games, err := src.Games.GamesByDate(ctx, date)
		if err != nil {
			o.logProviderFailure(src.Name, "games_by_date", err)
			continue
		}
		if len(games) == 0 {
			continue
		}
		o.cache.Set(key, games, ttl)
		return games, nil
	}
	return []provider.Game{}, nil
}

// GamesByTeam returns one team's games for a season. The team id's provider
// prefix selects the source within the league's chain.
func (o *Orchestrator) GamesByTeam(ctx context.Context, league, teamID string, season int) ([]provider.Game, error) {
	providerName, bare, ok := splitID(teamID)
	if !ok {
		return nil, fmt.Errorf("%w: team id %q has no provider prefix", ErrInvalidArgument, teamID)
	}

	key := cache.Key("games_team", league, teamID, fmt.Sprint(season))
	if games, ok := cache.Typed[[]provider.Game](o.cache, key); ok {
		return games, nil
	}

	for _, src := range o.chain(league) {
		if src.Name != providerName || src.TeamGames == nil {
			continue
		}
		games, err := src.TeamGames.GamesByTeam(ctx, bare, season)
		if err != nil {
			o.logProviderFailure(src.Name, "games_by_team", err)
			break
		}
		if len(games) > 0 {
			o.cache.Set(key, games, cache.TTLSeasonAverages)
		}
		return orEmpty(games), nil
	}
	return []provider.Game{}, nil
}

// LiveGames returns in-progress games across every registered league. Each
// league is queried concurrently; one league's failure never aborts the rest.
func (o *Orchestrator) LiveGames(ctx context.Context) ([]provider.Game, error) {
	leagues := o.Leagues()
	today := o.today()

	results := make([][]provider.Game, len(leagues))
	g, gctx := errgroup.WithContext(ctx)
	for i, league := range leagues {
		i, league := i, league
		g.Go(func() error {
			games, err := o.GamesByDate(gctx, league, today)
			if err != nil {
				// Only invalid arguments reach here, and today() is well-formed.
				o.logger.Error("live games branch failed", "league", league, "error", err)
				return nil
			}
			results[i] = games
			return nil
		})
	}
	_ = g.Wait()

	var live []provider.Game
	for _, games := range results {
		for _, game := range games {
			if game.Status == provider.StatusLive {
				live = append(live, game)
			}
		}
	}
	return orEmpty(live), nil
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

// Teams returns all teams for a league.
func (o *Orchestrator) Teams(ctx context.Context, league string) ([]provider.Team, error) {
	key := cache.Key("teams", league)
	if teams, ok := cache.Typed[[]provider.Team](o.cache, key); ok {
		return teams, nil
	}

	for _, src := range o.chain(league) {
		if src.Teams == nil {
			continue
		}
		teams, err := src.Teams.Teams(ctx)
		if err != nil {
			o.logProviderFailure(src.Name, "teams", err)
			continue
		}
		if len(teams) == 0 {
			continue
		}
		o.cache.Set(key, teams, cache.TTLTeams)
		return teams, nil
	}
	return []provider.Team{}, nil
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

// SearchPlayers returns players matching a free-text query.
func (o *Orchestrator) SearchPlayers(ctx context.Context, league, query string) ([]provider.Player, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", ErrInvalidArgument)
	}

	key := cache.Key("players", league, "search", query)
	if players, ok := cache.Typed[[]provider.Player](o.cache, key); ok {
		return players, nil
	}

	for _, src := range o.chain(league) {
		if src.Players == nil {
			continue
		}
		players, err := src.Players.SearchPlayers(ctx, query)
		if err != nil {
			o.logProviderFailure(src.Name, "search_players", err)
			continue
		}
		if len(players) == 0 {
			continue
		}
		o.cache.Set(key, players, cache.TTLPlayers)
		return players, nil
	}
	return []provider.Player{}, nil
}

// Player returns one player profile, or nil when unknown or unavailable.
func (o *Orchestrator) Player(ctx context.Context, league, playerID string) (*provider.Player, error) {
	providerName, bare, ok := splitID(playerID)
	if !ok {
		return nil, fmt.Errorf("%w: player id %q has no provider prefix", ErrInvalidArgument, playerID)
	}

	key := cache.Key("player", league, playerID)
	if p, ok := cache.Typed[*provider.Player](o.cache, key); ok {
		return p, nil
	}

	for _, src := range o.chain(league) {
		if src.Name != providerName || src.Players == nil {
			continue
		}
		p, err := src.Players.PlayerByID(ctx, bare)
		if err != nil {
			o.logProviderFailure(src.Name, "player_by_id", err)
			return nil, nil
		}
		if p != nil {
			o.cache.Set(key, p, cache.TTLPlayers)
		}
		return p, nil
	}
	return nil, nil
}

// --------------------------------------------------------------------------
// Stats
// --------------------------------------------------------------------------

// PlayerSeasonAverages returns a player's per-game averages for one season,
// or nil when the player has no recorded games.
func (o *Orchestrator) PlayerSeasonAverages(ctx context.Context, league, playerID string, season int) (*provider.SeasonAverages, error) {
	providerName, bare, ok := splitID(playerID)
	if !ok {
		return nil, fmt.Errorf("%w: player id %q has no provider prefix", ErrInvalidArgument, playerID)
	}

	key := cache.Key("season_averages", league, playerID, fmt.Sprint(season))
	if avg, ok := cache.Typed[*provider.SeasonAverages](o.cache, key); ok {
		return avg, nil
	}

	for _, src := range o.chain(league) {
		if src.Name != providerName || src.Averages == nil {
			continue
		}
		avg, err := src.Averages.SeasonAverages(ctx, season, bare)
		if err != nil {
			o.logProviderFailure(src.Name, "season_averages", err)
			return nil, nil
		}
		if avg != nil {
			o.cache.Set(key, avg, cache.TTLSeasonAverages)
		}
		return avg, nil
	}
	return nil, nil
}

// BoxScore returns every player stat line for a game.
func (o *Orchestrator) BoxScore(ctx context.Context, league, gameID string) ([]provider.PlayerGameStats, error) {
	providerName, bare, ok := splitID(gameID)
	if !ok {
		return nil, fmt.Errorf("%w: game id %q has no provider prefix", ErrInvalidArgument, gameID)
	}

	key := cache.Key("boxscore", league, gameID)
	if lines, ok := cache.Typed[[]provider.PlayerGameStats](o.cache, key); ok {
		return orEmpty(lines), nil
	}

	for _, src := range o.chain(league) {
		if src.Name != providerName || src.BoxScores == nil {
			continue
		}
		lines, err := src.BoxScores.BoxScore(ctx, bare)
		if err != nil {
			o.logProviderFailure(src.Name, "box_score", err)
			return []provider.PlayerGameStats{}, nil
		}
		if len(lines) > 0 {
			o.cache.Set(key, lines, cache.TTLBoxScore)
		}
		return orEmpty(lines), nil
	}
	return []provider.PlayerGameStats{}, nil
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func (o *Orchestrator) today() string {
	return o.now().Format("2006-01-02")
}

// gamesTTL grades the cache window for one date's slate. Only dates strictly
// in the past hold finals that never change; today's and future dates can go
// live and must stay fresh. YYYY-MM-DD strings order lexicographically.
func gamesTTL(date, today string) time.Duration {
	if date < today {
		return cache.TTLGamesPast
	}
	return cache.TTLGamesToday
}

// logProviderFailure downgrades missing-credential errors: the client already
// warned once at startup, so a per-request repeat would just be noise.
func (o *Orchestrator) logProviderFailure(providerName, op string, err error) {
	if errors.Is(err, provider.ErrMissingCredential) {
		o.logger.Debug("provider skipped", "provider", providerName, "op", op, "reason", "missing credential")
		return
	}
	o.logger.Warn("provider failed", "provider", providerName, "op", op, "error", err)
}

// orEmpty replaces a nil slice with an empty one so callers and JSON
// encoders never see null where "no data" is meant.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
