package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/profootgn/league-api/internal/config"
	"github.com/profootgn/league-api/internal/domain/club"
	"github.com/profootgn/league-api/internal/domain/match"
	"github.com/profootgn/league-api/internal/domain/matchevent"
	"github.com/profootgn/league-api/internal/domain/player"
	"github.com/profootgn/league-api/internal/domain/round"
	"github.com/profootgn/league-api/internal/domain/standings"
	"github.com/profootgn/league-api/internal/infrastructure/repository/memory"
	"github.com/profootgn/league-api/internal/infrastructure/repository/postgres"
	"github.com/profootgn/league-api/internal/interfaces/httpapi"
	"github.com/profootgn/league-api/internal/platform/cache"
	"github.com/profootgn/league-api/internal/platform/logging"
	"github.com/profootgn/league-api/internal/platform/resilience"
	"github.com/profootgn/league-api/internal/usecase"

	"github.com/profootgn/league-api/external/mediastore"
)

// App owns the wired HTTP server and its background workers.
type App struct {
	Server *http.Server

	db          *sqlx.DB
	stopRefresh context.CancelFunc
	logger      *logging.Logger
}

type repositories struct {
	clubs     club.Repository
	rounds    round.Repository
	players   player.Repository
	matches   match.Repository
	goals     matchevent.GoalRepository
	cards     matchevent.CardRepository
	events    matchevent.Store
	snapshots standings.SnapshotRepository
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var db *sqlx.DB
	var repos repositories
	if cfg.DBURL == "" {
		// No database configured: run on seeded in-memory repositories so
		// local development works out of the box.
		logger.Warn("DB_URL empty, using in-memory repositories")
		matchRepo := memory.NewMatchRepository(memory.SeedMatches())
		goalRepo := memory.NewGoalRepository(nil, matchRepo)
		cardRepo := memory.NewCardRepository(nil)
		repos = repositories{
			clubs:     memory.NewClubRepository(memory.SeedClubs()),
			rounds:    memory.NewRoundRepository(memory.SeedRounds()),
			players:   memory.NewPlayerRepository(memory.SeedPlayers()),
			matches:   matchRepo,
			goals:     goalRepo,
			cards:     cardRepo,
			events:    memory.NewEventStore(goalRepo, cardRepo),
			snapshots: memory.NewSnapshotRepository(),
		}
	} else {
		var err error
		db, err = openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		repos = repositories{
			clubs:     postgres.NewClubRepository(db),
			rounds:    postgres.NewRoundRepository(db),
			players:   postgres.NewPlayerRepository(db),
			matches:   postgres.NewMatchRepository(db),
			goals:     postgres.NewGoalRepository(db),
			cards:     postgres.NewCardRepository(db),
			events:    postgres.NewEventStore(db),
			snapshots: postgres.NewSnapshotRepository(db),
		}
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	var uploader usecase.PhotoUploader
	if cfg.MediaEnabled {
		uploader = mediastore.NewClient(mediastore.ClientConfig{
			BaseURL: cfg.MediaBaseURL,
			Token:   cfg.MediaToken,
			Timeout: cfg.MediaTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.MediaCircuitEnabled,
				FailureThreshold: cfg.MediaCircuitFailureCount,
				OpenTimeout:      cfg.MediaCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.MediaCircuitHalfOpenMaxRq,
			},
		}, logger)
	}

	clubService := usecase.NewClubService(repos.clubs)
	playerService := usecase.NewPlayerService(repos.players, repos.clubs, uploader)
	roundService := usecase.NewRoundService(repos.rounds)
	matchService := usecase.NewMatchService(repos.matches, repos.clubs, repos.rounds, cacheStore)
	resolver := usecase.NewPlayerResolverService(repos.players, cfg.AutoCreatePlayers)
	eventService := usecase.NewEventEntryService(
		repos.matches,
		repos.goals,
		repos.cards,
		repos.events,
		resolver,
		matchevent.DefaultProfile(),
		cacheStore,
	)
	standingsService := usecase.NewStandingsService(repos.clubs, repos.matches, repos.snapshots, cacheStore)
	topScorerService := usecase.NewTopScorerService(repos.goals, repos.players, repos.clubs, cacheStore, cfg.TopScorersLimit)
	statsRefreshService := usecase.NewStatsRefreshService(
		standingsService,
		topScorerService,
		cfg.TopScorersLimit,
		cfg.StatsRefreshWorkers,
		logger,
	)

	handler := httpapi.NewHandler(
		clubService,
		playerService,
		roundService,
		matchService,
		eventService,
		standingsService,
		topScorerService,
		statsRefreshService,
		cfg.RoundsTotal,
		logger,
	)
	router := httpapi.NewRouter(handler, cfg.AdminToken, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{
		Server: server,
		db:     db,
		logger: logger,
	}

	if cfg.StatsRefreshEnabled {
		refreshCtx, cancel := context.WithCancel(context.Background())
		a.stopRefresh = cancel
		go statsRefreshService.Run(refreshCtx, cfg.StatsRefreshInterval)
		logger.Info("stats refresher started",
			"interval", cfg.StatsRefreshInterval.String(),
			"workers", cfg.StatsRefreshWorkers,
		)
	}

	return a, nil
}

// Close stops the background refresher and releases the database pool. The
// HTTP server is shut down by the caller before Close.
func (a *App) Close() error {
	if a.stopRefresh != nil {
		a.stopRefresh()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
