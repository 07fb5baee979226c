package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/splcricket/auction-hall/internal/config"
	"github.com/splcricket/auction-hall/internal/domain/auction"
	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/roster"
	"github.com/splcricket/auction-hall/internal/domain/team"
	"github.com/splcricket/auction-hall/internal/infrastructure/repository/memory"
	"github.com/splcricket/auction-hall/internal/infrastructure/repository/postgres"
	"github.com/splcricket/auction-hall/internal/infrastructure/upload"
	"github.com/splcricket/auction-hall/internal/interfaces/httpapi"
	idgen "github.com/splcricket/auction-hall/internal/platform/id"
	"github.com/splcricket/auction-hall/internal/platform/logging"
	"github.com/splcricket/auction-hall/internal/platform/resilience"
	"github.com/splcricket/auction-hall/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

type repositories struct {
	auctions auction.Repository
	players  player.Repository
	teams    team.Repository
	roster   roster.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	idGen := idgen.NewRandomGenerator()

	auctionSvc := usecase.NewAuctionService(repos.auctions, repos.teams, repos.roster, idGen, logger)
	playerSvc := usecase.NewPlayerService(repos.players, idGen, logger)
	teamSvc := usecase.NewTeamService(repos.auctions, repos.teams, repos.roster, idGen, logger)
	rosterSvc := usecase.NewRosterService(repos.auctions, repos.players, repos.roster, idGen, logger)
	saleSvc := usecase.NewSaleService(repos.auctions, repos.teams, repos.roster, logger)
	slideSvc := usecase.NewSlideService(repos.auctions, repos.players, repos.roster, logger)

	var uploader httpapi.AssetUploader
	if cfg.UploadEnabled {
		uploader = upload.NewClient(upload.Config{
			BaseURL:        cfg.UploadBaseURL,
			Bucket:         cfg.UploadBucket,
			APIKey:         cfg.UploadAPIKey,
			Timeout:        cfg.UploadTimeout,
			MaxObjectBytes: cfg.UploadMaxObjectBytes,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.UploadCircuitEnabled,
				FailureThreshold: cfg.UploadCircuitFailureCount,
				OpenTimeout:      cfg.UploadCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.UploadCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	handler := httpapi.NewHandler(auctionSvc, playerSvc, teamSvc, rosterSvc, saleSvc, slideSvc, uploader, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("db url is empty, using in-memory repositories", "seed_demo_data", cfg.SeedDemoData)
		return memoryRepositories(cfg.SeedDemoData), nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return repositories{}, fmt.Errorf("open database: %w", err)
	}

	logger.Info("using postgres repositories", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		auctions: postgres.NewAuctionRepository(db),
		players:  postgres.NewPlayerRepository(db),
		teams:    postgres.NewTeamRepository(db),
		roster:   postgres.NewRosterRepository(db),
	}, nil
}

func memoryRepositories(seed bool) repositories {
	if !seed {
		return repositories{
			auctions: memory.NewAuctionRepository(nil),
			players:  memory.NewPlayerRepository(nil),
			teams:    memory.NewTeamRepository(nil),
			roster:   memory.NewRosterRepository(nil),
		}
	}

	return repositories{
		auctions: memory.NewAuctionRepository(memory.SeedAuctions()),
		players:  memory.NewPlayerRepository(memory.SeedPlayers()),
		teams:    memory.NewTeamRepository(memory.SeedTeams()),
		roster:   memory.NewRosterRepository(memory.SeedRoster()),
	}
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
