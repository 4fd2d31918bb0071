package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/hirepath/hirepath/external/jobqueue"
	"github.com/hirepath/hirepath/internal/config"
	"github.com/hirepath/hirepath/internal/domain/catalog"
	"github.com/hirepath/hirepath/internal/domain/clientres"
	"github.com/hirepath/hirepath/internal/domain/devprofile"
	"github.com/hirepath/hirepath/internal/domain/progress"
	"github.com/hirepath/hirepath/internal/infrastructure/account/identity"
	cacherepo "github.com/hirepath/hirepath/internal/infrastructure/repository/cache"
	"github.com/hirepath/hirepath/internal/infrastructure/repository/memory"
	"github.com/hirepath/hirepath/internal/infrastructure/repository/postgres"
	"github.com/hirepath/hirepath/internal/interfaces/httpapi"
	"github.com/hirepath/hirepath/internal/platform/cache"
	idgen "github.com/hirepath/hirepath/internal/platform/id"
	"github.com/hirepath/hirepath/internal/platform/resilience"
	"github.com/hirepath/hirepath/internal/usecase"
)

type repositories struct {
	progress progress.Repository
	orgs     clientres.OrganizationRepository
	teams    clientres.TeamRepository
	personas clientres.HiringPersonaRepository
	profiles devprofile.Repository
}

// buildRepositories connects Postgres when DB_URL is set; otherwise the
// service runs fully in-memory, which is how local dev and the test suites
// exercise it.
func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("DB_URL not set, using in-memory repositories")
		return repositories{
			progress: memory.NewProgressRepository(),
			orgs:     memory.NewOrganizationRepository(),
			teams:    memory.NewTeamRepository(),
			personas: memory.NewHiringPersonaRepository(),
			profiles: memory.NewDeveloperProfileRepository(),
		}, nil
	}

	db, err := otelsqlx.Connect(
		"postgres",
		normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("connected to postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		progress: postgres.NewProgressRepository(db),
		orgs:     postgres.NewOrganizationRepository(db),
		teams:    postgres.NewTeamRepository(db),
		personas: postgres.NewHiringPersonaRepository(db),
		profiles: postgres.NewDeveloperProfileRepository(db),
	}, nil
}

// buildCatalogRepository serves the reference catalog from the seeded
// in-memory repository in both modes. The catalog only changes on deploy, so
// it never lives in the database; the cache decorator memoizes lookups.
func buildCatalogRepository(cfg config.Config) catalog.Repository {
	repo := catalog.Repository(memory.NewSeededCatalogRepository())
	if cfg.CacheEnabled {
		repo = cacherepo.NewCatalogRepository(repo, cache.NewStore(cfg.CacheTTL))
	}
	return repo
}

func buildOnboardingEvents(cfg config.Config, logger *slog.Logger) *jobqueue.OnboardingEvents {
	if !cfg.QStashEnabled {
		logger.Info("job queue disabled", "reason", "QSTASH_ENABLED=false")
		return nil
	}

	publisher := jobqueue.NewPublisher(jobqueue.PublisherConfig{
		BaseURL:          cfg.QStashBaseURL,
		Token:            cfg.QStashToken,
		TargetBaseURL:    cfg.QStashTargetBaseURL,
		Retries:          cfg.QStashRetries,
		InternalJobToken: cfg.InternalJobToken,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.QStashCircuitEnabled,
			FailureThreshold: cfg.QStashCircuitFailureCount,
			OpenTimeout:      cfg.QStashCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
		},
	}, logger)

	return jobqueue.NewOnboardingEvents(publisher, "")
}

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	catalogRepo := buildCatalogRepository(cfg)
	sessions := cache.NewStore(cfg.CacheTTL)

	catalogSvc := usecase.NewCatalogService(catalogRepo)
	progressSvc := usecase.NewProgressService(repos.progress, idgen.NewRandomGenerator(), logger)
	clientResourceSvc := usecase.NewClientResourceService(repos.orgs, repos.teams, repos.personas, sessions, logger)
	resolverSvc := usecase.NewResolverService(progressSvc, sessions, logger)
	reconcileSvc := usecase.NewProjectionReconcileService(repos.progress, logger)

	var wizardSvc *usecase.WizardService
	if events := buildOnboardingEvents(cfg, logger); events != nil {
		wizardSvc = usecase.NewWizardService(progressSvc, repos.profiles, clientResourceSvc, events, sessions, logger)
	} else {
		wizardSvc = usecase.NewWizardService(progressSvc, repos.profiles, clientResourceSvc, nil, sessions, logger)
	}

	identityClient := identity.NewClient(identity.ClientConfig{
		BaseURL:        cfg.IdentityBaseURL,
		IntrospectPath: cfg.IdentityIntrospectPath,
		Timeout:        cfg.IdentityTimeout,
		CacheTTL:       cfg.IdentityCacheTTL,
		CacheMaxSize:   cfg.IdentityCacheMaxSize,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.IdentityCircuitEnabled,
			FailureThreshold: cfg.IdentityCircuitFailureCount,
			OpenTimeout:      cfg.IdentityCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.IdentityCircuitHalfOpenMaxReq,
		},
	}, logger)

	handler := httpapi.NewHandler(
		catalogSvc,
		progressSvc,
		wizardSvc,
		resolverSvc,
		clientResourceSvc,
		reconcileSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, identityClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

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
