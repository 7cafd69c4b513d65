package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"

	appControllers "github.com/jazbaa/showcase/internal/app/controllers"
	appMigrations "github.com/jazbaa/showcase/internal/app/migrations"
	appRepos "github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/app/repositories/docstore"
	"github.com/jazbaa/showcase/internal/app/repositories/memory"
	appRoutes "github.com/jazbaa/showcase/internal/app/routes"
	appServices "github.com/jazbaa/showcase/internal/app/services"
	"github.com/jazbaa/showcase/internal/config"
	"github.com/jazbaa/showcase/internal/db"
	appMiddleware "github.com/jazbaa/showcase/internal/middleware"
	pkgAuth "github.com/jazbaa/showcase/internal/pkg/auth"
	"github.com/jazbaa/showcase/internal/pkg/logger"
	"github.com/jazbaa/showcase/internal/pkg/session"
	"github.com/jazbaa/showcase/internal/pkg/telemetry"
	"github.com/jazbaa/showcase/internal/pkg/validation"
	"github.com/jazbaa/showcase/internal/seed"
)

// Version is reported to the tracing backend.
const Version = "1.0.0"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Sessions       session.Store
	JWTService     *pkgAuth.JWTService
	AuthService    *appServices.AuthService
	Catalog        appServices.CatalogService
	Comments       appServices.CommentService
	Ledger         *appServices.InterestLedger
	Dashboards     *appServices.DashboardService
	Admin          *appServices.AdminService
	Invites        *appServices.InviteService
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	LoginLimiter   *appMiddleware.IPRateLimiter
	Logger         zerolog.Logger
}

// App is a fully wired application and the resources it owns.
type App struct {
	Config  *config.Config
	Deps    *Dependencies
	Router  *gin.Engine
	logger  zerolog.Logger
	closers []func(context.Context) error
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:   cfg.Logging.Level,
		Format:  logger.Format(cfg.Logging.Format),
		Service: cfg.Tracing.ServiceName,
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// New opens the configured store and session backends and wires every
// service, controller and route on top of them. On error, everything opened
// so far is closed again.
func New(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*App, error) {
	app := &App{Config: cfg, logger: lgr}

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
		ServiceName: cfg.Tracing.ServiceName,
		Version:     Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup tracing: %w", err)
	}
	app.closers = append(app.closers, shutdownTracing)

	repos, probe, err := app.openStore(ctx)
	if err != nil {
		_ = app.Close(ctx)
		return nil, err
	}

	sessions, err := app.openSessions(ctx)
	if err != nil {
		_ = app.Close(ctx)
		return nil, err
	}

	if cfg.Seed.Enabled {
		if err := seedDemoData(ctx, repos, cfg.Auth.BcryptCost, lgr); err != nil {
			// Partial seed data is not fatal; the catalog stays usable.
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	deps, err := BuildDependencies(cfg, repos, sessions, probe, lgr)
	if err != nil {
		_ = app.Close(ctx)
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}
	app.Deps = deps
	app.Router = SetupRouter(cfg, deps)
	return app, nil
}

// Close releases every backend in reverse order of opening.
func (a *App) Close(ctx context.Context) error {
	var errs error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = errors.Join(errs, a.closers[i](ctx))
	}
	a.closers = nil
	return errs
}

func (a *App) openStore(ctx context.Context) (*appRepos.Repositories, appControllers.Probe, error) {
	cfg, lgr := a.Config, a.logger

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		lgr.Info().Msg("Establishing database connection...")
		pool, err := db.NewPostgresPool(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		a.closers = append(a.closers, func(context.Context) error {
			pool.Close()
			return nil
		})
		lgr.Info().Msg("Database connection successfully established.")

		if err := runMigrations(ctx, pool, cfg.Database.MigrationsDir, lgr); err != nil {
			return nil, nil, err
		}
		return appRepos.NewPostgresRepositories(pool), pool.Ping, nil

	case config.DriverFirestore:
		client, err := db.NewFirestoreClient(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to open Firestore client")
			return nil, nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		lgr.Info().Str("project", cfg.Firestore.ProjectID).Msg("Firestore client ready")
		return docstore.New(client), firestoreProbe(client), nil

	default:
		lgr.Info().Msg("Using in-memory store")
		return memory.New().Repositories(), nil, nil
	}
}

func (a *App) openSessions(ctx context.Context) (session.Store, error) {
	if a.Config.Session.Driver != config.SessionRedis {
		return session.NewMemoryStore(), nil
	}
	client, err := db.NewRedisClient(ctx, a.Config)
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to connect to redis")
		return nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return client.Close() })
	a.logger.Info().Str("addr", a.Config.Redis.Addr).Msg("Redis session store ready")
	return session.NewRedisStore(client), nil
}

// runMigrations applies the on-disk migrations when dir exists and the ones
// embedded in the binary otherwise.
func runMigrations(ctx context.Context, pool *pgxpool.Pool, dir string, lgr zerolog.Logger) error {
	var fsys fs.FS = appMigrations.Embedded
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		fsys = os.DirFS(dir)
		lgr.Info().Str("path", dir).Msg("Running database migrations from directory...")
	} else {
		lgr.Info().Msg("Running embedded database migrations...")
	}

	if err := appMigrations.NewMigrator(pool, lgr).Migrate(ctx, fsys); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

func firestoreProbe(client *firestore.Client) appControllers.Probe {
	return func(ctx context.Context) error {
		_, err := client.Collection("startups").Limit(1).Documents(ctx).Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		return err
	}
}

func seedDemoData(ctx context.Context, repos *appRepos.Repositories, cost int, lgr zerolog.Logger) error {
	data, err := seed.Demo(cost)
	if err != nil {
		return err
	}
	return seed.Apply(ctx, repos, data, lgr)
}

// BuildDependencies initializes application services, middleware and controllers.
func BuildDependencies(
	cfg *config.Config,
	repos *appRepos.Repositories,
	sessions session.Store,
	probe appControllers.Probe,
	lgr zerolog.Logger,
) (*Dependencies, error) {
	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	deps := &Dependencies{Repos: repos, Sessions: sessions, Logger: lgr}
	timeout := cfg.Store.Timeout

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.JWT.AccessTokenExpiration,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(repos.Users, sessions, deps.JWTService, timeout, component(lgr, "auth"))
	deps.AuthService.SetHashCost(cfg.Auth.BcryptCost)
	deps.Catalog = appServices.NewCatalogService(repos.Startups, timeout, component(lgr, "catalog"))
	deps.Comments = appServices.NewCommentService(repos.Comments, repos.Startups, timeout, component(lgr, "comments"))
	deps.Ledger = appServices.NewInterestLedger(repos.Startups, timeout, component(lgr, "ledger"))
	deps.Dashboards = appServices.NewDashboardService(repos.Startups, repos.Comments, timeout, component(lgr, "dashboards"))
	deps.Admin = appServices.NewAdminService(repos, deps.AuthService, timeout, component(lgr, "admin"))
	deps.Invites = appServices.NewInviteService(repos.Invites, timeout, component(lgr, "invites"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService)
	deps.LoginLimiter = appMiddleware.NewIPRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)

	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.AuthService, lgr),
		Navigation: appControllers.NewNavigationController(),
		Startups:   appControllers.NewStartupController(deps.Catalog, deps.Comments, lgr),
		Dashboards: appControllers.NewDashboardController(deps.Dashboards, deps.Ledger, deps.Comments, deps.Admin, lgr),
		Admin:      appControllers.NewAdminController(deps.Admin, deps.Comments, lgr),
		Invites:    appControllers.NewInviteController(deps.Invites),
		Health:     appControllers.NewHealthController(cfg.Store.Driver, probe),
	}

	lgr.Info().Str("store", cfg.Store.Driver).Str("sessions", cfg.Session.Driver).Msg("Dependencies initialized")
	return deps, nil
}

// SetupRouter initializes the Gin router and sets up routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	appRoutes.ApplyGlobalMiddleware(router, appRoutes.GlobalOptions{
		Logger:         deps.Logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Tracing:        cfg.Tracing.Enabled,
		ServiceName:    cfg.Tracing.ServiceName,
	})
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.LoginLimiter)
	appRoutes.SetupSwagger(router)
	return router
}

func component(lgr zerolog.Logger, name string) zerolog.Logger {
	return lgr.With().Str("component", name).Logger()
}
