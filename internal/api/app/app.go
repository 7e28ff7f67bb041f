package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wad01/wad/internal/api/assets"
	httpapi "github.com/wad01/wad/internal/api/http"
	"github.com/wad01/wad/internal/api/service"
	"github.com/wad01/wad/internal/api/store"
	"github.com/wad01/wad/internal/api/store/drivers/mongo"
	"github.com/wad01/wad/internal/api/store/drivers/sqlite"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/jwtx"
	"github.com/wad01/wad/pkg/slogx"
)

// BuildVersion is overridden at build time via ldflags.
var BuildVersion = "v0.1.0"

const (
	serviceName = "wad-api"

	// connectTimeout bounds startup connections to the store and asset backends.
	connectTimeout = 15 * time.Second
)

// Application encapsulates the API service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	files    assets.Store
	verifier jwtx.Verifier
	signer   jwtx.Signer // nil when token issuance is disabled

	// Services
	profileService *service.ProfileService
	imageService   *service.ImageService
	userService    *service.UserService
	itemService    *service.ItemService
	tokenService   *service.TokenService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if err := app.initAssets(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	verifier, signer, err := InitTokenKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.verifier = verifier
	app.signer = signer

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the configured router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("api service starting",
		"port", app.cfg.Port,
		"store", app.cfg.StoreDriver,
		"assets", app.cfg.AssetDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down api service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "err", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "err", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "err", err)
		return err
	}

	app.logger.Info("api service stopped")
	return nil
}

// initDatabase opens the configured store and brings its schema or indexes
// up to date.
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.StoreDriver {
	case DriverMongo:
		db, err = mongo.NewStore(ctx, app.cfg.MongoURI, app.cfg.MongoDatabase)
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database ready", "driver", app.cfg.StoreDriver)
	return nil
}

func (app *Application) initAssets(ctx context.Context) error {
	switch app.cfg.AssetDriver {
	case DriverS3:
		s3Store, err := assets.NewS3Store(ctx, assets.S3Config{
			Bucket:    app.cfg.S3.Bucket,
			Region:    app.cfg.S3.Region,
			Endpoint:  app.cfg.S3.Endpoint,
			AccessKey: app.cfg.S3.AccessKey,
			SecretKey: app.cfg.S3.SecretKey,
			Prefix:    "profile-images/",
		})
		if err != nil {
			return fmt.Errorf("failed to initialize s3 asset store: %w", err)
		}
		app.files = s3Store

	default:
		local, err := assets.NewLocalStore(app.cfg.AssetDir())
		if err != nil {
			return fmt.Errorf("failed to initialize asset directory: %w", err)
		}
		app.files = local
	}

	app.logger.Info("asset store ready", "driver", app.cfg.AssetDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.profileService = &service.ProfileService{Store: app.db}
	app.imageService = &service.ImageService{Store: app.db, Assets: app.files}
	app.userService = &service.UserService{Store: app.db}
	app.itemService = &service.ItemService{Store: app.db}

	if app.signer != nil {
		app.tokenService = &service.TokenService{
			Store:     app.db,
			Signer:    app.signer,
			Issuer:    app.cfg.JWTIssuer,
			AccessTTL: app.cfg.TokenTTL,
		}
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	cors := httpx.DefaultCORSConfig()
	cors.AllowOrigin = app.cfg.CORSAllowOrigin

	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.files,
		app.logger,
		httpapi.Options{
			Env:            app.cfg.Env,
			MaxUploadBytes: app.cfg.MaxUploadBytes,
			RateLimits:     app.cfg.RateLimits,
			CORS:           cors,
		},
	)

	router.ProfileService = app.profileService
	router.ImageService = app.imageService
	router.UserService = app.userService
	router.ItemService = app.itemService
	router.TokenService = app.tokenService // nil disables /auth/token
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
