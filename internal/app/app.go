package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/labstack/echo/v4"
	nats "github.com/nats-io/nats.go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Maksym-Tomusiak/Diploma-API/config"
	googleadapter "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/google"
	httpadapter "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/http"
	v1 "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/http/api/v1"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/http/api/v1/handlers"
	authmw "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/http/middleware"
	natsadapter "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/nats"
	repo "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/postgres"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/usecase"
	pkglog "github.com/Maksym-Tomusiak/Diploma-API/pkg/log"
)

type App struct {
	cfg      *config.Config
	logger   pkglog.Logger
	db       *gorm.DB
	natsConn *nats.Conn
	echo     *echo.Echo
}

func New(ctx context.Context) (*App, error) {
	cfg := config.MustLoad()
	log := pkglog.New(cfg.AppEnv)

	if cfg.SecretKey == config.InsecureDefaultSecret {
		if cfg.AppEnv != "local" {
			return nil, errors.New("SECRET_KEY must be overridden outside local env")
		}
		log.Warn().Msg("running with the default signing secret; tokens are forgeable")
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Document{}, &domain.Template{}, &domain.CheckResult{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		log.Warn().Err(err).Msg("nats unavailable; domain events disabled")
		nc = nil
	}
	events := natsadapter.NewPublisher(nc, cfg.NATSDocumentSubject, cfg.NATSCheckResultSubject)

	userRepo := repo.NewUserRepository(db)
	documentRepo := repo.NewDocumentRepository(db)
	templateRepo := repo.NewTemplateRepository(db)
	checkResultRepo := repo.NewCheckResultRepository(db)

	codec := usecase.NewTokenCodec(cfg.SecretKey)
	googleClient := googleadapter.NewClient(cfg.GoogleClientID, cfg.GoogleClientSecret)

	authService := usecase.NewAuthService(cfg, log, userRepo, googleClient, codec)
	userService := usecase.NewUserService(log, userRepo)
	documentService := usecase.NewDocumentService(log, documentRepo, events)
	templateService := usecase.NewTemplateService(log, templateRepo)
	checkResultService := usecase.NewCheckResultService(log, checkResultRepo, documentRepo, templateRepo, events)

	mw := authmw.NewAuthMiddleware(authService)
	router := httpadapter.NewRouter(cfg, v1.NewRouter(
		handlers.NewAuthHandler(authService, cfg.HTTPBasePath),
		handlers.NewUserHandler(userService),
		handlers.NewDocumentHandler(documentService),
		handlers.NewTemplateHandler(templateService),
		handlers.NewCheckResultHandler(checkResultService),
		mw,
	))

	e := echo.New()
	router.Setup(e)

	return &App{cfg: cfg, logger: log, db: db, natsConn: nc, echo: e}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.echo.Shutdown(shutdownCtx)
	}()
	go func() {
		errCh <- a.echo.Start(fmt.Sprintf("%s:%s", a.cfg.HTTPHost, a.cfg.HTTPPort))
	}()
	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) Close() {
	if a.natsConn != nil {
		_ = a.natsConn.Drain()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// openDB dials postgres with exponential backoff; the database is commonly
// still starting when the API container comes up.
func openDB(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	op := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(cfg.DBConnectionString), &gorm.Config{
			Logger:         loggerForGorm(cfg),
			TranslateError: true,
		})
		return err
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return db, nil
}

func loggerForGorm(cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg.AppEnv == "local" {
		level = logger.Info
	}
	return logger.Default.LogMode(level)
}
