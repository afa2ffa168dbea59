package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"ulascansenturk/pets-service/config"
	"ulascansenturk/pets-service/internal/api/v1/handlers"
	"ulascansenturk/pets-service/internal/db/petstore"
	"ulascansenturk/pets-service/internal/forecast"
	"ulascansenturk/pets-service/internal/metrics"
	"ulascansenturk/pets-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	petRepo, repoErr := initializePetRepository(conf)
	if repoErr != nil {
		logger.Fatal().Err(repoErr).Msg("failed to initialize pet repository")
	}

	generator := forecast.NewGenerator(
		forecast.NewLockedSource(uint64(time.Now().UnixNano())),
		forecast.SystemClock(),
	)

	router := handlers.NewRouter(handlers.RouterOptions{
		ForecastService: service.NewForecastService(generator),
		PetService:      service.NewPetService(petRepo),
		Logger:          logger,
		Timeout:         conf.HTTPTimeoutDuration(),
		Metrics:         metrics.NewHTTPMetrics("pets_service"),
		EnableDocs:      conf.IsDevelopment(),
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().
		Str("env", conf.Env).
		Bool("api_docs", conf.IsDevelopment()).
		Msgf("started server on %s", conf.ServerAddress)

	if serverErr := serve(httpServer); serverErr != nil {
		log.Fatal().Err(serverErr).Msg("server failed")
	}
	<-ctx.Done()
}

// serve blocks until the server stops. A graceful Shutdown is not an error.
func serve(httpServer *http.Server) error {
	err := httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// initializePetRepository falls back to an empty in-memory store in
// development when no database is configured.
func initializePetRepository(conf *config.Config) (petstore.Repository, error) {
	dsn := conf.DatabaseDSN()
	if dsn == "" {
		if conf.IsDevelopment() {
			log.Warn().Msg("no database configured, serving pets from an empty in-memory store")
			return petstore.NewInMemoryRepository(), nil
		}
		return nil, errors.New("PETS_DATABASE or DATABASE_HOST must be set")
	}

	db, err := initializeDatabase(dsn, conf.DBAutoMigrate)
	if err != nil {
		return nil, err
	}

	return petstore.NewRepository(db), nil
}

func initializeDatabase(dsn string, autoMigrate bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if autoMigrate {
		if err := db.AutoMigrate(&petstore.Pet{}); err != nil {
			return nil, fmt.Errorf("failed to migrate pets table: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
