package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakeryBooker/internal/cleanup"
	"bakeryBooker/internal/config"
	"bakeryBooker/internal/http-server/router"
	"bakeryBooker/internal/lib/logger/handlers/slogpretty"
	"bakeryBooker/internal/lib/logger/sl"
	"bakeryBooker/internal/notifier"
	"bakeryBooker/internal/notifier/mailer"
	"bakeryBooker/internal/reservation"
	"bakeryBooker/internal/storage"
	"bakeryBooker/internal/storage/mongo"
	"bakeryBooker/internal/storage/postgres"
)

const shutdownTimeout = 10 * time.Second

type recordStore interface {
	reservation.Store
	cleanup.Store
	Close(ctx context.Context) error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting bakery booker",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)
	log.Debug("Debug messages are enabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.Connect[recordStore](ctx, log, cfg.Storage.ConnectAttempts, func(ctx context.Context) (recordStore, error) {
		return openStore(ctx, cfg)
	})
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	loc, _ := cfg.Cleanup.Location()
	sweeper := cleanup.New(log, store, loc)

	// Past reservations are gone before the first request is served.
	_ = sweeper.Sweep(ctx)

	var n reservation.Notifier
	if cfg.Mail.Enabled() {
		n = mailer.New(cfg.Mail)
	} else {
		log.Warn("mail credentials not set, customer emails are only logged")
		n = notifier.NewLogNotifier(log)
	}

	svc := reservation.New(log, store, n)

	handler := router.New(log, svc, router.Options{
		AllowedOrigin: cfg.HTTPServer.AllowedOrigin,
		RateLimit:     cfg.HTTPServer.RateLimit,
		RateBurst:     cfg.HTTPServer.RateBurst,
		TrustProxy:    cfg.HTTPServer.TrustProxy,
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		sweeper.Run(ctx, cfg.Cleanup.Interval)
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancel()
	<-sweepDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(shutdownCtx); err != nil {
		log.Error("failed to close storage connection", sl.Err(err))
	}

	log.Info("storage connection closed")
}

func openStore(ctx context.Context, cfg *config.Config) (recordStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		s, err := postgres.InitDB(ctx, cfg.Storage.PostgresDSN, cfg.Storage.Timeout)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		s, err := mongo.Open(ctx, cfg.Storage.MongoURI, cfg.Storage.Database, cfg.Storage.Timeout)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
