package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/bizdash/internal/config"
	"github.com/mamadbah2/bizdash/internal/latency"
	"github.com/mamadbah2/bizdash/internal/repository/mongodb"
	"github.com/mamadbah2/bizdash/internal/repository/sheets"
	"github.com/mamadbah2/bizdash/internal/scheduler"
	"github.com/mamadbah2/bizdash/internal/server/handlers"
	"github.com/mamadbah2/bizdash/internal/server/router"
	"github.com/mamadbah2/bizdash/internal/service/access"
	reportingsvc "github.com/mamadbah2/bizdash/internal/service/reporting"
	"github.com/mamadbah2/bizdash/internal/store"
	whatsappclient "github.com/mamadbah2/bizdash/pkg/clients/whatsapp"
	"github.com/mamadbah2/bizdash/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(logger.Options{Level: cfg.Log.Level, Development: cfg.Server.Development()}))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	delayer, err := newDelayer(cfg.Mock)
	if err != nil {
		baseLogger.Fatal("invalid mock latency", zap.Error(err))
	}

	accessSvc := access.NewService(store.Seeded(),
		access.WithDelayer(delayer),
		access.WithLogger(baseLogger.Named("svc.access")),
	)

	var (
		reportOpts  []reportingsvc.Option
		handlerOpts []handlers.Option
	)

	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		reportOpts = append(reportOpts, reportingsvc.WithSnapshots(mongoRepo))
		handlerOpts = append(handlerOpts, handlers.WithHistory(mongoRepo))
		baseLogger.Info("summary snapshots enabled", zap.String("db", cfg.MongoDB.DBName))
	}

	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		reportOpts = append(reportOpts, reportingsvc.WithLedger(sheetsRepo))
		baseLogger.Info("ledger export enabled")
	}

	if cfg.WhatsApp.Enabled() {
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		reportOpts = append(reportOpts, reportingsvc.WithSender(whatsappclient.NewDigestSender(whatsClient, cfg.WhatsApp.DigestRecipient)))
		baseLogger.Info("whatsapp digest delivery enabled")
	} else {
		baseLogger.Warn("whatsapp credentials missing, weekly digest is only logged")
	}

	reportingSvc := reportingsvc.NewService(accessSvc, baseLogger.Named("svc.reporting"), reportOpts...)
	dashboardHandler := handlers.NewDashboardHandler(accessSvc, reportingSvc, baseLogger.Named("handlers.dashboard"), handlerOpts...)
	engine := router.New(dashboardHandler, baseLogger.Named("router"))

	sched, err := scheduler.NewScheduler(cfg.Reporting, reportingSvc, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newDelayer(cfg config.MockConfig) (latency.Delayer, error) {
	d, profile, err := cfg.ParseLatency()
	if err != nil {
		return nil, err
	}
	if profile {
		return latency.Default(), nil
	}
	return latency.Fixed(d), nil
}
