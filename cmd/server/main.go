package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/config"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/repository/mongodb"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/repository/sheets"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/scheduler"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/server/handlers"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/server/router"
	recordsvc "github.com/Mamlesh18/apex-gaming-cafe/internal/service/records"
	reportingsvc "github.com/Mamlesh18/apex-gaming-cafe/internal/service/reporting"
	"github.com/Mamlesh18/apex-gaming-cafe/pkg/clients/notify"
	"github.com/Mamlesh18/apex-gaming-cafe/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	recordsSvc := recordsvc.NewService(mongoRepo, cfg.Roster.Members, baseLogger.Named("svc.records"))
	reportingSvc := reportingsvc.NewService(mongoRepo, baseLogger.Named("svc.reporting"))

	var ledger sheets.Ledger
	if cfg.Ledger.Enabled() {
		ledger, err = sheets.NewGoogleSheetLedger(context.Background(), cfg.Ledger, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets ledger", zap.Error(err))
		}
		baseLogger.Info("sheets ledger enabled")
	} else {
		baseLogger.Info("sheets ledger disabled")
	}

	var notifier notify.Client
	if cfg.Notify.Enabled() {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("digest webhook enabled")
	}

	engine := router.New(router.Handlers{
		Sessions:  handlers.NewSessionHandler(recordsSvc, baseLogger.Named("handlers.sessions")),
		Food:      handlers.NewFoodHandler(recordsSvc, baseLogger.Named("handlers.food")),
		Visits:    handlers.NewVisitHandler(recordsSvc, baseLogger.Named("handlers.visits")),
		Settings:  handlers.NewSettingsHandler(recordsSvc, baseLogger.Named("handlers.settings")),
		Analytics: handlers.NewAnalyticsHandler(reportingSvc, baseLogger.Named("handlers.analytics")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, ledger, notifier, baseLogger.Named("scheduler"))
	sched.Start()
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
