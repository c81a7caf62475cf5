package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "bark-backend/internal/adapter/http"
	mw "bark-backend/internal/adapter/middleware"
	"bark-backend/internal/adapter/repository/mysql"
	"bark-backend/internal/config"
	"bark-backend/internal/domain/workflow"
	"bark-backend/internal/infrastructure/cache"
	"bark-backend/internal/infrastructure/db"
	"bark-backend/internal/infrastructure/logger"
	analyticsuc "bark-backend/internal/usecase/analytics"
	customeruc "bark-backend/internal/usecase/customer"
	jobuc "bark-backend/internal/usecase/job"
	repairjobuc "bark-backend/internal/usecase/repairjob"
	statusuc "bark-backend/internal/usecase/status"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}
	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		return err
	}
	if cfg.MySQLMigrate {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
	}
	if cfg.SeedStatuses {
		n, err := db.SeedStatuses(ctx, gdb)
		if err != nil {
			return err
		}
		log.Info("status catalogue seeded", zap.Int64("inserted", n))
	}

	// repositories
	statuses := mysql.NewStatusRepository(gdb)
	customers := mysql.NewCustomerRepository(gdb)
	vehicles := mysql.NewVehicleRepository(gdb)
	insurers := mysql.NewInsuranceRepository(gdb)
	jobs := mysql.NewJobRepository(gdb)
	repairJobs := mysql.NewRepairJobRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	policy := workflow.DefaultPolicy()
	policy.OverdueAfter = time.Duration(cfg.OverdueAfterDays) * 24 * time.Hour

	handlers := httpadp.Handlers{
		Health:     httpadp.NewHandler(),
		Statuses:   httpadp.NewStatusHandler(statusuc.NewUsecase(statuses, log), log),
		Customers:  httpadp.NewCustomerHandler(customeruc.NewUsecase(customers, vehicles, insurers, cfg.PhoneRegion, log), log),
		Tracker:    httpadp.NewTrackerJobHandler(jobuc.NewUsecase(jobs, statuses, tx, policy, cfg.PhoneRegion, log), log),
		RepairJobs: httpadp.NewRepairJobHandler(repairjobuc.NewUsecase(repairJobs, statuses, tx, policy, cfg.PhoneRegion, log), log),
		Analytics:  httpadp.NewAnalyticsHandler(analyticsuc.NewUsecase(mysql.NewAnalyticsReader(gdb), policy, log), log),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error("panic recovered", zap.Error(err), zap.ByteString("stack", stack))
			return err
		},
	}))
	e.Use(mw.RequestLogger(log))

	var mutating []echo.MiddlewareFunc
	if cfg.IdempEnabled {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB, log)
		if err != nil {
			return err
		}
		defer rdb.Close()
		ttl := time.Duration(cfg.IdempTTLSecs) * time.Second
		mutating = append(mutating, mw.Idempotency(rdb, ttl, log))
	}
	httpadp.Register(e, handlers, mutating...)

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
