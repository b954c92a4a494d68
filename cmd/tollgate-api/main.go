// README: Entry point; loads config, wires services, starts HTTP server and retention sweeper.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tollgate/internal/config"
	httptransport "tollgate/internal/http"
	"tollgate/internal/infra"
	"tollgate/internal/modules/tariff"
	"tollgate/internal/modules/tax"
)

const serverShutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	calc := tax.NewCalculator(tariff.Default())
	taxStore := tax.NewStore(dbPool)
	taxCache := tax.NewCache(redisClient, cfg.CacheTTL())
	taxSvc := tax.NewService(calc, taxStore, taxCache, logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Tax: taxSvc,
		Log: logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go taxSvc.RunRetentionSweeper(ctx, cfg.AuditSweepInterval(), cfg.AuditRetention())

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
