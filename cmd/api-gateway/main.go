package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/support-search-api/api/swagger"
	"github.com/noah-isme/support-search-api/internal/handler"
	"github.com/noah-isme/support-search-api/internal/repository"
	"github.com/noah-isme/support-search-api/internal/service"
	"github.com/noah-isme/support-search-api/pkg/cache"
	"github.com/noah-isme/support-search-api/pkg/config"
	"github.com/noah-isme/support-search-api/pkg/database"
	"github.com/noah-isme/support-search-api/pkg/jobs"
	"github.com/noah-isme/support-search-api/pkg/logger"
	"github.com/noah-isme/support-search-api/pkg/tracer"
)

// @title Support Search API
// @version 0.1.0
// @description Search form contract for the support knowledge base, questions and discussion forums
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()
	shutdownTracer, err := tracer.Init(ctx, cfg.ServiceName, cfg.Tracing)
	if err != nil {
		logr.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logr.Warn("failed to shutdown tracer", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, choice cache disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
		redisClient = nil
	}

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Search.ChoiceCacheTTL, logr, cfg.Search.ChoiceCacheEnabled && redisClient != nil)

	choiceRepo := repository.NewChoiceRepository(db)
	choiceSvc := service.NewChoiceService(choiceRepo, cacheSvc, metricsSvc, logr, cfg.Search.ChoiceCacheTTL)

	warmQueue := jobs.NewQueue("choice-warmer", choiceSvc.HandleJob, jobs.QueueConfig{
		Workers:    1,
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
		Logger:     logr,
	})
	warmQueue.Start(ctx)
	defer warmQueue.Stop()
	choiceSvc.UseWarmQueue(warmQueue)
	if cacheSvc.Enabled() {
		choiceSvc.ScheduleWarm()
	}

	searchFormSvc, err := service.NewSearchFormService(choiceSvc, validator.New(), metricsSvc, logr, service.SearchFormConfig{
		Languages: cfg.Search.Languages,
		Location:  cfg.Search.Location(),
	})
	if err != nil {
		logr.Fatal("failed to init search form", zap.Error(err))
	}
	tokenSvc := service.NewTokenService(service.TokenConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer})

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := newRouter(cfg, logr, routeDeps{
		metrics:     metricsSvc,
		tokens:      tokenSvc,
		search:      handler.NewSearchHandler(searchFormSvc, choiceSvc),
		observation: handler.NewMetricsHandler(metricsSvc, db),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}
}
