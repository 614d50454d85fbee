package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/support-search-api/internal/handler"
	"github.com/noah-isme/support-search-api/internal/middleware"
	"github.com/noah-isme/support-search-api/internal/models"
	"github.com/noah-isme/support-search-api/internal/service"
	"github.com/noah-isme/support-search-api/pkg/config"
	"github.com/noah-isme/support-search-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/support-search-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/support-search-api/pkg/middleware/requestid"
)

type routeDeps struct {
	metrics     *service.MetricsService
	tokens      *service.TokenService
	search      *handler.SearchHandler
	observation *handler.MetricsHandler
}

func newRouter(cfg *config.Config, logr *zap.Logger, deps routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Trace(cfg.ServiceName))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.metrics))

	r.GET("/health", deps.observation.Health)
	r.GET("/ready", deps.observation.Ready)
	r.GET("/metrics", deps.observation.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.Locale(), middleware.WithResponseMeta())

	search := api.Group("/search")
	search.GET("/form", deps.search.Form)
	search.GET("/criteria", deps.search.Criteria)
	search.POST("/criteria", deps.search.Criteria)
	search.POST("/choices/refresh",
		middleware.JWT(deps.tokens),
		middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin),
		deps.search.RefreshChoices,
	)

	return r
}
