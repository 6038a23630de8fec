package handlers

import (
	"github.com/SscSPs/money_planner/cmd/docs"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/middleware"
	"github.com/SscSPs/money_planner/internal/platform/config"
	"github.com/SscSPs/money_planner/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// limiterInstance and tracker may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
	tracker *utils.PosthogClientWrapper,
) {
	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services, limiterInstance, tracker)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
	tracker *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1")
	if limiterInstance != nil {
		v1.Use(middleware.RateLimit(limiterInstance))
	}
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(tracker))

	RegisterTransactionRoutes(v1, services.Transaction)
	RegisterAccountRoutes(v1, services.Account)
	RegisterCategoryRoutes(v1, services.Category)
	RegisterTagRoutes(v1, services.Tag)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
