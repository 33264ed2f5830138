package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/bookloft/bookstore_backend/cmd/docs"
	"github.com/bookloft/bookstore_backend/internal/core/currency"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/middleware"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	catalog *currency.Catalog,
	resolver *currency.Resolver,
) {
	// Health check and metrics live outside the API groups
	registerHomeRoutes(r)
	r.GET("/metrics", middleware.MetricsHandler())

	// Every API route resolves the session; nothing at this level requires one
	v1 := r.Group("/api/v1", middleware.SessionResolver(cfg, services.Token))

	registerAuthRoutes(v1, cfg, services)
	registerCurrencyRoutes(v1, cfg, catalog, resolver)
	registerBookRoutes(v1, cfg, services.Book, resolver)
	registerPostRoutes(v1, services.Post)
	registerOrderRoutes(v1, services.Order)
	registerContactRoutes(v1, services.Contact)
	registerFAQRoutes(v1, services.FAQ)

	// Back-office routes sit behind the admin guard
	admin := v1.Group("/admin", middleware.RequireAdmin(cfg.AdminLoginPath))
	registerAdminBookRoutes(admin, cfg, services.Book, resolver)
	registerAdminPostRoutes(admin, services.Post)
	registerAdminOrderRoutes(admin, services.Order)
	registerAdminContactRoutes(admin, services.Contact)
	registerAdminFAQRoutes(admin, services.FAQ)
	registerAdminUserRoutes(admin, services.User)

	setupSwaggerRoutes(r, cfg)
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
