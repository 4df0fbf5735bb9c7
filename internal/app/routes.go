package app

import (
	"github.com/DoaaAltair/Elite-Home/internal/auth"
	"github.com/DoaaAltair/Elite-Home/internal/cache"
	"github.com/DoaaAltair/Elite-Home/internal/config"
	"github.com/DoaaAltair/Elite-Home/internal/handlers"
	"github.com/DoaaAltair/Elite-Home/internal/repo"
	"github.com/DoaaAltair/Elite-Home/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	accountRepo := repo.NewPGAccountRepo(db)
	authSvc := service.NewAuthService(accountRepo, auth.NewBcryptHasher(0))
	authHandler := handlers.NewAuthHandler(authSvc)
	registerAuthRoutes(r, authHandler)

	apartmentRepo := repo.NewPGApartmentRepo(db)
	listingCache := cache.NewListingCache(rdb, cfg.Redis.DefaultTTL.Duration())
	listingSvc := service.NewListingService(apartmentRepo, listingCache)
	apartmentHandler := handlers.NewApartmentHandler(listingSvc)
	registerApartmentRoutes(r, apartmentHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Elite Home API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"message": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerApartmentRoutes(r *gin.Engine, h *handlers.ApartmentHandler) {
	r.GET("/apartments", h.List)
	r.GET("/apartments/:id", h.GetByID)
	r.POST("/apartments", h.Create)
	r.PUT("/apartments/:id", h.Update)
	r.DELETE("/apartments/:id", h.Delete)
	r.PATCH("/apartments/:id/household-done", h.HouseholdDone)
}

func registerAuthRoutes(r *gin.Engine, h *handlers.AuthHandler) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
}
