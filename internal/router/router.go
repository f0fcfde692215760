package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/majormofor/money-tracker/internal/config"
	"github.com/majormofor/money-tracker/internal/handler"
	"github.com/majormofor/money-tracker/internal/middleware"
	"github.com/majormofor/money-tracker/internal/store"
)

// Setup configures the Gin engine, middleware and API routes.
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		gin.Recovery(),
		middleware.Metrics(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	st := store.New(db)

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(st, cfg.JWT)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWT.Secret, st))

	protected.GET("/me", handler.GetMe)

	profileHandler := handler.NewProfileHandler(st)
	protected.GET("/profile", profileHandler.Get)
	protected.PUT("/profile", profileHandler.Update)
	protected.PUT("/profile/password", profileHandler.ChangePassword)

	categoryHandler := handler.NewCategoryHandler(st)
	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)
	protected.PUT("/categories/:id", categoryHandler.Update)
	protected.DELETE("/categories/:id", categoryHandler.Delete)

	txHandler := handler.NewTransactionHandler(st, cfg.App.PageSize)
	protected.GET("/transactions", txHandler.List)
	protected.POST("/transactions", txHandler.Create)
	protected.PUT("/transactions/:id", txHandler.Update)
	protected.DELETE("/transactions/:id", txHandler.Delete)

	reportHandler := handler.NewReportHandler(st)
	protected.GET("/reports/pl", reportHandler.ProfitAndLoss)
	protected.GET("/reports/pl/export", reportHandler.ExportCSV)
	protected.GET("/reports/pl/export.xlsx", reportHandler.ExportXLSX)
	protected.GET("/reports/dashboard", reportHandler.Dashboard)

	return r
}
