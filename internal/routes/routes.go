package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gymdesk/backend/internal/config"
	"github.com/gymdesk/backend/internal/handlers"
	"github.com/gymdesk/backend/internal/middleware"
	"github.com/gymdesk/backend/internal/services/email"
	"github.com/gymdesk/backend/internal/services/payment"
	"github.com/gymdesk/backend/internal/services/report"
	"github.com/gymdesk/backend/internal/tokenstore"
)

// SetupRouter wires all API routes and middleware
func SetupRouter(db *gorm.DB, cfg *config.Config, tokenStore *tokenstore.TokenStore) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.SecureHeaders())

	rateLimiter := middleware.NewRateLimiter(10, 5, 20, 5)
	router.Use(rateLimiter.IPRateLimiterMiddleware())

	authHandler := handlers.NewAuthHandler(db, tokenStore)
	clientHandler := handlers.NewClientHandler(db, cfg.Uploads, email.NewEmailService(cfg.SMTP))
	planHandler := handlers.NewPlanHandler(db)
	paymentHandler := handlers.NewPaymentHandler(payment.NewPaymentService(db))
	reportHandler := handlers.NewReportHandler(report.NewReportService(db), cfg.Business)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Static("/uploads", cfg.Uploads.Dir)

	authGroup := router.Group("/api/auth")
	authGroup.Use(rateLimiter.AuthRateLimiterMiddleware())
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.RefreshToken)
	}

	authProtected := router.Group("/api/auth")
	authProtected.Use(middleware.AuthMiddleware(tokenStore))
	{
		authProtected.POST("/logout", authHandler.Logout)
		authProtected.GET("/me", authHandler.Me)
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(tokenStore))
	{
		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.ListClients)
			clients.POST("", clientHandler.CreateClient)
			clients.GET("/stats", clientHandler.ClientStats)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
			clients.POST("/:id/photo", clientHandler.UploadPhoto)
		}

		plans := api.Group("/plans")
		{
			plans.GET("", planHandler.ListPlans)
			plans.GET("/:id", planHandler.GetPlan)
			plans.POST("", middleware.AdminMiddleware(), planHandler.CreatePlan)
			plans.PUT("/:id", middleware.AdminMiddleware(), planHandler.UpdatePlan)
			plans.DELETE("/:id", middleware.AdminMiddleware(), planHandler.DeactivatePlan)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", paymentHandler.ListPayments)
			payments.POST("", paymentHandler.CreatePayment)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/dashboard", reportHandler.Dashboard)
			reports.GET("/revenue", reportHandler.Revenue)
			reports.GET("/daily-revenue", reportHandler.DailyRevenue)
			reports.GET("/available-months", reportHandler.AvailableMonths)
			reports.GET("/today", reportHandler.Today)
		}
	}

	return router
}
