package router

import (
	"net/http"
	"time"

	"moneyflow/api"
	"moneyflow/config"
	_ "moneyflow/docs"
	"moneyflow/middleware"
	"moneyflow/money"
	"moneyflow/repository"
	"moneyflow/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	loc := cfg.Ledger.Location
	locale := money.LocaleByName(cfg.Ledger.CurrencyLocale, money.BRL)

	mailer := service.NewEmailService(&cfg.Email, cfg.Server.BaseURL)
	userService := service.NewUserService(db, mailer)
	accountService := service.NewAccountService(db)
	categoryService := service.NewCategoryService(db)
	transactionService := service.NewTransactionService(repository.NewLedgerRepository(db), loc)
	dashboardService := service.NewDashboardService(db, loc, locale, cfg.Ledger.RecentLimit)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg, userService)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", middleware.LoginRateLimit(10, time.Minute), authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/profile", authHandler.UpdateProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)
			authorized.DELETE("/auth/account", authHandler.DeleteAccount)

			accountHandler := api.NewAccountHandler(accountService)
			accounts := authorized.Group("/accounts")
			{
				accounts.POST("", accountHandler.Create)
				accounts.GET("", accountHandler.List)
				accounts.GET("/:id", accountHandler.Get)
				accounts.PUT("/:id", accountHandler.Update)
				accounts.DELETE("/:id", accountHandler.Delete)
				accounts.GET("/:id/audit", accountHandler.Audit)
				accounts.POST("/:id/repair", accountHandler.Repair)
			}

			categoryHandler := api.NewCategoryHandler(categoryService)
			categories := authorized.Group("/categories")
			{
				categories.POST("", categoryHandler.Create)
				categories.GET("", categoryHandler.List)
				categories.GET("/:id", categoryHandler.Get)
				categories.PUT("/:id", categoryHandler.Update)
				categories.DELETE("/:id", categoryHandler.Delete)
			}

			transactionHandler := api.NewTransactionHandler(transactionService, loc, locale)
			transactions := authorized.Group("/transactions")
			{
				transactions.POST("", transactionHandler.Create)
				transactions.GET("", transactionHandler.List)
				transactions.GET("/export", transactionHandler.Export)
				transactions.GET("/:id", transactionHandler.Get)
				transactions.PUT("/:id", transactionHandler.Update)
				transactions.DELETE("/:id", transactionHandler.Delete)
			}

			dashboardHandler := api.NewDashboardHandler(dashboardService)
			authorized.GET("/dashboard", dashboardHandler.Summary)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	return r
}
