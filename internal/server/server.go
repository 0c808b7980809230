// Package server assembles the HTTP stack: services, handlers, middleware and routes.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"gorm.io/gorm"

	_ "finvault/internal/docs" // registers the swagger document
	"finvault/internal/handlers"
	"finvault/internal/middleware"
	"finvault/internal/services"
)

// Options configures the router.
type Options struct {
	DefaultUserID      string
	CORSAllowedOrigins []string
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *limiter.Limiter
}

// Services is the service graph behind the router.
type Services struct {
	Accounts     services.AccountServicer
	Transactions services.TransactionServicer
	Bills        services.BillServicer
	Savings      services.SavingsServicer
	Circles      services.CircleServicer
	Investments  services.InvestmentServicer
	Audit        services.AuditServicer
}

// NewServices wires every service over db around one ledger store and balance mutator.
func NewServices(db *gorm.DB) *Services {
	ledger := services.NewLedgerStore(db)
	mutator := services.NewBalanceMutator(ledger)
	return &Services{
		Accounts:     services.NewAccountService(db, ledger, mutator),
		Transactions: services.NewTransactionService(db, ledger, mutator),
		Bills:        services.NewBillService(db, mutator),
		Savings:      services.NewSavingsService(db, mutator),
		Circles:      services.NewCircleService(db, mutator),
		Investments:  services.NewInvestmentService(db, ledger, mutator),
		Audit:        services.NewAuditService(db),
	}
}

// NewRouter builds the Gin engine with middleware and the /api/v1 routes.
func NewRouter(svc *Services, opts Options) *gin.Engine {
	accountHandler := handlers.NewAccountHandler(svc.Accounts, svc.Audit)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions, svc.Audit)
	billHandler := handlers.NewBillHandler(svc.Bills, svc.Audit)
	savingsHandler := handlers.NewSavingsHandler(svc.Savings, svc.Audit)
	circleHandler := handlers.NewCircleHandler(svc.Circles, svc.Audit)
	investmentHandler := handlers.NewInvestmentHandler(svc.Investments, svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	if len(opts.CORSAllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSAllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:  []string{"Content-Type", middleware.UserIDHeader, middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	if opts.RateLimiter != nil {
		router.Use(middleware.RateLimit(opts.RateLimiter))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity(opts.DefaultUserID))

	accounts := v1.Group("/accounts")
	accounts.GET("", accountHandler.GetUserAccounts)
	accounts.GET("/:type", accountHandler.GetAccount)
	accounts.PATCH("/:type/balance", accountHandler.UpdateBalance)
	accounts.POST("/transfer", accountHandler.Transfer)
	accounts.POST("/top-up", accountHandler.TopUpStash)
	accounts.POST("/withdraw", accountHandler.WithdrawStash)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)

	bills := v1.Group("/bills")
	bills.POST("", billHandler.CreateBill)
	bills.GET("", billHandler.GetUserBills)
	bills.GET("/:id", billHandler.GetBillByID)
	bills.POST("/:id/pay", billHandler.PayBill)

	plans := v1.Group("/savings/plans")
	plans.POST("", savingsHandler.CreatePlan)
	plans.GET("", savingsHandler.GetUserPlans)
	plans.PATCH("/:id", savingsHandler.UpdatePlan)
	plans.POST("/:id/transactions", savingsHandler.RecordTransaction)

	circles := v1.Group("/circles")
	circles.POST("", circleHandler.CreateCircle)
	circles.GET("", circleHandler.GetCircles)
	circles.GET("/:id", circleHandler.GetCircleByID)
	circles.POST("/:id/join", circleHandler.JoinCircle)
	circles.POST("/:id/leave", circleHandler.LeaveCircle)
	circles.POST("/:id/contribute", circleHandler.Contribute)

	investments := v1.Group("/investments")
	investments.POST("", investmentHandler.AddInvestment)
	investments.GET("", investmentHandler.GetPortfolio)
	investments.PATCH("/:id/value", investmentHandler.UpdateValue)
	investments.POST("/:id/liquidate", investmentHandler.Liquidate)

	return router
}
