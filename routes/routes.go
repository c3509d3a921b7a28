package routes

import (
	"github.com/rahul202k24/RestaurantPro/configs"
	"github.com/rahul202k24/RestaurantPro/controllers"
	"github.com/rahul202k24/RestaurantPro/middlewares"
	"github.com/rahul202k24/RestaurantPro/repository"
	"github.com/rahul202k24/RestaurantPro/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	gatewayRepo := repository.NewGatewayRepository(db)
	qrRepo := repository.NewQrCodeRepository(db)
	userRepo := repository.NewUserRepository(db)

	// The confirmation mail is best-effort; without SMTP it only logs.
	var mailer services.Mailer
	if cfg.SMTPAddr != "" {
		mailer = &services.SMTPMailer{
			Addr:     cfg.SMTPAddr,
			Host:     cfg.SMTPHost,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		}
	} else {
		mailer = &services.LogMailer{Log: log}
	}

	// Services
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo)
	qrSvc := services.NewQrCodeService(qrRepo, cfg.BaseURL)
	reportSvc := services.NewReportService(db)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	paymentSvc := services.NewPaymentService(db, orderRepo, txnRepo, gatewayRepo, mailer, log)
	paymentSvc.NotifyFrom = cfg.MailFrom

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, txnRepo)
	qrCtrl := controllers.NewQrCodeController(qrSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	authCtrl := controllers.NewAuthController(authSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	gatewayCtrl := controllers.NewGatewayController(gatewayRepo)

	staff := middlewares.AuthMiddleware(cfg.JWTSecret)
	admin := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.GET("/me", staff, authCtrl.Me)
	}

	// Menu — reads are public, they back the customer-facing table menu.
	menu := api.Group("/menu")
	{
		menu.GET("/categories", menuCtrl.ListCategories)
		menu.POST("/categories", staff, menuCtrl.CreateCategory)
		menu.GET("/items", menuCtrl.ListItems)
		menu.POST("/items", staff, menuCtrl.CreateItem)
	}

	// QR codes
	api.GET("/qr-codes", qrCtrl.List)
	api.POST("/qr-codes", staff, qrCtrl.Create)
	api.GET("/qr-codes/:id/image", qrCtrl.Image)

	// Orders & payment
	api.GET("/orders", staff, orderCtrl.List)
	api.POST("/orders", orderCtrl.Create)
	api.PATCH("/orders/:id/status", staff, orderCtrl.UpdateStatus)
	api.POST("/orders/:id/payment", paymentCtrl.Pay)
	api.GET("/orders/:id/transactions", staff, orderCtrl.ListTransactions)

	// Gateways & reports
	api.GET("/payment-gateways", admin, gatewayCtrl.List)
	api.POST("/payment-gateways", admin, gatewayCtrl.Create)
	api.GET("/reports/sales", staff, reportCtrl.Sales)
}
