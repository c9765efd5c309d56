package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/configs"
	"github.com/dontkeep/order-menu-backend/controllers"
	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/middlewares"
	"github.com/dontkeep/order-menu-backend/repository"
	"github.com/dontkeep/order-menu-backend/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	trxRepo := repository.NewTransactionRepository(db)
	ongkirRepo := repository.NewOngkirRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, sessionRepo, cfg.JWTSecret, cfg.SessionTTL)
	catalogSvc := services.NewCatalogService(categoryRepo, menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	shippingSvc := services.NewShippingService(ongkirRepo)
	paymentSvc := services.NewPaymentService(cfg.MidtransServerKey, cfg.MidtransBaseURL)
	trxSvc := services.NewTransactionService(db, trxRepo, cartRepo, menuRepo, userRepo, shippingSvc, paymentSvc)
	reportSvc := services.NewReportService(reportRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	profileCtrl := controllers.NewProfileController(authSvc)
	categoryCtrl := controllers.NewCategoryController(catalogSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc, cfg.UploadDir)
	cartCtrl := controllers.NewCartController(cartSvc, trxSvc)
	trxCtrl := controllers.NewTransactionController(trxSvc, cfg.UploadDir)
	paymentCtrl := controllers.NewPaymentController(trxSvc)
	ongkirCtrl := controllers.NewOngkirController(shippingSvc)
	adminCtrl := controllers.NewAdminController(userRepo, reportSvc, catalogSvc)

	authed := middlewares.AuthMiddleware(db, cfg.JWTSecret)
	staff := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleAdmin, entity.RoleEmployee)
	adminOnly := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleAdmin)

	// Auth
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/logout", authed, authCtrl.Logout)
		auth.GET("/me", authed, authCtrl.Me)
	}

	// Public catalog reads
	r.GET("/categories", categoryCtrl.List)
	r.GET("/menus", menuCtrl.List)
	r.GET("/menus/:id", menuCtrl.Get)
	r.GET("/ongkir", ongkirCtrl.List)

	// Profile
	profile := r.Group("/profile", authed)
	{
		profile.GET("", profileCtrl.Get)
		profile.PUT("", profileCtrl.Update)
	}

	// Cart
	cart := r.Group("/cart", authed)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.Add)
		cart.GET("/total", cartCtrl.Total)
		cart.POST("/checkout", cartCtrl.Checkout)
		cart.PUT("/:menu_id", cartCtrl.UpdateQty)
		cart.DELETE("/:menu_id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Transactions
	trx := r.Group("/transactions")
	{
		// gateway webhook, deliberately unauthenticated
		trx.POST("/payment-confirmation", trxCtrl.PaymentConfirmation)

		trx.GET("", authed, trxCtrl.ListMine)
		trx.GET("/all", staff, trxCtrl.ListAll)
		trx.GET("/:id", authed, trxCtrl.Detail)
		trx.POST("/:id/payment-proof", authed, trxCtrl.UploadProof)
		trx.PUT("/:id/confirm", authed, trxCtrl.Confirm)
		trx.PUT("/:id/dispute", authed, trxCtrl.Dispute)
		trx.PUT("/:id/accept", staff, trxCtrl.Accept)
		trx.PUT("/:id/reject", staff, trxCtrl.Reject)
		trx.PUT("/:id/status", adminOnly, trxCtrl.SetStatus)
		trx.POST("/auto-complete", adminOnly, trxCtrl.AutoComplete)
	}

	// Payment
	payment := r.Group("/payment", authed)
	{
		payment.POST("/token/:id", paymentCtrl.RequestToken)
	}

	// Admin
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/users", adminCtrl.Users)
		admin.PATCH("/users/:id/state", adminCtrl.SetUserState)
		admin.PATCH("/users/:id/role", adminCtrl.SetUserRole)

		admin.POST("/categories", categoryCtrl.Create)
		admin.PUT("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)
		admin.PATCH("/categories/:id/restore", categoryCtrl.Restore)

		admin.POST("/menus", menuCtrl.Create)
		admin.PUT("/menus/:id", menuCtrl.Update)
		admin.POST("/menus/:id/image", menuCtrl.UploadImage)
		admin.PATCH("/menus/:id/stock", menuCtrl.UpdateStock)
		admin.DELETE("/menus/:id", menuCtrl.Delete)
		admin.PATCH("/menus/:id/restore", menuCtrl.Restore)

		admin.GET("/reports/summary", adminCtrl.ReportSummary)
		admin.GET("/reports/daily", adminCtrl.ReportDaily)
		admin.GET("/reports/top-items", adminCtrl.ReportTopItems)
		admin.GET("/reports/stock", adminCtrl.ReportStock)
		admin.GET("/reports/sales/export", adminCtrl.ExportSales)
	}
}
