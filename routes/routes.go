package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/configs"
	"github.com/godz1llla/DAMDI-QR-ORG/controllers"
	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/godz1llla/DAMDI-QR-ORG/middlewares"
	"github.com/godz1llla/DAMDI-QR-ORG/repository"
	"github.com/godz1llla/DAMDI-QR-ORG/services"
	"github.com/godz1llla/DAMDI-QR-ORG/utils"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	sink := utils.NewWhatsAppSender(cfg.GreenAPIID, cfg.GreenAPIToken)
	authSvc := services.NewAuthService(userRepo, restRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(db, restRepo, userRepo)
	tableSvc := services.NewTableService(tableRepo, restRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	staffSvc := services.NewStaffService(userRepo)
	orderSvc := services.NewOrderService(db, orderRepo, sink)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	staffCtrl := controllers.NewStaffController(staffSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	qrCtrl := controllers.NewQRController(tableRepo, restRepo, cfg.BaseURL)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir, cfg.BaseURL)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Public customer surface: scanned menu + order placement
	r.GET("/menu", menuCtrl.Get)
	r.POST("/orders", orderCtrl.Create)

	// Staff board: admins and floor staff
	board := r.Group("/orders", auth(entity.RoleAdmin, entity.RoleStaff), middlewares.RequireRestaurant())
	{
		board.GET("", orderCtrl.List)
		board.GET("/poll", orderCtrl.Poll)
		board.PUT("/:id/status", orderCtrl.UpdateStatus)
	}
	r.GET("/orders/stats", auth(entity.RoleAdmin), middlewares.RequireRestaurant(), orderCtrl.Stats)

	// Tenant administration
	admin := r.Group("", auth(entity.RoleAdmin), middlewares.RequireRestaurant())
	{
		admin.GET("/tables", tableCtrl.List)
		admin.POST("/tables", tableCtrl.Create)
		admin.DELETE("/tables/:id", tableCtrl.Delete)

		admin.POST("/menu/categories", menuCtrl.CreateCategory)
		admin.DELETE("/menu/categories/:id", menuCtrl.DeleteCategory)
		admin.POST("/menu/items", menuCtrl.CreateItem)
		admin.PUT("/menu/items/:id", menuCtrl.UpdateItem)
		admin.DELETE("/menu/items/:id", menuCtrl.DeleteItem)

		admin.GET("/staff", staffCtrl.List)
		admin.POST("/staff", staffCtrl.Create)
		admin.DELETE("/staff/:id", staffCtrl.Delete)

		admin.GET("/qr/generate", qrCtrl.Generate)
		admin.GET("/qr/preview", qrCtrl.Preview)

		admin.POST("/upload/image", uploadCtrl.Image)

		admin.GET("/restaurants/my", restCtrl.My)
		admin.PUT("/restaurants/my", restCtrl.UpdateMy)
	}
	r.GET("/restaurants/limits", auth(entity.RoleAdmin, entity.RoleStaff), middlewares.RequireRestaurant(), restCtrl.Limits)

	// Platform administration
	super := r.Group("/restaurants", auth(entity.RoleSuperAdmin))
	{
		super.GET("", restCtrl.List)
		super.POST("", restCtrl.Create)
		super.GET("/stats", restCtrl.PlatformStats)
		super.PUT("/:id", restCtrl.AdminUpdate)
		super.DELETE("/:id", restCtrl.Delete)
	}
}
