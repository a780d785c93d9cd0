package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/configs"
	"github.com/GodfreySilungwe/Quantic/controllers"
	"github.com/GodfreySilungwe/Quantic/middlewares"
	"github.com/GodfreySilungwe/Quantic/repository"
	"github.com/GodfreySilungwe/Quantic/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)

	// Services
	checkoutSvc := services.NewCheckoutService(db, orderRepo)
	reservationSvc := services.NewReservationService(db, reservationRepo, customerRepo)
	newsletterSvc := services.NewNewsletterService(subscriberRepo)

	// Controllers
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(checkoutSvc, orderRepo)
	reservationCtrl := controllers.NewReservationController(reservationSvc, newsletterSvc, reservationRepo)
	newsletterCtrl := controllers.NewNewsletterController(newsletterSvc)
	galleryCtrl := controllers.NewGalleryController(cfg.ImagesDir)
	adminCatCtrl := controllers.NewAdminCategoryController(categoryRepo)
	adminItemCtrl := controllers.NewAdminMenuItemController(menuItemRepo, cfg.ImagesDir)

	// Public
	r.GET("/menu", menuCtrl.List)
	r.POST("/cart/checkout", orderCtrl.Checkout)
	r.POST("/reservations", reservationCtrl.Create)
	r.POST("/newsletter", newsletterCtrl.Signup)
	r.GET("/gallery", galleryCtrl.List)
	r.GET("/images/:filename", galleryCtrl.Serve)

	// Admin (shared secret)
	admin := r.Group("/admin", middlewares.AdminAuth(cfg.AdminSecret))
	{
		admin.GET("/orders", orderCtrl.AdminList)
		admin.GET("/reservations", reservationCtrl.AdminList)

		admin.GET("/categories", adminCatCtrl.List)
		admin.POST("/categories", adminCatCtrl.Create)
		admin.PUT("/categories/:id", adminCatCtrl.Update)
		admin.PATCH("/categories/:id", adminCatCtrl.Update)
		admin.DELETE("/categories/:id", adminCatCtrl.Delete)

		admin.GET("/menu_items", adminItemCtrl.List)
		admin.POST("/menu_items", adminItemCtrl.Create)
		admin.PUT("/menu_items/:id", adminItemCtrl.Update)
		admin.PATCH("/menu_items/:id", adminItemCtrl.Update)
		admin.DELETE("/menu_items/:id", adminItemCtrl.Delete)
	}
}
