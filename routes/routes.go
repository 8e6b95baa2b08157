package routes

import (
	"time"

	"foodapp-backend/configs"
	"foodapp-backend/controllers"
	"foodapp-backend/middlewares"
	"foodapp-backend/repository"
	"foodapp-backend/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, jwtSecret string, tokenTTL time.Duration) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	customerRepo := repository.NewCustomerRepository(db)
	authRepo := repository.NewCustomerAuthRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	stateRepo := repository.NewStateRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(db, customerRepo, authRepo, jwtSecret, tokenTTL)
	customerSvc := services.NewCustomerService(db, customerRepo)
	restaurantSvc := services.NewRestaurantService(db, restaurantRepo, categoryRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	itemSvc := services.NewItemService(itemRepo, restaurantRepo, categoryRepo)
	addressSvc := services.NewAddressService(db, addressRepo, stateRepo, orderRepo)
	paymentSvc := services.NewPaymentService(paymentRepo)
	orderSvc := services.NewOrderService(db, orderRepo, couponRepo, paymentSvc, addressSvc, restaurantSvc, itemSvc)

	// Controllers
	customerCtl := controllers.NewCustomerController(customerSvc, authSvc)
	categoryCtl := controllers.NewCategoryController(categorySvc)
	restaurantCtl := controllers.NewRestaurantController(restaurantSvc)
	itemCtl := controllers.NewItemController(itemSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	addressCtl := controllers.NewAddressController(addressSvc)
	paymentCtl := controllers.NewPaymentController(paymentSvc)

	auth := middlewares.AuthMiddleware(authSvc)

	// Customer
	r.POST("/customer/signup", customerCtl.Signup)
	r.POST("/customer/login", customerCtl.Login)
	r.POST("/customer/logout", customerCtl.Logout)
	r.PUT("/customer", auth, customerCtl.UpdateProfile)
	r.PUT("/customer/password", auth, customerCtl.UpdatePassword)

	// Browse (public)
	r.GET("/category", categoryCtl.List)
	r.GET("/category/:category_id", categoryCtl.Details)
	r.GET("/restaurant", restaurantCtl.List)
	r.GET("/restaurant/category/:category_id", restaurantCtl.ListByCategory)
	r.GET("/restaurant/name/:restaurant_name", restaurantCtl.ListByName)
	r.GET("/restaurant/:restaurant_id", restaurantCtl.Details)
	r.GET("/item/restaurant/:restaurant_id/category/:category_id", itemCtl.ListByRestaurantAndCategory)
	r.GET("/states", addressCtl.States)
	r.GET("/payment", paymentCtl.List)

	// Protected
	r.PUT("/restaurant/:restaurant_id", auth, restaurantCtl.Rate)
	r.GET("/order/coupon/:coupon_name", auth, orderCtl.CouponByName)
	r.POST("/order", auth, orderCtl.Place)
	r.GET("/order", auth, orderCtl.ListPast)
	r.POST("/address", auth, addressCtl.Save)
	r.GET("/address/customer", auth, addressCtl.ListMine)
	r.DELETE("/address/:address_id", auth, addressCtl.Delete)
}
