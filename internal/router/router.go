package router

import (
	"github.com/designxpo/poonam-cosmetics-backend/config"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/controller"
	"github.com/designxpo/poonam-cosmetics-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController    *controller.AuthController
	productController *controller.ProductController
	catalogController *controller.CatalogController
	contentController *controller.ContentController
	cartController    *controller.CartController
	orderController   *controller.OrderController
	reviewController  *controller.ReviewController
	uploadController  *controller.UploadController
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	catalogController *controller.CatalogController,
	contentController *controller.ContentController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	reviewController *controller.ReviewController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:    authController,
		productController: productController,
		catalogController: catalogController,
		contentController: contentController,
		cartController:    cartController,
		orderController:   orderController,
		reviewController:  reviewController,
		uploadController:  uploadController,
		authMiddleware:    authMiddleware,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Poonam Cosmetics API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authController.Logout)
			auth.POST("/refresh", r.authController.Refresh)
			auth.GET("/profile", r.authMiddleware.Authenticate(), r.authController.GetProfile)
			auth.PUT("/profile", r.authMiddleware.Authenticate(), r.authController.UpdateProfile)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/:slug", r.productController.GetProductBySlug)
		}

		v1.GET("/categories", r.catalogController.GetCategories)
		v1.GET("/brands", r.catalogController.GetBrands)
		v1.GET("/banners", r.contentController.GetBanners)
		v1.GET("/page-banners/:page", r.contentController.GetPageBanner)
		v1.GET("/collections", r.contentController.GetCollections)
		v1.GET("/collections/:slug", r.contentController.GetCollection)

		cart := v1.Group("/cart")
		cart.Use(r.authMiddleware.Authenticate())
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("/items", r.cartController.AddItem)
			cart.PUT("/items/:id", r.cartController.UpdateItem)
			cart.DELETE("/items/:id", r.cartController.RemoveItem)
			cart.DELETE("", r.cartController.ClearCart)
		}

		orders := v1.Group("/orders")
		{
			// Checkout works for guests and logged-in customers alike.
			orders.POST("/checkout", r.authMiddleware.OptionalAuthenticate(), r.orderController.Checkout)
			orders.POST("/track", r.orderController.TrackOrder)
			orders.POST("/cancel", r.orderController.CancelGuestOrder)

			orders.GET("", r.authMiddleware.Authenticate(), r.orderController.GetMyOrders)
			orders.GET("/:id", r.authMiddleware.Authenticate(), r.orderController.GetMyOrder)
			orders.POST("/:id/cancel", r.authMiddleware.Authenticate(), r.orderController.CancelMyOrder)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.GET("/product/:id", r.reviewController.GetProductReviews)
			reviews.GET("/product/:id/stats", r.reviewController.GetProductReviewStats)
			reviews.POST("/product/:id", r.authMiddleware.Authenticate(), r.reviewController.CreateReview)
			reviews.POST("/:id/helpful", r.authMiddleware.Authenticate(), r.reviewController.ToggleHelpful)
		}

		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			admin.GET("/products", r.productController.AdminGetProducts)
			admin.POST("/products", r.productController.CreateProduct)
			admin.PATCH("/products/bulk", r.productController.BulkAction)
			admin.PUT("/products/:id", r.productController.UpdateProduct)
			admin.DELETE("/products/:id", r.productController.DeleteProduct)

			admin.GET("/categories", r.catalogController.AdminGetCategories)
			admin.POST("/categories", r.catalogController.CreateCategory)
			admin.PUT("/categories/:id", r.catalogController.UpdateCategory)
			admin.DELETE("/categories/:id", r.catalogController.DeleteCategory)

			admin.GET("/brands", r.catalogController.AdminGetBrands)
			admin.POST("/brands", r.catalogController.CreateBrand)
			admin.PUT("/brands/:id", r.catalogController.UpdateBrand)
			admin.DELETE("/brands/:id", r.catalogController.DeleteBrand)

			admin.GET("/banners", r.contentController.AdminGetBanners)
			admin.POST("/banners", r.contentController.CreateBanner)
			admin.PUT("/banners/:id", r.contentController.UpdateBanner)
			admin.DELETE("/banners/:id", r.contentController.DeleteBanner)

			admin.GET("/page-banners", r.contentController.AdminGetPageBanners)
			admin.POST("/page-banners", r.contentController.CreatePageBanner)
			admin.PUT("/page-banners/:id", r.contentController.UpdatePageBanner)
			admin.DELETE("/page-banners/:id", r.contentController.DeletePageBanner)

			admin.GET("/collections", r.contentController.AdminGetCollections)
			admin.POST("/collections", r.contentController.CreateCollection)
			admin.PUT("/collections/:id", r.contentController.UpdateCollection)
			admin.DELETE("/collections/:id", r.contentController.DeleteCollection)

			admin.GET("/orders", r.orderController.AdminGetOrders)
			admin.GET("/orders/stats", r.orderController.AdminOrderStats)
			admin.GET("/orders/export", r.orderController.AdminExportOrders)
			admin.PATCH("/orders/bulk-update", r.orderController.AdminBulkUpdateStatus)
			admin.GET("/orders/:id", r.orderController.AdminGetOrder)
			admin.PUT("/orders/:id/status", r.orderController.AdminUpdateOrderStatus)

			admin.GET("/reviews", r.reviewController.AdminGetReviews)
			admin.POST("/reviews/:id/approve", r.reviewController.AdminApproveReview)
			admin.POST("/reviews/:id/reject", r.reviewController.AdminRejectReview)
			admin.POST("/reviews/:id/respond", r.reviewController.AdminRespondToReview)
			admin.DELETE("/reviews/:id", r.reviewController.AdminDeleteReview)

			admin.POST("/upload/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
