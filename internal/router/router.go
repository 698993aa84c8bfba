// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/himalayanharvest/storefront/internal/config"
	"github.com/himalayanharvest/storefront/internal/handlers"
	"github.com/himalayanharvest/storefront/internal/middleware"
	"github.com/himalayanharvest/storefront/internal/services"
	"github.com/himalayanharvest/storefront/internal/store"
)

func Initialize(st *store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	paymentService := services.NewPaymentService(cfg)
	sitemapService := services.NewSitemapService(st.Catalog, cfg)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(st.Catalog)
	cartHandler := handlers.NewCartHandler(st.Cart, st.Catalog)
	reviewHandler := handlers.NewReviewHandler(st.Reviews)
	wishlistHandler := handlers.NewWishlistHandler(st.Wishlist, st.Catalog)
	orderHandler := handlers.NewOrderHandler(st.Orders)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	seoHandler := handlers.NewSEOHandler(sitemapService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Frontend.BaseURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// SEO surface, generated from the live catalog
	r.GET("/sitemap.xml", seoHandler.Sitemap)
	r.GET("/robots.txt", seoHandler.Robots)

	// API routes
	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:slug", productHandler.GetProductBySlug)
			products.POST("", productHandler.CreateProduct)
			products.PATCH("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		cart := api.Group("/cart")
		{
			cart.POST("/add", cartHandler.AddCartItem)
			cart.GET("/:sessionId", cartHandler.GetCartItems)
			cart.POST("/:sessionId/clear", cartHandler.ClearCart)
			cart.DELETE("/:id", cartHandler.RemoveCartItem)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/:productId", reviewHandler.GetReviews)
			reviews.POST("", reviewHandler.AddReview)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("/check/:productId/:sessionId", wishlistHandler.CheckWishlist)
			wishlist.GET("/:sessionId", wishlistHandler.GetWishlistItems)
			wishlist.POST("", wishlistHandler.AddToWishlist)
			wishlist.DELETE("/:id", wishlistHandler.RemoveFromWishlist)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.PATCH("/:id", orderHandler.UpdateOrderStatus)
		}

		api.GET("/analytics", orderHandler.GetAnalytics)

		razorpay := api.Group("/razorpay")
		{
			razorpay.POST("/order", paymentHandler.CreateOrder)
			razorpay.POST("/verify", paymentHandler.VerifyPayment)
		}
	}

	return r
}
