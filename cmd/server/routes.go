package main

import (
	"github.com/gin-gonic/gin"
	"orderlink.backend/internal/interfaces/http/handlers"
	"orderlink.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	publicHandler      *handlers.PublicHandler
	adminHandler       *handlers.AdminHandler
	merchantHandler    *handlers.MerchantHandler
	authMiddleware     gin.HandlerFunc
	adminKeyMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Storefront routes (public)
		public := v1.Group("/public")
		{
			public.GET("/restaurants/:slug/menu", d.publicHandler.GetMenu)
			public.POST("/restaurants/:slug/orders", d.publicHandler.CreateOrder)
			public.POST("/orders/:orderId/mark-sent", d.publicHandler.MarkOrderSent)
			public.POST("/merchants/register", d.publicHandler.RegisterMerchant)
		}

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Merchant panel routes (protected, merchant-scoped)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireMerchant())
		{
			admin.GET("/restaurant", d.adminHandler.GetRestaurant)
			admin.PUT("/restaurant", d.adminHandler.UpdateRestaurant)

			admin.GET("/categories", d.adminHandler.ListCategories)
			admin.POST("/categories", d.adminHandler.CreateCategory)
			admin.PUT("/categories/:id", d.adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", d.adminHandler.DeleteCategory)

			admin.GET("/products", d.adminHandler.ListProducts)
			admin.POST("/products", d.adminHandler.CreateProduct)
			admin.PUT("/products/:id", d.adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", d.adminHandler.DeleteProduct)

			admin.GET("/orders", d.adminHandler.ListOrders)
			admin.GET("/orders/:id", d.adminHandler.GetOrder)
		}

		// Back-office routes (static admin key)
		merchants := v1.Group("/merchants")
		merchants.Use(d.adminKeyMiddleware)
		{
			merchants.POST("", d.merchantHandler.CreateMerchant)
			merchants.GET("", d.merchantHandler.ListMerchants)
		}
		users := v1.Group("/users")
		users.Use(d.adminKeyMiddleware)
		{
			users.POST("", d.merchantHandler.CreateUser)
			users.DELETE("/:id", d.merchantHandler.DeactivateUser)
		}
	}
}
