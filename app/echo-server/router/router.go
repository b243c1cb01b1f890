package router

import (
	"partsHub/internal/middleware"
	"partsHub/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.PUT("/:id", handler.UpdateUser, authRequired, middleware.SelfOrAdmin())
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, adminOnly)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, sellerOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.GET("/mine", handler.GetMyProducts, authRequired, sellerOnly)
	products.POST("", handler.CreateProduct, authRequired, sellerOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, sellerOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, sellerOnly)
	products.POST("/:id/ratings", handler.RateProduct, authRequired)
}

func SetupSearchRoutes(api *echo.Group, handler *rest.SearchHandler) {
	api.GET("/search", handler.Search)
	api.GET("/trending", handler.Trending)
	api.GET("/fitment/:product_id", handler.CheckFitment)
}

func SetOrdersRoutes(api *echo.Group, ordersHandler *rest.OrdersHandler) {
	orders := api.Group("/orders", middleware.AuthMiddleware())
	orders.POST("", ordersHandler.CreateOrder)
	orders.GET("", ordersHandler.GetAllOrders)
	orders.GET("/:id", ordersHandler.GetOrderByID)
	orders.PUT("/:id/status", ordersHandler.UpdateOrderStatus)
	orders.DELETE("/:id", ordersHandler.DeleteOrder)
}

func SetupCategoryRoutes(api *echo.Group, handler *rest.CategoryHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	categories := api.Group("/categories")

	categories.GET("", handler.GetAllCategories)
	categories.GET("/:id", handler.GetCategoryByID)
	categories.POST("", handler.CreateCategory, authRequired, adminOnly)
	categories.PUT("/:id", handler.UpdateCategory, authRequired, adminOnly)
	categories.DELETE("/:id", handler.DeleteCategory, authRequired, adminOnly)
}
