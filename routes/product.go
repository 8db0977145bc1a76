package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/umar710/Inventory-Management-Backend/controller"
	"github.com/umar710/Inventory-Management-Backend/middleware"
)

// ProductRoutes wires the bearer-token-protected product endpoints.
func ProductRoutes(router *gin.Engine, pc *controller.ProductController, db *gorm.DB, jwtSecret string) {
	products := router.Group("/api/products")
	products.Use(middleware.RequireAuth(db, jwtSecret))
	{
		products.GET("", pc.GetProducts)
		products.POST("", pc.CreateProduct)
		products.GET("/data/categories", pc.GetCategories)
		products.GET("/export", pc.ExportProducts)
		products.POST("/import", pc.ImportProducts)
		products.GET("/:id", pc.GetProductByID)
		products.PUT("/:id", pc.UpdateProduct)
		products.DELETE("/:id", pc.DeleteProduct)
		products.GET("/:id/history", pc.GetHistory)
	}
}
