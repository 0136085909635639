package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodapi/controllers"
	"foodapi/logger"
	"foodapi/middlewares"
	"foodapi/repositories"
	"foodapi/schemas"
)

// SetupRouter wires middleware, the food endpoints and the static
// root/health endpoints onto a gin engine.
func SetupRouter(db *gorm.DB, log *logger.Logger) *gin.Engine {
	schemas.RegisterValidations()

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.CORS())
	r.Use(middlewares.Recovery(log))
	r.Use(middlewares.ErrorHandler(log))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Food Nutrition API",
			"version": "1.0.0",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	foodCtrl := controllers.NewFoodController(repositories.NewFoodRepository(db, log))

	foods := r.Group("/v1/foods")
	{
		foods.GET("/search", foodCtrl.Search)
		foods.GET("", foodCtrl.List)
		foods.GET("/:id", foodCtrl.Get)
		foods.POST("", foodCtrl.Create)
		foods.PUT("/:id", foodCtrl.Update)
		foods.PATCH("/:id", foodCtrl.PartialUpdate)
		foods.DELETE("/:id", foodCtrl.Delete)
	}

	return r
}
