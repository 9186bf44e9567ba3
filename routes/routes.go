package routes

import (
	"os"

	"foxfood-backend/config"
	"foxfood-backend/controllers"
	"foxfood-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigin := os.Getenv("APP_URL")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin, "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// External cron trigger, guarded by CRON_SECRET rather than JWT
	cronGroup := r.Group("/api/cron")
	{
		cronGroup.GET("/send-reminders", controllers.SendReminders)
		cronGroup.POST("/send-reminders", controllers.SendReminders)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Dish catalog
		dishes := api.Group("/dishes")
		{
			dishes.GET("", controllers.GetDishes)

			adminDishes := dishes.Group("", utils.AdminMiddleware())
			{
				adminDishes.POST("", controllers.CreateDish)
				adminDishes.PUT("/:id", controllers.UpdateDish)
				adminDishes.DELETE("/:id", controllers.DeleteDish)
				adminDishes.POST("/import", controllers.ImportDishes)
			}
		}

		// Weekly selections
		selections := api.Group("/selections")
		{
			selections.GET("", controllers.GetSelection)
			selections.POST("", controllers.SaveSelection)
		}

		// Custom dish requests
		customDishes := api.Group("/custom-dishes")
		{
			customDishes.GET("", controllers.GetMyCustomDishes)
			customDishes.POST("", controllers.CreateCustomDish)
		}

		// User settings
		settings := api.Group("/settings")
		{
			settings.GET("", controllers.GetSettings)
			settings.POST("", controllers.SaveSettings)
		}

		// Admin surface
		admin := api.Group("/admin", utils.AdminMiddleware())
		{
			admin.GET("/settings", controllers.GetAdminSettings)
			admin.POST("/settings", controllers.SaveAdminSettings)

			admin.GET("/custom-dishes", controllers.GetAllCustomDishes)
			admin.PUT("/custom-dishes/:id", controllers.UpdateCustomDish)
			admin.DELETE("/custom-dishes/:id", controllers.DeleteCustomDish)
		}
	}

	return r
}
