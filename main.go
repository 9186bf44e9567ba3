package main

import (
	"fmt"
	"log"
	"os"

	"foxfood-backend/config"
	"foxfood-backend/controllers"
	"foxfood-backend/models"
	"foxfood-backend/routes"
	"foxfood-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.WeeklySelection{},
		&models.UserReminder{},
		&models.AdminSettings{},
		&models.CustomDishRequest{},
		&models.NotificationLog{},
	)
}

func main() {
	notifier := services.NewNotificationService(
		config.DB,
		services.NewEmailSenderFromEnv(),
		services.NewSMSSenderFromEnv(),
	)
	reminders := services.NewReminderService(config.DB, notifier)
	controllers.Setup(notifier, reminders)

	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
