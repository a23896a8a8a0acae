package main

import (
	"fmt"
	"log"
	"os"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/routes"
	"trainerpro-backend/services"

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
		&models.Trainer{},
		&models.Client{},
		&models.Session{},
		&models.WorkoutLog{},
		&models.WeightLog{},
		&models.ClientNote{},
		&models.Exercise{},
		&models.ReminderLog{},
	)

	if err := models.SeedExercises(config.DB); err != nil {
		log.Printf("Failed to seed exercise catalog: %v", err)
	}
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.NewReminderService(config.DB).StartScheduler()

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
