package routes

import (
	"net/http"

	"trainerpro-backend/config"
	"trainerpro-backend/controllers"
	"trainerpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// MaxRequestBody bounds every request, chiefly for photo uploads.
const MaxRequestBody = 16 << 20 // 16MB

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = MaxRequestBody

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBody)
		c.Next()
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client roster
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
			clients.POST("/:id/photo", controllers.UploadClientPhoto)
			clients.POST("/:id/notes", controllers.AddClientNote)
			clients.GET("/:id/weight-logs", controllers.GetWeightLogs)
			clients.POST("/:id/weight-logs", controllers.AddWeightLog)
			clients.GET("/:id/sessions", controllers.GetSessionHistory)

			// Workout log
			clients.GET("/:id/workouts", controllers.GetWorkoutDays)
			clients.POST("/:id/workouts", controllers.RecordWorkout)
			clients.GET("/:id/workouts/:date", controllers.GetWorkoutDay)
			clients.PUT("/:id/workouts/:date", controllers.ReplaceWorkoutDay)
			clients.DELETE("/:id/workouts/:date", controllers.DeleteWorkoutDay)
		}

		// Scheduling
		sessions := api.Group("/sessions")
		{
			sessions.POST("", controllers.CreateSession)
			sessions.GET("/:id", controllers.GetSession)
			sessions.PUT("/:id", controllers.UpdateSession)
			sessions.DELETE("/:id", controllers.DeleteSession)
			sessions.POST("/:id/complete", controllers.CompleteSession)
			sessions.POST("/:id/cancel", controllers.CancelSession)
		}

		api.GET("/calendar", controllers.GetCalendarWeek)
		api.GET("/exercises/search", controllers.SearchExercises)
		api.GET("/dashboard", controllers.GetDashboardOverview)

		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}
	}

	return r
}
