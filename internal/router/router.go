package router

import (
	"time"

	"github.com/cardiotrack/cardiotrack/internal/handlers"
	"github.com/cardiotrack/cardiotrack/internal/middleware"
	"github.com/cardiotrack/cardiotrack/internal/ml"
	"github.com/cardiotrack/cardiotrack/internal/repository"
	"github.com/cardiotrack/cardiotrack/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(database *gorm.DB, predictor *ml.Predictor) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	users := repository.NewUserRepository(database)
	patients := repository.NewPatientRepository(database)

	authHandler := handlers.NewAuthHandler(users)
	patientHandler := handlers.NewPatientHandler(patients, predictor)
	pagesHandler := handlers.NewPagesHandler(patients)

	requireAuth := middleware.AuthMiddleware(users)

	r.GET("/health", handlers.HealthCheck)
	r.GET("/about", pagesHandler.About)

	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)

	protected := r.Group("", requireAuth)
	{
		protected.GET("/", pagesHandler.Home)
		protected.GET("/homes", pagesHandler.Home)
		protected.GET("/patient", pagesHandler.PatientPage)
		protected.GET("/logout", authHandler.Logout)
		protected.GET("/profile", authHandler.Profile)

		protected.GET("/enter_patient", patientHandler.EnterPatientPage)
		protected.POST("/enter_patient", patientHandler.EnterPatient)
		protected.POST("/predict", patientHandler.Predict)
		protected.GET("/view_patients", patientHandler.ViewPatients)
		protected.POST("/delete_patient/:id", patientHandler.DeletePatient)
	}

	return r
}
