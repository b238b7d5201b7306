package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sfaraj/registrar/config"
	"github.com/sfaraj/registrar/database"
	"github.com/sfaraj/registrar/handlers"
	catalog_handlers "github.com/sfaraj/registrar/handlers/catalog"
	grades_handlers "github.com/sfaraj/registrar/handlers/grades"
	registration_handlers "github.com/sfaraj/registrar/handlers/registration"
	student_handlers "github.com/sfaraj/registrar/handlers/student"
	"github.com/sfaraj/registrar/services"
	"github.com/sfaraj/registrar/utils/auth"
	"github.com/sfaraj/registrar/utils/middleware"
)

func SetupRoutes(app *fiber.App, store database.Storage, registrar *services.RegistrarService) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal("Failed to read environment configuration")
	}
	if getEnv.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = auth.DefaultIssuer
	}

	// Initialize JWT manager with config
	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: 24 * time.Hour,
		Issuer: jwtIssuer,
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Initialize handlers
	catalogHandler := catalog_handlers.NewCatalogHandler(registrar)
	registrationHandler := registration_handlers.NewRegistrationHandler(registrar)
	gradesHandler := grades_handlers.NewGradesHandler(registrar)
	studentHandler := student_handlers.NewStudentHandler(registrar)

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth(store))

	// API v1 group
	api := app.Group("/api/v1")

	// Catalog routes
	catalogGroup := api.Group("/catalog")
	catalogGroup.Get("/sections", catalogHandler.ListSections)                                           // Public: List the semester's sections
	catalogGroup.Get("/sections/:crn", catalogHandler.GetSection)                                        // Public: Get one section by CRN
	catalogGroup.Post("/sections", authMiddleware.RequireRegistrar(), catalogHandler.AddSection)         // Registrar only: Offer a section
	catalogGroup.Delete("/sections/:crn", authMiddleware.RequireRegistrar(), catalogHandler.RemoveSection) // Registrar only: Withdraw a section
	catalogGroup.Post("/close", authMiddleware.RequireRegistrar(), catalogHandler.Close)                 // Registrar only: Close enrollment

	// Registration routes
	api.Post("/registrations", authMiddleware.Required(), registrationHandler.Register) // Protected: Register for a section
	api.Delete("/registrations", authMiddleware.Required(), registrationHandler.Drop)   // Protected: Drop a section

	// Final grades
	api.Post("/sections/:crn/grades", authMiddleware.RequireRegistrar(), gradesHandler.PostFinalGrades) // Registrar only: Post final grades

	// Student views
	students := api.Group("/students", authMiddleware.Required())
	students.Get("/:id/schedule", studentHandler.GetSchedule)     // Protected: Current registrations
	students.Get("/:id/transcript", studentHandler.GetTranscript) // Protected: Grade history and GPA
}
