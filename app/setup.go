package app

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sfaraj/registrar/api"
	"github.com/sfaraj/registrar/config"
	"github.com/sfaraj/registrar/database"
	"github.com/sfaraj/registrar/router"
	"github.com/sfaraj/registrar/services"
	"github.com/sfaraj/registrar/services/cron"
	"github.com/sfaraj/registrar/utils"
	"github.com/sfaraj/registrar/utils/cache"
	"gorm.io/gorm"
)

// Closing the add period at midnight every day is a safe default; the
// job is idempotent so firing after the real deadline is harmless.
const defaultAddDeadlineCron = "0 0 0 * * *"

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		return fmt.Errorf("failed to get GORM DB instance")
	}

	// Redis is optional: without it catalog listings just skip the cache
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Catalog listings will not be cached.", err)
			redisCache = nil
		}
	}

	// Load the registration engine from the database
	appLogger := utils.NewLogger()
	repo := database.NewRepository(db)
	registrar, err := services.NewRegistrarService(repo, redisCache, appLogger)
	if err != nil {
		return err
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		addDeadline := getEnv.ADD_DEADLINE_CRON
		if addDeadline == "" {
			addDeadline = defaultAddDeadlineCron
		}
		cronManager = cron.NewCronManager(db, registrar, addDeadline)
		if err := cronManager.Start(); err != nil {
			print("Warning: Failed to start cron jobs\n")
			print("Error: ", err.Error(), "\n")
			// Don't fail the app, just log the warning
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Setup Routes
	router.SetupRoutes(app, store, registrar)

	// Get the PORT & Start the Server
	return server.Run()
}
