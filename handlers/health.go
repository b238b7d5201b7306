package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sfaraj/registrar/database"
	"gorm.io/gorm"
)

// HandleCheckHealth reports process and database health.
func HandleCheckHealth(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if db, ok := store.GetDB().(*gorm.DB); ok {
			sqlDB, err := db.DB()
			if err != nil || sqlDB.Ping() != nil {
				dbStatus = "unreachable"
			}
		} else {
			dbStatus = "unreachable"
		}

		status := fiber.StatusOK
		if dbStatus != "ok" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
		})
	}
}
