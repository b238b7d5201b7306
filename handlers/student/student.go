package student

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sfaraj/registrar/services"
	"github.com/sfaraj/registrar/utils/response"
)

// StudentHandler serves student schedule and transcript views
type StudentHandler struct {
	registrar *services.RegistrarService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(registrar *services.RegistrarService) *StudentHandler {
	return &StudentHandler{registrar: registrar}
}

// GetSchedule handles GET /api/v1/students/:id/schedule
func (h *StudentHandler) GetSchedule(c *fiber.Ctx) error {
	studentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	view, err := h.registrar.StudentSchedule(studentID)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to load schedule")
	}
	return response.Success(c, view)
}

// GetTranscript handles GET /api/v1/students/:id/transcript
func (h *StudentHandler) GetTranscript(c *fiber.Ctx) error {
	studentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	view, err := h.registrar.StudentTranscript(studentID)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to load transcript")
	}
	return response.Success(c, view)
}
