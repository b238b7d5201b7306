package registration

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sfaraj/registrar/registry"
	"github.com/sfaraj/registrar/services"
	"github.com/sfaraj/registrar/utils/response"
	"github.com/sfaraj/registrar/utils/validation"
)

// RegistrationHandler handles register and drop requests
type RegistrationHandler struct {
	validator *validation.Validator
	registrar *services.RegistrarService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrar *services.RegistrarService) *RegistrationHandler {
	return &RegistrationHandler{
		validator: validation.NewValidator(),
		registrar: registrar,
	}
}

// RegistrationRequest identifies one student and one section
type RegistrationRequest struct {
	StudentID int64  `json:"student_id" validate:"required,gte=1"`
	Term      string `json:"term" validate:"required,term"`
	Year      int    `json:"year" validate:"required,gte=1950"`
	CRN       int    `json:"crn" validate:"required,gte=1,lte=99999"`
}

// Register handles POST /api/v1/registrations
func (h *RegistrationHandler) Register(c *fiber.Ctx) error {
	var req RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.registrar.Register(req.StudentID, req.Term, req.Year, req.CRN)
	if err != nil {
		return lookupError(c, err)
	}

	switch result {
	case registry.RegistrationSuccessEnrolled:
		return response.SuccessWithMessage(c, "Enrolled", fiber.Map{"result": result})
	case registry.RegistrationSuccessWaitListed:
		return response.SuccessWithMessage(c, "Added to wait list", fiber.Map{"result": result})
	default:
		return response.Error(c, fiber.StatusConflict, "Registration was not accepted", string(result))
	}
}

// Drop handles DELETE /api/v1/registrations
func (h *RegistrationHandler) Drop(c *fiber.Ctx) error {
	var req RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	dropped, err := h.registrar.Drop(req.StudentID, req.Term, req.Year, req.CRN)
	if err != nil {
		return lookupError(c, err)
	}
	if !dropped {
		return response.Error(c, fiber.StatusConflict,
			"Student is neither enrolled nor wait listed in that section", "NOT_IN_SECTION")
	}
	return response.SuccessWithMessage(c, "Dropped", fiber.Map{"result": "DROPPED"})
}

func lookupError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSemesterNotFound),
		errors.Is(err, services.ErrSectionNotFound),
		errors.Is(err, services.ErrStudentNotFound):
		return response.NotFound(c, err.Error())
	default:
		return response.BadRequest(c, err.Error())
	}
}
