package grades

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sfaraj/registrar/services"
	"github.com/sfaraj/registrar/utils/response"
	"github.com/sfaraj/registrar/utils/validation"
)

// GradesHandler handles final grade uploads
type GradesHandler struct {
	validator *validation.Validator
	registrar *services.RegistrarService
}

// NewGradesHandler creates a new grades handler
func NewGradesHandler(registrar *services.RegistrarService) *GradesHandler {
	return &GradesHandler{
		validator: validation.NewValidator(),
		registrar: registrar,
	}
}

// GradeEntry is one student's final grade
type GradeEntry struct {
	StudentID int64  `json:"student_id" validate:"required,gte=1"`
	Grade     string `json:"grade" validate:"required,grade"`
}

// PostGradesRequest represents the request body for a grade upload.
// Partial batches are fine; every student in the batch must be enrolled
// in the section or the whole upload is rejected.
type PostGradesRequest struct {
	Term   string       `json:"term" validate:"required,term"`
	Year   int          `json:"year" validate:"required,gte=1950"`
	Grades []GradeEntry `json:"grades" validate:"required,min=1,dive"`
}

// PostFinalGrades handles POST /api/v1/sections/:crn/grades
func (h *GradesHandler) PostFinalGrades(c *fiber.Ctx) error {
	crn, err := strconv.Atoi(c.Params("crn"))
	if err != nil {
		return response.BadRequest(c, "Invalid CRN")
	}

	var req PostGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	gradeByStudent := make(map[int64]string, len(req.Grades))
	for _, entry := range req.Grades {
		if _, dup := gradeByStudent[entry.StudentID]; dup {
			return response.BadRequest(c, "Duplicate grade for student "+strconv.FormatInt(entry.StudentID, 10))
		}
		gradeByStudent[entry.StudentID] = entry.Grade
	}

	batchID, err := h.registrar.PostFinalGrades(req.Term, req.Year, crn, gradeByStudent)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSemesterNotFound),
			errors.Is(err, services.ErrSectionNotFound),
			errors.Is(err, services.ErrStudentNotFound):
			return response.NotFound(c, err.Error())
		default:
			// The engine rejects partial or mismatched rosters wholesale.
			return response.Error(c, fiber.StatusConflict, err.Error(), "GRADES_REJECTED")
		}
	}

	return response.SuccessWithMessage(c, "Final grades posted", fiber.Map{
		"batch_id": batchID,
		"graded":   len(gradeByStudent),
	})
}
