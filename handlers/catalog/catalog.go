package catalog

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sfaraj/registrar/registry"
	"github.com/sfaraj/registrar/services"
	"github.com/sfaraj/registrar/utils/response"
	"github.com/sfaraj/registrar/utils/validation"
)

// CatalogHandler handles catalog management requests
type CatalogHandler struct {
	validator *validation.Validator
	registrar *services.RegistrarService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(registrar *services.RegistrarService) *CatalogHandler {
	return &CatalogHandler{
		validator: validation.NewValidator(),
		registrar: registrar,
	}
}

// AddSectionRequest represents the request body for offering a section
type AddSectionRequest struct {
	Term               string `json:"term" validate:"required,term"`
	Year               int    `json:"year" validate:"required,gte=1950"`
	CRN                int    `json:"crn" validate:"required,gte=1,lte=99999"`
	SectionNumber      int    `json:"section_number" validate:"required,gte=1,lte=999"`
	CourseMnemonic     string `json:"course_mnemonic" validate:"required,min=3,max=4"`
	CourseNumber       int    `json:"course_number" validate:"required,gte=1"`
	Building           string `json:"building" validate:"required"`
	Room               string `json:"room" validate:"required"`
	RoomCapacity       int    `json:"room_capacity" validate:"required,gte=1"`
	MeetingDays        []int  `json:"meeting_days" validate:"required,min=1,dive,weekday"`
	StartHour          int    `json:"start_hour" validate:"gte=0,lte=23"`
	StartMinute        int    `json:"start_minute" validate:"gte=0,lte=59"`
	EndHour            int    `json:"end_hour" validate:"gte=0,lte=23"`
	EndMinute          int    `json:"end_minute" validate:"gte=0,lte=59"`
	LecturerID         uint   `json:"lecturer_id" validate:"required"`
	EnrollmentCapacity int    `json:"enrollment_capacity" validate:"gte=0"`
	WaitListCapacity   int    `json:"wait_list_capacity" validate:"gte=0"`
}

// CloseRequest represents the request body for closing a semester
type CloseRequest struct {
	Term string `json:"term" validate:"required,term"`
	Year int    `json:"year" validate:"required,gte=1950"`
}

// AddSection handles POST /api/v1/catalog/sections
func (h *CatalogHandler) AddSection(c *fiber.Ctx) error {
	var req AddSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	days := make([]time.Weekday, len(req.MeetingDays))
	for i, d := range req.MeetingDays {
		days[i] = time.Weekday(d)
	}

	result, err := h.registrar.AddSection(services.AddSectionInput{
		Term:               req.Term,
		Year:               req.Year,
		CRN:                req.CRN,
		SectionNumber:      req.SectionNumber,
		CourseMnemonic:     req.CourseMnemonic,
		CourseNumber:       req.CourseNumber,
		Building:           req.Building,
		Room:               req.Room,
		RoomCapacity:       req.RoomCapacity,
		MeetingDays:        days,
		StartHour:          req.StartHour,
		StartMinute:        req.StartMinute,
		EndHour:            req.EndHour,
		EndMinute:          req.EndMinute,
		LecturerID:         req.LecturerID,
		EnrollmentCapacity: req.EnrollmentCapacity,
		WaitListCapacity:   req.WaitListCapacity,
	})
	if err != nil {
		return notFoundOrBadRequest(c, err)
	}
	if result != registry.AddSuccessful {
		return response.Error(c, fiber.StatusConflict, "Section was not added to the catalog", string(result))
	}

	view, err := h.registrar.GetSection(req.Term, req.Year, req.CRN)
	if err != nil {
		return response.InternalServerError(c, "Section added but could not be loaded")
	}
	return response.Created(c, view)
}

// RemoveSection handles DELETE /api/v1/catalog/sections/:crn
func (h *CatalogHandler) RemoveSection(c *fiber.Ctx) error {
	term, year, crn, err := semesterAndCRN(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.registrar.RemoveSection(term, year, crn); err != nil {
		return notFoundOrBadRequest(c, err)
	}
	return response.NoContent(c)
}

// Close handles POST /api/v1/catalog/close
func (h *CatalogHandler) Close(c *fiber.Ctx) error {
	var req CloseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	closed, err := h.registrar.CloseSemester(req.Term, req.Year)
	if err != nil {
		return notFoundOrBadRequest(c, err)
	}
	return response.SuccessWithMessage(c, "Enrollment closed", fiber.Map{"sections_closed": closed})
}

// ListSections handles GET /api/v1/catalog/sections
func (h *CatalogHandler) ListSections(c *fiber.Ctx) error {
	term, year, err := semesterQuery(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	views, err := h.registrar.ListSections(c.Context(), term, year)
	if err != nil {
		return notFoundOrBadRequest(c, err)
	}
	return response.Success(c, views)
}

// GetSection handles GET /api/v1/catalog/sections/:crn
func (h *CatalogHandler) GetSection(c *fiber.Ctx) error {
	term, year, crn, err := semesterAndCRN(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	view, err := h.registrar.GetSection(term, year, crn)
	if err != nil {
		return notFoundOrBadRequest(c, err)
	}
	return response.Success(c, view)
}

func semesterQuery(c *fiber.Ctx) (string, int, error) {
	term := c.Query("term")
	if term == "" {
		return "", 0, errors.New("term query parameter is required")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return "", 0, errors.New("year query parameter is required")
	}
	return term, year, nil
}

func semesterAndCRN(c *fiber.Ctx) (string, int, int, error) {
	term, year, err := semesterQuery(c)
	if err != nil {
		return "", 0, 0, err
	}
	crn, err := strconv.Atoi(c.Params("crn"))
	if err != nil {
		return "", 0, 0, errors.New("invalid CRN")
	}
	return term, year, crn, nil
}

// notFoundOrBadRequest maps service lookup errors to 404 and everything
// else to 400.
func notFoundOrBadRequest(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSemesterNotFound),
		errors.Is(err, services.ErrSectionNotFound),
		errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrLecturerNotFound):
		return response.NotFound(c, err.Error())
	default:
		return response.BadRequest(c, err.Error())
	}
}
