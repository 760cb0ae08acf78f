package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/summercamp/enrollment-api/internal/core/domain"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

// InstructorHandler handles the public instructor directory.
type InstructorHandler struct {
	repo ports.InstructorRepository
}

func NewInstructorHandler(repo ports.InstructorRepository) *InstructorHandler {
	return &InstructorHandler{repo: repo}
}

type createInstructorRequest struct {
	Name            string   `json:"name"  validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Image           string   `json:"image" validate:"required"`
	NumberOfClasses int      `json:"number_of_classes"`
	ClassNames      []string `json:"class_names"`
}

// List handles GET /instructors — public.
//
// @Summary      List instructor profiles
// @Tags         instructors
// @Produce      json
// @Success      200  {array}  domain.Instructor
// @Router       /instructors [get]
func (h *InstructorHandler) List(c echo.Context) error {
	instructors, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyIfNil(instructors))
}

// Create handles POST /instructors (admin only).
//
// @Summary      Create an instructor profile
// @Tags         instructors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInstructorRequest  true  "Instructor profile"
// @Success      201   {object}  domain.Instructor
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /instructors [post]
func (h *InstructorHandler) Create(c echo.Context) error {
	var req createInstructorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	instructor, err := h.repo.Insert(c.Request().Context(), &domain.Instructor{
		Name:            req.Name,
		Email:           req.Email,
		Image:           req.Image,
		NumberOfClasses: req.NumberOfClasses,
		ClassNames:      req.ClassNames,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, instructor)
}
