package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/summercamp/enrollment-api/internal/api/middleware"
	"github.com/summercamp/enrollment-api/internal/core/domain"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

// ClassHandler handles class submission, listing, and admin review.
type ClassHandler struct {
	classes ports.ClassService
}

func NewClassHandler(classes ports.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

type createClassRequest struct {
	Name           string  `json:"name"            validate:"required"`
	Image          string  `json:"image"           validate:"required"`
	InstructorName string  `json:"instructor_name" validate:"required"`
	AvailableSeats int     `json:"available_seats" validate:"required,gt=0"`
	Price          float64 `json:"price"           validate:"required,gt=0"`
}

type reviewClassRequest struct {
	Status string `json:"status" validate:"required,oneof=approved denied"`
}

type feedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

// ListApproved handles GET /classes — the public catalogue.
//
// @Summary      List approved classes
// @Tags         classes
// @Produce      json
// @Success      200  {array}  domain.Class
// @Router       /classes [get]
func (h *ClassHandler) ListApproved(c echo.Context) error {
	classes, err := h.classes.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyIfNil(classes))
}

// Create handles POST /classes (instructor only). The owner is always the
// verified identity from the credential, never a payload field.
//
// @Summary      Submit a new class for review
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClassRequest  true  "Class details"
// @Success      201   {object}  domain.Class
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /classes [post]
func (h *ClassHandler) Create(c echo.Context) error {
	var req createClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	class, err := h.classes.Create(c.Request().Context(), ports.CreateClassInput{
		Name:           req.Name,
		Image:          req.Image,
		InstructorName: req.InstructorName,
		Owner:          appmiddleware.Identity(c),
		AvailableSeats: req.AvailableSeats,
		Price:          req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, class)
}

// ListOwned handles GET /classes/mine?email= (instructor, identity-bound).
// The Guard middleware already answered with an empty array when the email
// parameter is absent.
//
// @Summary      List the caller's own classes
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        email  query    string  true  "Caller's own email"
// @Success      200    {array}  domain.Class
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /classes/mine [get]
func (h *ClassHandler) ListOwned(c echo.Context) error {
	classes, err := h.classes.ListOwned(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyIfNil(classes))
}

// ListAll handles GET /classes/all (admin only) — every class regardless of
// review status.
//
// @Summary      List all classes
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Class
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /classes/all [get]
func (h *ClassHandler) ListAll(c echo.Context) error {
	classes, err := h.classes.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyIfNil(classes))
}

// Review handles PATCH /classes/:id/status (admin only).
//
// @Summary      Approve or deny a pending class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Class id"
// @Param        body  body      reviewClassRequest  true  "Review decision"
// @Success      200   {object}  domain.Class
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /classes/{id}/status [patch]
func (h *ClassHandler) Review(c echo.Context) error {
	var req reviewClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	class, err := h.classes.Review(c.Request().Context(), ports.ReviewClassInput{
		ClassID: c.Param("id"),
		Status:  domain.ClassStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, class)
}

// SetFeedback handles PATCH /classes/:id/feedback (admin only).
//
// @Summary      Attach review feedback to a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Class id"
// @Param        body  body      feedbackRequest  true  "Feedback note"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /classes/{id}/feedback [patch]
func (h *ClassHandler) SetFeedback(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.classes.SetFeedback(c.Request().Context(), c.Param("id"), req.Feedback); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "feedback saved"})
}

// emptyIfNil keeps list endpoints returning [] instead of null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
