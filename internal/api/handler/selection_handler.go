package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/summercamp/enrollment-api/internal/api/middleware"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

// SelectionHandler handles the student's class selections.
type SelectionHandler struct {
	selections ports.SelectionService
}

func NewSelectionHandler(selections ports.SelectionService) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

type selectClassRequest struct {
	ClassID        string  `json:"class_id"        validate:"required"`
	ClassName      string  `json:"class_name"      validate:"required"`
	Image          string  `json:"image"`
	Price          float64 `json:"price"           validate:"required,gt=0"`
	InstructorName string  `json:"instructor_name"`
}

// List handles GET /selected?email= (identity-bound). A missing email
// parameter is answered with an empty array by the Guard middleware.
//
// @Summary      List the caller's selected classes
// @Tags         selections
// @Produce      json
// @Security     BearerAuth
// @Param        email  query    string  true  "Caller's own email"
// @Success      200    {array}  domain.Selection
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /selected [get]
func (h *SelectionHandler) List(c echo.Context) error {
	selections, err := h.selections.ListOwned(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyIfNil(selections))
}

// Select handles POST /selected. The owner is the verified identity; a
// client cannot add selections to someone else's cart.
//
// @Summary      Select a class
// @Tags         selections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      selectClassRequest  true  "Class being selected"
// @Success      201   {object}  domain.Selection
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /selected [post]
func (h *SelectionHandler) Select(c echo.Context) error {
	var req selectClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	selection, err := h.selections.Select(c.Request().Context(), ports.SelectClassInput{
		ClassID:        req.ClassID,
		ClassName:      req.ClassName,
		Image:          req.Image,
		Price:          req.Price,
		InstructorName: req.InstructorName,
		Owner:          appmiddleware.Identity(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, selection)
}

// Remove handles DELETE /selected/:id. Ownership is checked against the
// stored record, not a client-supplied field.
//
// @Summary      Remove a selected class
// @Tags         selections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Selection id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /selected/{id} [delete]
func (h *SelectionHandler) Remove(c echo.Context) error {
	if err := h.selections.Remove(c.Request().Context(), c.Param("id"), appmiddleware.Identity(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "selection removed"})
}
