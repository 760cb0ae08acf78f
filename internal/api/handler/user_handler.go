package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/summercamp/enrollment-api/internal/api/metrics"
	"github.com/summercamp/enrollment-api/internal/core/domain"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

// UserHandler handles account registration, listing, role probes, and
// elevation.
type UserHandler struct {
	accounts ports.AccountService
}

func NewUserHandler(accounts ports.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photo_url"`
}

// Register handles POST /users.
//
// Registration is idempotent: posting an email that already exists answers
// 200 with "user already exists" and leaves the original record untouched.
//
// @Summary      Register an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account profile"
// @Success      200   {object}  messageResponse
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		metrics.RegistrationsTotal.WithLabelValues("exists").Inc()
		return c.JSON(http.StatusOK, messageResponse{Message: "user already exists"})
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, result.Account)
}

// List handles GET /users (admin only).
//
// @Summary      List all accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	accounts, err := h.accounts.List(c.Request().Context())
	if err != nil {
		return err
	}
	if accounts == nil {
		accounts = []*domain.Account{}
	}
	return c.JSON(http.StatusOK, accounts)
}

type roleProbeResponse struct {
	Admin      *bool `json:"admin,omitempty"`
	Instructor *bool `json:"instructor,omitempty"`
}

// IsAdmin handles GET /users/admin/:email — the frontend's role probe for
// its own identity.
//
// @Summary      Check whether the caller is an admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller's own email"
// @Success      200    {object}  roleProbeResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/admin/{email} [get]
func (h *UserHandler) IsAdmin(c echo.Context) error {
	role, err := h.accounts.RoleOf(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	isAdmin := role == domain.RoleAdmin
	return c.JSON(http.StatusOK, roleProbeResponse{Admin: &isAdmin})
}

// IsInstructor handles GET /users/instructor/:email.
//
// @Summary      Check whether the caller is an instructor
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller's own email"
// @Success      200    {object}  roleProbeResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/instructor/{email} [get]
func (h *UserHandler) IsInstructor(c echo.Context) error {
	role, err := h.accounts.RoleOf(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	isInstructor := role == domain.RoleInstructor
	return c.JSON(http.StatusOK, roleProbeResponse{Instructor: &isInstructor})
}

// MakeAdmin handles PATCH /users/admin/:id (admin only).
//
// @Summary      Elevate an account to admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.Account
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/admin/{id} [patch]
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	return h.elevate(c, domain.RoleAdmin)
}

// MakeInstructor handles PATCH /users/instructor/:id (admin only).
//
// @Summary      Elevate an account to instructor
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.Account
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/instructor/{id} [patch]
func (h *UserHandler) MakeInstructor(c echo.Context) error {
	return h.elevate(c, domain.RoleInstructor)
}

func (h *UserHandler) elevate(c echo.Context, role domain.Role) error {
	account, err := h.accounts.Elevate(c.Request().Context(), c.Param("id"), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}
