package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/summercamp/enrollment-api/internal/api/metrics"
	"github.com/summercamp/enrollment-api/internal/core/ports"
)

// AuthHandler issues bearer credentials.
type AuthHandler struct {
	tokens ports.TokenService
}

func NewAuthHandler(tokens ports.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken handles POST /jwt.
//
// The identity in the payload is trusted as-is: callers authenticate
// elsewhere and only exchange the resulting email for a credential here.
// Any real authentication step goes in front of the TokenService, not in
// this handler.
//
// @Summary      Issue a bearer credential for an identity
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokenRequest  true  "Identity payload"
// @Success      200   {object}  issueTokenResponse
// @Failure      400   {object}  errorResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, issueTokenResponse{Token: token})
}
