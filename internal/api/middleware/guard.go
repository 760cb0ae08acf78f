package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/summercamp/enrollment-api/internal/api/metrics"
	"github.com/summercamp/enrollment-api/internal/core/access"
	"github.com/summercamp/enrollment-api/internal/core/domain"
)

// RoleResolver resolves the persisted role for an identity.
type RoleResolver interface {
	RoleOf(ctx context.Context, email string) (domain.Role, error)
}

// SubjectFunc extracts the identity a request is about, for identity-bound
// routes. Returning "" means the parameter is absent.
type SubjectFunc func(c echo.Context) string

// SubjectParam reads the subject identity from a path parameter.
func SubjectParam(name string) SubjectFunc {
	return func(c echo.Context) string { return c.Param(name) }
}

// SubjectQuery reads the subject identity from a query parameter.
func SubjectQuery(name string) SubjectFunc {
	return func(c echo.Context) string { return c.QueryParam(name) }
}

// Guard enforces a route's declared access policy. It runs after Auth, so a
// verified identity is already in the context for protected routes.
//
// An identity-bound route invoked without its subject parameter answers 200
// with an empty array instead of an error; list endpoints rely on this.
func Guard(policy access.Policy, roles RoleResolver, subject SubjectFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := access.Request{Identity: Identity(c)}
			if subject != nil {
				req.Subject = subject(c)
			}

			if policy.RequiresRole() != domain.RoleNone && req.Identity != "" {
				role, err := roles.RoleOf(c.Request().Context(), req.Identity)
				if err != nil {
					return err
				}
				req.Role = role
			}

			decision := policy.Authorize(req)
			metrics.AuthzDecisionsTotal.WithLabelValues(decision.String()).Inc()

			switch decision {
			case access.Permit:
				return next(c)
			case access.Empty:
				return c.JSON(http.StatusOK, []struct{}{})
			case access.DenyUnauthorized:
				return unauthorized(c)
			default:
				return forbidden(c)
			}
		}
	}
}
