package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// identityKey is the echo.Context key the verified identity is stored under.
const identityKey = "email"

// denyResponse is the wire envelope for 401/403, kept byte-compatible with
// the frontend this API serves.
type denyResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, denyResponse{Error: true, Message: "unauthorized access"})
}

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, denyResponse{Error: true, Message: "forbidden message"})
}

// Verifier validates a raw Authorization header value and returns the
// identity embedded in the credential.
type Verifier interface {
	Verify(raw string) (string, error)
}

// Auth verifies the bearer credential and injects the identity into the
// context. Missing, malformed, invalid, and expired credentials all reject
// with 401 before any role or ownership check runs.
func Auth(verifier Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := verifier.Verify(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return unauthorized(c)
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// Identity returns the verified identity injected by Auth, or "" when the
// request is unauthenticated.
func Identity(c echo.Context) string {
	identity, _ := c.Get(identityKey).(string)
	return identity
}
