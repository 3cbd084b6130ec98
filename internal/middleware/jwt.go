package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a Bearer auth token
// and injects the token's identity claims into the request context. The
// provided secret must match the one used when issuing tokens. Protected
// handlers can read `c.Get("user_id")`, `c.Get("email")` and
// `c.Get("username")` after this middleware runs. The check is stateless;
// there is no session table and nothing is written anywhere.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			// Absent or malformed headers are rejected before any parsing.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Expired, tampered and malformed tokens all surface as the
			// same invalid-token condition.
			claims, err := utils.VerifyAuthToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("username", claims.Username)
			return next(c)
		}
	}
}
