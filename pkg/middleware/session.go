package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const sessionCookie = "KS_PHONE"

// Session reads the phone session cookie into the request context. It never
// rejects; RequireUser does that on protected routes.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			phone := ""
			if ck, err := c.Cookie(sessionCookie); err == nil {
				phone = ck.Value
			}
			c.Set("phone", phone)
			return next(c)
		}
	}
}

// RequireUser rejects requests without an established session.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if phone, _ := c.Get("phone").(string); phone == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			return next(c)
		}
	}
}

// SetSession writes the session cookie after a successful login.
func SetSession(c echo.Context, phone string) {
	c.SetCookie(&http.Cookie{Name: sessionCookie, Value: phone, Path: "/", HttpOnly: true})
}

// ClearSession expires the session cookie.
func ClearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
}
