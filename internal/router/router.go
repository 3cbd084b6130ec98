// Package router defines how HTTP routes are registered for the API.
// Reads on events and team members are public; every mutating admin
// operation sits behind the JWT auth gate, and the public submission
// forms run behind the rate limiter instead.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/config"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/handler"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/middleware"
)

// Deps bundles everything RegisterRoutes needs. RateLimit and Cache may be
// pass-through middlewares when Redis is unavailable.
type Deps struct {
	Cfg       config.Config
	Auth      *handler.AuthHandler
	Events    *handler.EventHandler
	Team      *handler.TeamHandler
	Regs      *handler.RegistrationHandler
	Contacts  *handler.ContactHandler
	Donations *handler.DonationHandler
	RateLimit echo.MiddlewareFunc
	Cache     echo.MiddlewareFunc
}

// RegisterRoutes attaches global middleware and all application routes to
// the provided Echo instance.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.HTTPErrorHandler = newErrorHandler(d.Cfg.Env)

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	// Request bodies are capped globally; resume uploads carry their own
	// tighter limit inside the registration handler.
	e.Use(echomw.BodyLimit("9M"))

	e.GET("/healthz", handler.Health)

	auth := middleware.JWTAuth(d.Cfg.JWTSecret)

	// Admin accounts. Signup and login are open; verify-token is the
	// client's route guard and sits behind the gate itself.
	users := e.Group("/users")
	users.POST("/signup", d.Auth.Signup)
	users.POST("/login", d.Auth.Login)
	users.GET("/verify-token", d.Auth.VerifyToken, auth)

	// Events: public reads (cached), gated writes.
	e.GET("/events", d.Events.List, d.Cache)
	e.GET("/events/:id", d.Events.Get, d.Cache)
	e.POST("/events", d.Events.Create, auth)
	e.PUT("/events/:id", d.Events.Update, auth)
	e.DELETE("/events/:id", d.Events.Delete, auth)

	// Team members: public reads (cached), gated writes, bulk reorder.
	e.GET("/team", d.Team.List, d.Cache)
	e.GET("/team/:id", d.Team.Get, d.Cache)
	e.POST("/team", d.Team.Create, auth)
	e.POST("/team/order", d.Team.Reorder, auth)
	e.PUT("/team/:id", d.Team.Update, auth)
	e.DELETE("/team/:id", d.Team.Delete, auth)

	// Volunteer registrations: public intake, gated listing.
	e.POST("/api/registrations", d.Regs.Create, d.RateLimit)
	e.GET("/registrations", d.Regs.List, auth)

	// Contact messages: public intake, gated list and delete.
	e.POST("/contact", d.Contacts.Create, d.RateLimit)
	e.GET("/contact", d.Contacts.List, auth)
	e.DELETE("/contact/:id", d.Contacts.Delete, auth)

	// Donations: both phases public, gated listing.
	e.POST("/create-order", d.Donations.CreateOrder, d.RateLimit)
	e.POST("/save-donation", d.Donations.SaveDonation, d.RateLimit)
	e.GET("/donations", d.Donations.List, auth)
}

// newErrorHandler is the global catcher for anything handlers did not
// translate themselves. Echo HTTP errors keep their status; everything
// else becomes a 500 whose detail is only exposed outside production.
func newErrorHandler(env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		} else if env != "prod" {
			msg = err.Error()
		}
		c.Logger().Error(err)
		_ = c.JSON(code, echo.Map{"error": msg})
	}
}
