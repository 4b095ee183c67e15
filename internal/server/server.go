package server

import (
	"log"

	"brandscope-be/internal/bootstrap"
	"brandscope-be/internal/config"
	"brandscope-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, request bodies here are small JSON
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Keep the cookie snapshot aligned with the primary session store,
	// then gate navigation off that snapshot.
	app.Use(serverutils.MirrorSessionCookie(cfg.Session.CookieName, container.SessionManager))
	app.Use(serverutils.NavigationGate(cfg.Session.CookieName))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Gateway is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.NotificationHandler.RegisterRoutes(api)

	// Data routes require a live session; a cookie alone is not enough.
	data := api.Group("", serverutils.RequireSession(c.SessionManager))
	c.CompanyController.RegisterRoutes(data)
	c.IntelController.RegisterRoutes(data)
	c.SocialController.RegisterRoutes(data)
	c.FinanceController.RegisterRoutes(data)
	c.ScrapeController.RegisterRoutes(data)
}
