package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// ChatPaths are the routes the browser widget and the serverless variant post to.
var ChatPaths = []string{"/chat", "/api/chat"}

type HealthInfo struct {
	Version  string
	Env      string
	Profile  string
	Provider string
}

func SetupRouter(app *fiber.App, handler *ChatHandler, health HealthInfo) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"version":  health.Version,
			"env":      health.Env,
			"profile":  health.Profile,
			"provider": health.Provider,
		})
	})

	// Endpoints
	for _, path := range ChatPaths {
		app.Post(path, handler.HandleChat)
		app.All(path, MethodNotAllowed)
	}
}
