package grading

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/models"
	"acadia-schools/app/routes/auth"
)

// SetupGradingRoutes sets up the grading system routes
func SetupGradingRoutes(app *fiber.App, db *sql.DB) {
	// API routes
	api := app.Group("/api/settings/grade-bands")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetGradeBandsAPI(c, db) })
	api.Get("/resolve", func(c *fiber.Ctx) error { return ResolveGradeAPI(c, db) })
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return CreateGradeBandAPI(c, db) })
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return UpdateGradeBandAPI(c, db) })
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return DeleteGradeBandAPI(c, db) })

	// Grading system management page
	app.Get("/settings/grade-bands", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("grading/index", fiber.Map{
			"Title":       "Grading System",
			"CurrentPage": "settings",
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
			"user":        user,
		})
	})
}
