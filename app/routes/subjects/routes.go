package subjects

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/models"
	"acadia-schools/app/routes/auth"
)

// SetupSubjectsRoutes sets up the subject routes
func SetupSubjectsRoutes(app *fiber.App, db *sql.DB) {
	// API routes
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetSubjectsAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetSubjectAPI(c, db) })
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return CreateSubjectAPI(c, db) })

	// Subjects page
	app.Get("/subjects", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("subjects/index", fiber.Map{
			"Title":       "Subjects",
			"CurrentPage": "subjects",
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
			"user":        user,
		})
	})
}
