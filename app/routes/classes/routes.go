package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/models"
	"acadia-schools/app/routes/auth"
)

// SetupClassesRoutes sets up the class routes
func SetupClassesRoutes(app *fiber.App, db *sql.DB) {
	// API routes
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetClassesAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetClassAPI(c, db) })
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return CreateClassAPI(c, db) })

	// Classes page
	app.Get("/classes", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("classes/index", fiber.Map{
			"Title":       "Classes",
			"CurrentPage": "classes",
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
			"user":        user,
		})
	})
}
