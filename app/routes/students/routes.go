package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/models"
	"acadia-schools/app/routes/auth"
)

// SetupStudentsRoutes sets up the student roster routes
func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	// API routes
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetStudentsAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetStudentAPI(c, db) })
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return CreateStudentAPI(c, db) })
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return UpdateStudentAPI(c, db) })
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return DeleteStudentAPI(c, db) })

	// Students page
	app.Get("/students", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("students/index", fiber.Map{
			"Title":       "Students",
			"CurrentPage": "students",
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
			"user":        user,
		})
	})
}
