package marks

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/models"
	"acadia-schools/app/routes/auth"
)

// SetupMarksRoutes sets up the marks entry routes
func SetupMarksRoutes(app *fiber.App, db *sql.DB) {
	// API routes
	api := app.Group("/api/exam-schedules/:id/results")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetResultsAPI(c, db) })
	api.Post("/", auth.RoleMiddleware(models.RoleTeacher, models.RoleAdmin), func(c *fiber.Ctx) error { return SaveResultsAPI(c, db) })
	api.Post("/submit", auth.RoleMiddleware(models.RoleTeacher, models.RoleAdmin), func(c *fiber.Ctx) error { return SubmitResultsAPI(c, db) })
	api.Post("/lock", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return LockResultsAPI(c, db) })

	// Marks entry page
	app.Get("/exam-schedules/:id/results", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("marks/index", fiber.Map{
			"Title":       "Marks Entry",
			"CurrentPage": "exam-schedules",
			"ScheduleID":  c.Params("id"),
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
			"user":        user,
		})
	})
}
