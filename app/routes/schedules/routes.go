package schedules

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/models"
	"acadia-schools/app/routes/auth"
)

// SetupSchedulesRoutes sets up the exam term and schedule routes
func SetupSchedulesRoutes(app *fiber.App, db *sql.DB) {
	// API routes
	api := app.Group("/api/exam-groups")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetExamGroupsAPI(c, db) })
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return CreateExamGroupAPI(c, db) })
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return UpdateExamGroupAPI(c, db) })
	api.Get("/:id/schedules", func(c *fiber.Ctx) error { return GetSchedulesAPI(c, db) })
	api.Post("/:id/schedules", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return CreateScheduleAPI(c, db) })
	api.Delete("/:id/schedules/:scheduleId", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error { return DeleteScheduleAPI(c, db) })

	// Exam schedules page
	app.Get("/exam-schedules", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("schedules/index", fiber.Map{
			"Title":       "Exam Schedules",
			"CurrentPage": "exam-schedules",
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
			"user":        user,
		})
	})
}
