package reports

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/models"
	"acadia-schools/app/routes/auth"
)

// SetupReportsRoutes sets up the performance report routes
func SetupReportsRoutes(app *fiber.App, db *sql.DB) {
	// API routes
	api := app.Group("/api/exam-groups/:id")
	api.Use(auth.AuthMiddleware)
	api.Get("/report", func(c *fiber.Ctx) error { return GetTermReportAPI(c, db) })
	api.Get("/rankings", func(c *fiber.Ctx) error { return GetRankingsAPI(c, db) })

	// Performance report page
	app.Get("/exam-groups/:id/report", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("reports/index", fiber.Map{
			"Title":       "Performance Report",
			"CurrentPage": "reports",
			"ExamGroupID": c.Params("id"),
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
			"user":        user,
		})
	})
}
