package reports

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/routes/schedules"
)

// GetTermReportAPI returns the full performance report for one exam term:
// per-subject and per-class aggregates, rankings and toppers. Pass
// ?class_id= to narrow the report to a single class.
func GetTermReportAPI(c *fiber.Ctx, db *sql.DB) error {
	examGroupID := c.Params("id")
	classID := c.Query("class_id")

	group, err := schedules.GetExamGroupByID(db, examGroupID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Exam group not found",
		})
	}

	rows, err := LoadTermResults(db, examGroupID, classID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch term results",
		})
	}

	return c.JSON(fiber.Map{
		"exam_group":   group,
		"result_count": len(rows),
		"subjects":     SubjectPerformances(rows),
		"classes":      ClassPerformances(rows),
		"rankings":     StudentRankings(rows),
		"toppers":      Toppers(rows),
	})
}

// GetRankingsAPI returns just the ranked student list for a term.
func GetRankingsAPI(c *fiber.Ctx, db *sql.DB) error {
	examGroupID := c.Params("id")
	classID := c.Query("class_id")

	rows, err := LoadTermResults(db, examGroupID, classID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch term results",
		})
	}

	return c.JSON(fiber.Map{
		"exam_group_id": examGroupID,
		"rankings":      StudentRankings(rows),
	})
}
