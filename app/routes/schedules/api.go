package schedules

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/models"
	"acadia-schools/app/routes/marks"
)

// GetExamGroupsAPI returns all exam terms
func GetExamGroupsAPI(c *fiber.Ctx, db *sql.DB) error {
	groups, err := GetAllExamGroups(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch exam groups",
		})
	}
	return c.JSON(groups)
}

// CreateExamGroupAPI creates a new exam term
func CreateExamGroupAPI(c *fiber.Ctx, db *sql.DB) error {
	var group models.ExamGroup
	if err := c.BodyParser(&group); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if group.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	if err := CreateExamGroup(db, &group); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create exam group",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// UpdateExamGroupAPI renames an exam term or toggles its active flag
func UpdateExamGroupAPI(c *fiber.Ctx, db *sql.DB) error {
	var group models.ExamGroup
	if err := c.BodyParser(&group); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	group.ID = c.Params("id")
	if group.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	if err := UpdateExamGroup(db, &group); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update exam group",
		})
	}
	return c.JSON(group)
}

// GetSchedulesAPI returns a term's schedules with their workflow status
func GetSchedulesAPI(c *fiber.Ctx, db *sql.DB) error {
	schedules, err := GetSchedulesByGroup(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch exam schedules",
		})
	}
	return c.JSON(schedules)
}

// CreateScheduleAPI creates one subject exam within a term and seeds an
// empty result row for every enrolled student, so the entry grid shows the
// whole roster from day one.
func CreateScheduleAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		ClassID      string   `json:"class_id"`
		SubjectID    string   `json:"subject_id"`
		TeacherID    *string  `json:"teacher_id"`
		ExamDate     string   `json:"exam_date"`
		MaxMarks     *float64 `json:"max_marks"`
		PassingMarks *float64 `json:"passing_marks"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.ClassID == "" || req.SubjectID == "" || req.ExamDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "class_id, subject_id and exam_date are required",
		})
	}

	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "exam_date must be in YYYY-MM-DD format",
		})
	}

	schedule := models.ExamSchedule{
		ExamGroupID:  c.Params("id"),
		ClassID:      req.ClassID,
		SubjectID:    req.SubjectID,
		TeacherID:    req.TeacherID,
		ExamDate:     examDate,
		MaxMarks:     100,
		PassingMarks: 33,
	}
	if req.MaxMarks != nil {
		schedule.MaxMarks = *req.MaxMarks
	}
	if req.PassingMarks != nil {
		schedule.PassingMarks = *req.PassingMarks
	}
	if schedule.MaxMarks <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "max_marks must be positive",
		})
	}

	if err := CreateExamSchedule(db, &schedule); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create exam schedule",
		})
	}

	seeded, err := marks.SeedBatch(db, schedule.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to seed result rows",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"schedule": schedule,
		"seeded":   seeded,
	})
}

// DeleteScheduleAPI removes a schedule with its result rows. Refused once
// the batch is locked.
func DeleteScheduleAPI(c *fiber.Ctx, db *sql.DB) error {
	err := DeleteExamSchedule(db, c.Params("scheduleId"))
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "Exam schedule deleted"})
	case errors.Is(err, models.ErrScheduleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrLocked):
		return c.Status(fiber.StatusLocked).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete exam schedule",
		})
	}
}
