package marks

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/database"
	"acadia-schools/app/models"
)

// GetResultsAPI returns the full entry grid for a schedule: every enrolled
// student with their result row, plus the batch's workflow status.
func GetResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	scheduleID := c.Params("id")

	schedule, batch, err := ListBatch(db, scheduleID)
	if err != nil {
		return mapWorkflowError(c, err, "Failed to fetch results")
	}

	status, err := database.GetBatchStatus(db, scheduleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch workflow status",
		})
	}

	user, _ := c.Locals("user").(*models.User)

	return c.JSON(fiber.Map{
		"schedule":        schedule,
		"results":         batch,
		"workflow_status": status,
		"can_edit":        ActorCanEdit(user, status),
		"can_submit":      status == models.StatusDraft && CanSubmit(user),
		"can_lock":        status != models.StatusLocked && CanLock(user),
	})
}

// SaveResultsAPI writes a batch of marks for a schedule. All entries are
// validated and saved together; one bad entry rejects the whole request.
func SaveResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	scheduleID := c.Params("id")

	var req struct {
		Results []BatchEntry `json:"results"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if len(req.Results) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "results is required",
		})
	}

	user, _ := c.Locals("user").(*models.User)

	saved, err := UpsertBatch(db, scheduleID, req.Results, user)
	if err != nil {
		return mapWorkflowError(c, err, "Failed to save results")
	}

	return c.JSON(fiber.Map{
		"message": "Results saved successfully",
		"results": saved,
	})
}

// SubmitResultsAPI moves a DRAFT batch to SUBMITTED. Fails when any student
// is still missing a mark.
func SubmitResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	scheduleID := c.Params("id")
	user, _ := c.Locals("user").(*models.User)

	status, err := database.GetBatchStatus(db, scheduleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch workflow status",
		})
	}

	if err := SubmitBatch(db, scheduleID, user, status); err != nil {
		return mapWorkflowError(c, err, "Failed to submit results")
	}

	return c.JSON(fiber.Map{
		"message":         "Results submitted for review",
		"workflow_status": models.StatusSubmitted,
	})
}

// LockResultsAPI freezes a batch. Admin only.
func LockResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	scheduleID := c.Params("id")
	user, _ := c.Locals("user").(*models.User)

	status, err := database.GetBatchStatus(db, scheduleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch workflow status",
		})
	}

	if err := LockBatch(db, scheduleID, user, status); err != nil {
		return mapWorkflowError(c, err, "Failed to lock results")
	}

	return c.JSON(fiber.Map{
		"message":         "Results locked",
		"workflow_status": models.StatusLocked,
	})
}

// mapWorkflowError translates the marks error taxonomy onto HTTP statuses.
func mapWorkflowError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, models.ErrScheduleNotFound), errors.Is(err, models.ErrStudentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrPermission):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrLocked):
		return c.Status(fiber.StatusLocked).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrStateConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrIncompleteEntry):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case models.IsValidationError(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
	}
}
