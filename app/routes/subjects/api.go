package subjects

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/database"
	"acadia-schools/app/models"
)

// GetSubjectsAPI returns all subjects
func GetSubjectsAPI(c *fiber.Ctx, db *sql.DB) error {
	subjects, err := database.GetAllSubjects(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch subjects",
		})
	}
	return c.JSON(subjects)
}

// GetSubjectAPI returns one subject
func GetSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	subject, err := database.GetSubjectByID(db, c.Params("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subject not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch subject",
		})
	}
	return c.JSON(subject)
}

// CreateSubjectAPI creates a new subject
func CreateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var subject models.Subject
	if err := c.BodyParser(&subject); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if subject.Name == "" || subject.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and code are required",
		})
	}

	if err := database.CreateSubject(db, &subject); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create subject",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(subject)
}
