package classes

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/database"
	"acadia-schools/app/models"
)

// GetClassesAPI returns all classes with their student counts
func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetAllClasses(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch classes",
		})
	}
	return c.JSON(classes)
}

// GetClassAPI returns one class with its roster
func GetClassAPI(c *fiber.Ctx, db *sql.DB) error {
	class, err := database.GetClassByID(db, c.Params("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Class not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch class",
		})
	}

	students, err := database.GetStudentsByClassID(db, class.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch class roster",
		})
	}
	class.Students = students

	return c.JSON(class)
}

// CreateClassAPI creates a new class
func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if class.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	if err := database.CreateClass(db, &class); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create class",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(class)
}
