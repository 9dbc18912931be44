package grading

import (
	"database/sql"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/models"
)

// GetGradeBandsAPI returns the configured grading system
func GetGradeBandsAPI(c *fiber.Ctx, db *sql.DB) error {
	bands, err := GetAllGradeBands(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch grade bands",
		})
	}
	return c.JSON(bands)
}

// ResolveGradeAPI resolves a raw mark against the configured bands, used by
// the entry grid to preview grades while typing
func ResolveGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	marks, err := strconv.ParseFloat(c.Query("marks"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "marks is required and must be a number",
		})
	}

	bands, err := GetAllGradeBands(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch grade bands",
		})
	}

	band := ResolveGrade(bands, marks)
	if band == nil {
		return c.JSON(fiber.Map{"graded": false})
	}

	return c.JSON(fiber.Map{
		"graded":      true,
		"grade":       band.Grade,
		"grade_point": band.GradePoint,
		"description": band.Description,
	})
}

// CreateGradeBandAPI creates a new grade band
func CreateGradeBandAPI(c *fiber.Ctx, db *sql.DB) error {
	var band models.GradeBand
	if err := c.BodyParser(&band); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if band.Grade == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "grade is required",
		})
	}
	if band.MaxMarks < band.MinMarks {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "max_marks cannot be below min_marks",
		})
	}

	if err := CreateGradeBand(db, &band); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create grade band",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(band)
}

// UpdateGradeBandAPI updates an existing grade band
func UpdateGradeBandAPI(c *fiber.Ctx, db *sql.DB) error {
	var band models.GradeBand
	if err := c.BodyParser(&band); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	band.ID = c.Params("id")

	if band.MaxMarks < band.MinMarks {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "max_marks cannot be below min_marks",
		})
	}

	if err := UpdateGradeBand(db, &band); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update grade band",
		})
	}
	return c.JSON(band)
}

// DeleteGradeBandAPI soft deletes a grade band
func DeleteGradeBandAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := DeleteGradeBand(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete grade band",
		})
	}
	return c.JSON(fiber.Map{"message": "Grade band deleted"})
}
