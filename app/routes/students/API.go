package students

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"acadia-schools/app/database"
	"acadia-schools/app/models"
)

// GetStudentsAPI returns the student roster. Pass ?class_id= to narrow to
// one class, ordered by roll number.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Query("class_id")

	var students []*models.Student
	var err error
	if classID != "" {
		students, err = database.GetStudentsByClassID(db, classID)
	} else {
		students, err = database.GetAllStudents(db)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch students",
		})
	}
	return c.JSON(students)
}

// GetStudentAPI returns one student
func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if errors.Is(err, models.ErrStudentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Student not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch student",
		})
	}
	return c.JSON(student)
}

// CreateStudentAPI enrolls a new student
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if student.AdmissionNo == "" || student.FirstName == "" || student.LastName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "admission_no, first_name and last_name are required",
		})
	}

	if err := database.CreateStudent(db, &student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create student",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

// UpdateStudentAPI updates a student's record
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if errors.Is(err, models.ErrStudentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Student not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch student",
		})
	}

	if err := c.BodyParser(student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	student.ID = c.Params("id")

	if err := database.UpdateStudent(db, student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update student",
		})
	}
	return c.JSON(student)
}

// DeleteStudentAPI removes a student from the roster. Past exam results
// stay in place; reports skip students that no longer resolve.
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteStudent(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete student",
		})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
