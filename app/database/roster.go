package database

import (
	"database/sql"
	"fmt"

	"acadia-schools/app/models"
)

// GetStudentsByClassID fetches all active students in a class ordered by roll number
func GetStudentsByClassID(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `
		SELECT id, admission_no, roll_no, first_name, last_name, gender, class_id, is_active, created_at, updated_at
		FROM students
		WHERE class_id = $1 AND is_active = true AND deleted_at IS NULL
		ORDER BY roll_no, first_name, last_name
	`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, nil
}

// GetAllStudents fetches every active student with their class, ordered by
// class then roll number
func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.admission_no, s.roll_no, s.first_name, s.last_name, s.gender, s.class_id, s.is_active, s.created_at, s.updated_at
		FROM students s
		LEFT JOIN classes c ON s.class_id = c.id
		WHERE s.is_active = true AND s.deleted_at IS NULL
		ORDER BY c.name, c.section, s.roll_no
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, nil
}

func scanStudent(rows *sql.Rows) (*models.Student, error) {
	var student models.Student
	var gender sql.NullString
	var classID sql.NullString

	err := rows.Scan(
		&student.ID,
		&student.AdmissionNo,
		&student.RollNo,
		&student.FirstName,
		&student.LastName,
		&gender,
		&classID,
		&student.IsActive,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan student: %w", err)
	}

	if gender.Valid {
		genderVal := models.Gender(gender.String)
		student.Gender = &genderVal
	}
	if classID.Valid {
		student.ClassID = &classID.String
	}
	return &student, nil
}

// GetStudentByID fetches one active student
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `
		SELECT id, admission_no, roll_no, first_name, last_name, gender, class_id, is_active, created_at, updated_at
		FROM students
		WHERE id = $1 AND deleted_at IS NULL
	`

	var student models.Student
	var gender sql.NullString
	var classID sql.NullString

	err := db.QueryRow(query, id).Scan(
		&student.ID, &student.AdmissionNo, &student.RollNo,
		&student.FirstName, &student.LastName, &gender, &classID,
		&student.IsActive, &student.CreatedAt, &student.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}

	if gender.Valid {
		genderVal := models.Gender(gender.String)
		student.Gender = &genderVal
	}
	if classID.Valid {
		student.ClassID = &classID.String
	}
	return &student, nil
}

// CreateStudent inserts a new student record
func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `
		INSERT INTO students (admission_no, roll_no, first_name, last_name, gender, class_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(
		query,
		student.AdmissionNo, student.RollNo, student.FirstName, student.LastName,
		student.Gender, student.ClassID,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// UpdateStudent updates an existing student record
func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `
		UPDATE students
		SET admission_no = $1, roll_no = $2, first_name = $3, last_name = $4,
			gender = $5, class_id = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
	`
	_, err := db.Exec(
		query,
		student.AdmissionNo, student.RollNo, student.FirstName, student.LastName,
		student.Gender, student.ClassID, student.IsActive, student.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

// DeleteStudent soft deletes a student
func DeleteStudent(db *sql.DB, id string) error {
	query := `UPDATE students SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, id)
	return err
}

// GetAllClasses fetches all active classes with student counts
func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `
		SELECT c.id, c.name, c.section, c.teacher_id, c.is_active, c.created_at, c.updated_at,
			COUNT(s.id) FILTER (WHERE s.is_active = true AND s.deleted_at IS NULL)
		FROM classes c
		LEFT JOIN students s ON s.class_id = c.id
		WHERE c.deleted_at IS NULL
		GROUP BY c.id
		ORDER BY c.name, c.section
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var class models.Class
		var teacherID sql.NullString
		err := rows.Scan(
			&class.ID, &class.Name, &class.Section, &teacherID,
			&class.IsActive, &class.CreatedAt, &class.UpdatedAt, &class.StudentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		if teacherID.Valid {
			class.TeacherID = &teacherID.String
		}
		classes = append(classes, &class)
	}
	return classes, nil
}

// GetClassByID fetches one class
func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	query := `
		SELECT id, name, section, teacher_id, is_active, created_at, updated_at
		FROM classes
		WHERE id = $1 AND deleted_at IS NULL
	`

	var class models.Class
	var teacherID sql.NullString
	err := db.QueryRow(query, id).Scan(
		&class.ID, &class.Name, &class.Section, &teacherID,
		&class.IsActive, &class.CreatedAt, &class.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class: %w", err)
	}
	if teacherID.Valid {
		class.TeacherID = &teacherID.String
	}
	return &class, nil
}

// CreateClass inserts a new class record
func CreateClass(db *sql.DB, class *models.Class) error {
	query := `
		INSERT INTO classes (name, section, teacher_id, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query, class.Name, class.Section, class.TeacherID).
		Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

// GetAllSubjects fetches all active subjects
func GetAllSubjects(db *sql.DB) ([]*models.Subject, error) {
	query := `
		SELECT id, name, code, is_active, created_at, updated_at
		FROM subjects
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		err := rows.Scan(
			&subject.ID, &subject.Name, &subject.Code,
			&subject.IsActive, &subject.CreatedAt, &subject.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, &subject)
	}
	return subjects, nil
}

// GetSubjectByID fetches one subject
func GetSubjectByID(db *sql.DB, id string) (*models.Subject, error) {
	query := `
		SELECT id, name, code, is_active, created_at, updated_at
		FROM subjects
		WHERE id = $1 AND deleted_at IS NULL
	`

	var subject models.Subject
	err := db.QueryRow(query, id).Scan(
		&subject.ID, &subject.Name, &subject.Code,
		&subject.IsActive, &subject.CreatedAt, &subject.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject: %w", err)
	}
	return &subject, nil
}

// CreateSubject inserts a new subject record
func CreateSubject(db *sql.DB, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, code, is_active)
		VALUES ($1, $2, true)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query, subject.Name, subject.Code).
		Scan(&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}
