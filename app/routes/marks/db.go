package marks

import (
	"database/sql"
	"fmt"
	"time"

	"acadia-schools/app/database"
	"acadia-schools/app/models"
	"acadia-schools/app/routes/grading"
)

// BatchEntry is one student's mark in an incoming batch write.
type BatchEntry struct {
	StudentID     string   `json:"student_id"`
	MarksObtained *float64 `json:"marks_obtained"`
	Remarks       string   `json:"remarks,omitempty"`
}

// StudentResult pairs a roster entry with the student's result row for one
// schedule. Result is nil when no row has been seeded yet.
type StudentResult struct {
	Student *models.Student    `json:"student"`
	Result  *models.ExamResult `json:"result,omitempty"`
}

// ValidateBatch checks every entry before any write happens. A single bad
// entry rejects the whole batch.
func ValidateBatch(entries []BatchEntry, maxMarks float64) error {
	for _, entry := range entries {
		if entry.StudentID == "" {
			return models.NewValidationError("student_id", "student_id is required")
		}
		if entry.MarksObtained != nil {
			m := *entry.MarksObtained
			if m < 0 || m > maxMarks {
				return models.NewValidationError("marks_obtained",
					"marks %.2f out of range [0, %.2f] for student %s", m, maxMarks, entry.StudentID)
			}
		}
	}
	return nil
}

// UpsertBatch validates and persists a batch of marks for one schedule.
// The whole batch is written in a single transaction; one invalid entry
// rejects all of them. The acting user is checked against the batch's
// current workflow state before anything is written.
func UpsertBatch(db *sql.DB, scheduleID string, entries []BatchEntry, actor *models.User) ([]*models.ExamResult, error) {
	schedule, err := database.GetExamScheduleByID(db, scheduleID)
	if err != nil {
		return nil, err
	}

	status, err := database.GetBatchStatus(db, scheduleID)
	if err != nil {
		return nil, err
	}
	if status == models.StatusLocked {
		return nil, models.ErrLocked
	}
	if !ActorCanEdit(actor, status) {
		return nil, models.ErrPermission
	}

	if err := ValidateBatch(entries, schedule.MaxMarks); err != nil {
		return nil, err
	}

	bands, err := grading.GetAllGradeBands(db)
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	checkStmt, err := tx.Prepare(`
		SELECT id, remarks FROM exam_results
		WHERE exam_schedule_id = $1 AND student_id = $2
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare check statement: %w", err)
	}
	defer checkStmt.Close()

	insertStmt, err := tx.Prepare(`
		INSERT INTO exam_results (exam_schedule_id, student_id, marks_obtained, grade, remarks, workflow_status, entered_by, entered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at, updated_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer insertStmt.Close()

	updateStmt, err := tx.Prepare(`
		UPDATE exam_results
		SET marks_obtained = $1, grade = $2, remarks = $3, entered_by = $4, entered_at = NOW(), updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare update statement: %w", err)
	}
	defer updateStmt.Close()

	now := time.Now()
	var saved []*models.ExamResult

	for _, entry := range entries {
		var grade *string
		var band *models.GradeBand
		if entry.MarksObtained != nil {
			if band = grading.ResolveGrade(bands, *entry.MarksObtained); band != nil {
				g := band.Grade
				grade = &g
			}
		}

		result := &models.ExamResult{
			ExamScheduleID: scheduleID,
			StudentID:      entry.StudentID,
			MarksObtained:  entry.MarksObtained,
			Grade:          grade,
			WorkflowStatus: status,
			EnteredBy:      &actor.ID,
			EnteredAt:      &now,
		}

		var existingID string
		var existingRemarks string
		err := checkStmt.QueryRow(scheduleID, entry.StudentID).Scan(&existingID, &existingRemarks)

		switch {
		case err == sql.ErrNoRows:
			result.Remarks = entry.Remarks
			if result.Remarks == "" && entry.MarksObtained != nil {
				result.Remarks = grading.FillRemark("", band)
			}
			err = insertStmt.QueryRow(
				scheduleID, entry.StudentID, entry.MarksObtained, grade,
				result.Remarks, status, actor.ID,
			).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
			if err != nil {
				return nil, fmt.Errorf("failed to insert result for student %s: %w", entry.StudentID, err)
			}

		case err == nil:
			result.ID = existingID
			result.Remarks = entry.Remarks
			if result.Remarks == "" {
				result.Remarks = existingRemarks
				if entry.MarksObtained != nil {
					result.Remarks = grading.FillRemark(existingRemarks, band)
				}
			}
			err = updateStmt.QueryRow(
				entry.MarksObtained, grade, result.Remarks, actor.ID, existingID,
			).Scan(&result.CreatedAt, &result.UpdatedAt)
			if err != nil {
				return nil, fmt.Errorf("failed to update result for student %s: %w", entry.StudentID, err)
			}

		default:
			return nil, fmt.Errorf("failed to check existing result: %w", err)
		}

		saved = append(saved, result)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return saved, nil
}

// ListBatch fetches every enrolled student of the schedule's class with their
// result row, ordered by roll number. Pure read.
func ListBatch(db *sql.DB, scheduleID string) (*models.ExamSchedule, []*StudentResult, error) {
	schedule, err := database.GetExamScheduleByID(db, scheduleID)
	if err != nil {
		return nil, nil, err
	}

	query := `
		SELECT
			s.id, s.admission_no, s.roll_no, s.first_name, s.last_name,
			r.id, r.marks_obtained, r.grade, r.remarks, r.workflow_status, r.entered_at, r.updated_at
		FROM students s
		LEFT JOIN exam_results r ON s.id = r.student_id AND r.exam_schedule_id = $1
		WHERE s.class_id = $2 AND s.is_active = true AND s.deleted_at IS NULL
		ORDER BY s.roll_no, s.first_name, s.last_name
	`

	rows, err := db.Query(query, scheduleID, schedule.ClassID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch students with results: %w", err)
	}
	defer rows.Close()

	var batch []*StudentResult
	for rows.Next() {
		var student models.Student
		var resultID sql.NullString
		var marks sql.NullFloat64
		var grade sql.NullString
		var remarks sql.NullString
		var status sql.NullString
		var enteredAt sql.NullTime
		var updatedAt sql.NullTime

		err := rows.Scan(
			&student.ID, &student.AdmissionNo, &student.RollNo,
			&student.FirstName, &student.LastName,
			&resultID, &marks, &grade, &remarks, &status, &enteredAt, &updatedAt,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan student with result: %w", err)
		}

		sr := &StudentResult{Student: &student}
		if resultID.Valid {
			result := &models.ExamResult{
				ID:             resultID.String,
				ExamScheduleID: scheduleID,
				StudentID:      student.ID,
				WorkflowStatus: models.WorkflowStatus(status.String),
			}
			if marks.Valid {
				result.MarksObtained = &marks.Float64
			}
			if grade.Valid {
				result.Grade = &grade.String
			}
			if remarks.Valid {
				result.Remarks = remarks.String
			}
			if enteredAt.Valid {
				result.EnteredAt = &enteredAt.Time
			}
			if updatedAt.Valid {
				result.UpdatedAt = updatedAt.Time
			}
			sr.Result = result
		}
		batch = append(batch, sr)
	}

	return schedule, batch, nil
}

// SeedBatch creates an empty DRAFT result row for every enrolled student of
// the schedule's class that does not already have one. Called when a schedule
// opens for entry; safe to call again after roster changes.
func SeedBatch(db *sql.DB, scheduleID string) (int, error) {
	schedule, err := database.GetExamScheduleByID(db, scheduleID)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO exam_results (exam_schedule_id, student_id, workflow_status)
		SELECT $1, s.id, $2
		FROM students s
		WHERE s.class_id = $3 AND s.is_active = true AND s.deleted_at IS NULL
		ON CONFLICT (exam_schedule_id, student_id) DO NOTHING
	`
	res, err := db.Exec(query, scheduleID, models.StatusDraft, schedule.ClassID)
	if err != nil {
		return 0, fmt.Errorf("failed to seed result rows: %w", err)
	}
	seeded, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(seeded), nil
}

// SubmitBatch moves a DRAFT batch to SUBMITTED. The caller supplies the
// workflow status it last observed; the transition and the completeness
// check run as a single conditional update, so of two concurrent submitters
// exactly one wins and a mark nulled mid-flight blocks the submit.
func SubmitBatch(db *sql.DB, scheduleID string, actor *models.User, expected models.WorkflowStatus) error {
	if _, err := database.GetExamScheduleByID(db, scheduleID); err != nil {
		return err
	}
	if !CanSubmit(actor) {
		return models.ErrPermission
	}
	if !ValidTransition(expected, models.StatusSubmitted) {
		return models.ErrStateConflict
	}

	// Completeness only counts students still on the roster; a result row
	// left behind by a removed student must not block the batch.
	query := `
		UPDATE exam_results
		SET workflow_status = $1, updated_at = NOW()
		WHERE exam_schedule_id = $2 AND workflow_status = $3
		AND NOT EXISTS (
			SELECT 1
			FROM exam_results r
			JOIN students s ON r.student_id = s.id
			WHERE r.exam_schedule_id = $2 AND r.marks_obtained IS NULL
			AND s.is_active = true AND s.deleted_at IS NULL
		)
	`
	res, err := db.Exec(query, models.StatusSubmitted, scheduleID, expected)
	if err != nil {
		return fmt.Errorf("failed to submit batch: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing moved: either the batch is incomplete (or empty) or another
	// caller transitioned it first.
	total, missing, err := countRosterMarks(db, scheduleID)
	if err != nil {
		return err
	}
	if total == 0 || missing > 0 {
		return models.ErrIncompleteEntry
	}
	return models.ErrStateConflict
}

// LockBatch freezes a batch. Admin only. SUBMITTED -> LOCKED is the normal
// path; DRAFT -> LOCKED is allowed as an admin override.
func LockBatch(db *sql.DB, scheduleID string, actor *models.User, expected models.WorkflowStatus) error {
	if _, err := database.GetExamScheduleByID(db, scheduleID); err != nil {
		return err
	}
	if !CanLock(actor) {
		return models.ErrPermission
	}
	if !ValidTransition(expected, models.StatusLocked) {
		return models.ErrStateConflict
	}

	// An unseeded schedule has nothing to lock
	total, _, err := countRosterMarks(db, scheduleID)
	if err != nil {
		return err
	}
	if total == 0 {
		return models.ErrIncompleteEntry
	}

	return transition(db, scheduleID, expected, models.StatusLocked)
}

// countRosterMarks counts a schedule's result rows belonging to students
// still on the roster, and how many of those have no mark yet. The same
// filter the entry grid applies, so the two never disagree.
func countRosterMarks(db *sql.DB, scheduleID string) (total, missing int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE r.marks_obtained IS NULL)
		FROM exam_results r
		JOIN students s ON r.student_id = s.id
		WHERE r.exam_schedule_id = $1
		AND s.is_active = true AND s.deleted_at IS NULL
	`
	if err := db.QueryRow(query, scheduleID).Scan(&total, &missing); err != nil {
		return 0, 0, fmt.Errorf("failed to check batch completeness: %w", err)
	}
	return total, missing, nil
}

// transition performs the optimistic check-then-set on every row of the
// batch. The stored status must still equal expected or nothing is updated.
func transition(db *sql.DB, scheduleID string, expected, next models.WorkflowStatus) error {
	query := `
		UPDATE exam_results
		SET workflow_status = $1, updated_at = NOW()
		WHERE exam_schedule_id = $2 AND workflow_status = $3
	`
	res, err := db.Exec(query, next, scheduleID, expected)
	if err != nil {
		return fmt.Errorf("failed to update workflow status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrStateConflict
	}
	return nil
}
