package database

import (
	"database/sql"
	"fmt"

	"acadia-schools/app/models"
)

// GetExamScheduleByID fetches one exam schedule with its group, class and
// subject joined for display.
func GetExamScheduleByID(db *sql.DB, id string) (*models.ExamSchedule, error) {
	query := `
		SELECT
			es.id, es.exam_group_id, es.class_id, es.subject_id, es.teacher_id,
			es.exam_date, es.max_marks, es.passing_marks, es.created_at, es.updated_at,
			eg.id, eg.name,
			c.id, c.name, c.section,
			sub.id, sub.name, sub.code
		FROM exam_schedules es
		JOIN exam_groups eg ON es.exam_group_id = eg.id
		JOIN classes c ON es.class_id = c.id
		JOIN subjects sub ON es.subject_id = sub.id
		WHERE es.id = $1 AND es.deleted_at IS NULL
	`

	var schedule models.ExamSchedule
	var group models.ExamGroup
	var class models.Class
	var subject models.Subject
	var teacherID sql.NullString

	err := db.QueryRow(query, id).Scan(
		&schedule.ID, &schedule.ExamGroupID, &schedule.ClassID, &schedule.SubjectID, &teacherID,
		&schedule.ExamDate, &schedule.MaxMarks, &schedule.PassingMarks,
		&schedule.CreatedAt, &schedule.UpdatedAt,
		&group.ID, &group.Name,
		&class.ID, &class.Name, &class.Section,
		&subject.ID, &subject.Name, &subject.Code,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exam schedule: %w", err)
	}

	if teacherID.Valid {
		schedule.TeacherID = &teacherID.String
	}
	schedule.ExamGroup = &group
	schedule.Class = &class
	schedule.Subject = &subject
	return &schedule, nil
}

// GetBatchStatus returns the workflow status shared by all result rows of a
// schedule. A schedule with no rows yet reports DRAFT.
func GetBatchStatus(db *sql.DB, scheduleID string) (models.WorkflowStatus, error) {
	var status models.WorkflowStatus
	query := `
		SELECT workflow_status FROM exam_results
		WHERE exam_schedule_id = $1
		LIMIT 1
	`
	err := db.QueryRow(query, scheduleID).Scan(&status)
	if err == sql.ErrNoRows {
		return models.StatusDraft, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch batch status: %w", err)
	}
	return status, nil
}
