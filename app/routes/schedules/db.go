package schedules

import (
	"database/sql"
	"fmt"

	"acadia-schools/app/models"
)

// GetAllExamGroups fetches every exam term, newest first, with schedule counts.
func GetAllExamGroups(db *sql.DB) ([]*models.ExamGroup, error) {
	query := `
		SELECT
			g.id, g.name, g.is_active, g.created_at, g.updated_at,
			COUNT(es.id) FILTER (WHERE es.deleted_at IS NULL) as schedule_count
		FROM exam_groups g
		LEFT JOIN exam_schedules es ON g.id = es.exam_group_id
		WHERE g.deleted_at IS NULL
		GROUP BY g.id
		ORDER BY g.created_at DESC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exam groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.ExamGroup
	for rows.Next() {
		var g models.ExamGroup
		err := rows.Scan(&g.ID, &g.Name, &g.IsActive, &g.CreatedAt, &g.UpdatedAt, &g.ScheduleCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exam group: %w", err)
		}
		groups = append(groups, &g)
	}
	return groups, nil
}

// GetExamGroupByID fetches one exam term.
func GetExamGroupByID(db *sql.DB, id string) (*models.ExamGroup, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM exam_groups
		WHERE id = $1 AND deleted_at IS NULL
	`
	var g models.ExamGroup
	err := db.QueryRow(query, id).Scan(&g.ID, &g.Name, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("exam group not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exam group: %w", err)
	}
	return &g, nil
}

// CreateExamGroup creates a new exam term.
func CreateExamGroup(db *sql.DB, group *models.ExamGroup) error {
	query := `
		INSERT INTO exam_groups (name, is_active)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query, group.Name, group.IsActive).
		Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create exam group: %w", err)
	}
	return nil
}

// UpdateExamGroup updates an exam term's name and active flag.
func UpdateExamGroup(db *sql.DB, group *models.ExamGroup) error {
	query := `
		UPDATE exam_groups
		SET name = $1, is_active = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`
	res, err := db.Exec(query, group.Name, group.IsActive, group.ID)
	if err != nil {
		return fmt.Errorf("failed to update exam group: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("exam group not found")
	}
	return nil
}

// GetSchedulesByGroup fetches a term's schedules with their class, subject
// and workflow status, ordered by class then subject.
func GetSchedulesByGroup(db *sql.DB, examGroupID string) ([]*models.ExamSchedule, error) {
	query := `
		SELECT
			es.id, es.exam_group_id, es.class_id, es.subject_id, es.teacher_id,
			es.exam_date, es.max_marks, es.passing_marks, es.created_at, es.updated_at,
			c.name, c.section, sub.name, sub.code,
			COALESCE((
				SELECT r.workflow_status FROM exam_results r
				WHERE r.exam_schedule_id = es.id LIMIT 1
			), 'DRAFT')
		FROM exam_schedules es
		JOIN classes c ON es.class_id = c.id
		JOIN subjects sub ON es.subject_id = sub.id
		WHERE es.exam_group_id = $1 AND es.deleted_at IS NULL
		ORDER BY c.name, c.section, sub.name
	`
	rows, err := db.Query(query, examGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exam schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*models.ExamSchedule
	for rows.Next() {
		var es models.ExamSchedule
		var class models.Class
		var subject models.Subject
		err := rows.Scan(
			&es.ID, &es.ExamGroupID, &es.ClassID, &es.SubjectID, &es.TeacherID,
			&es.ExamDate, &es.MaxMarks, &es.PassingMarks, &es.CreatedAt, &es.UpdatedAt,
			&class.Name, &class.Section, &subject.Name, &subject.Code,
			&es.WorkflowStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exam schedule: %w", err)
		}
		class.ID = es.ClassID
		subject.ID = es.SubjectID
		es.Class = &class
		es.Subject = &subject
		schedules = append(schedules, &es)
	}
	return schedules, nil
}

// CreateExamSchedule creates one subject exam within a term.
func CreateExamSchedule(db *sql.DB, schedule *models.ExamSchedule) error {
	query := `
		INSERT INTO exam_schedules (exam_group_id, class_id, subject_id, teacher_id, exam_date, max_marks, passing_marks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query,
		schedule.ExamGroupID, schedule.ClassID, schedule.SubjectID, schedule.TeacherID,
		schedule.ExamDate, schedule.MaxMarks, schedule.PassingMarks,
	).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create exam schedule: %w", err)
	}
	return nil
}

// DeleteExamSchedule removes a schedule and its result rows together.
// Locked schedules are refused; their results are frozen history.
func DeleteExamSchedule(db *sql.DB, scheduleID string) error {
	var status string
	err := db.QueryRow(`
		SELECT COALESCE((
			SELECT workflow_status FROM exam_results
			WHERE exam_schedule_id = $1 LIMIT 1
		), 'DRAFT')
	`, scheduleID).Scan(&status)
	if err != nil {
		return fmt.Errorf("failed to check workflow status: %w", err)
	}
	if models.WorkflowStatus(status) == models.StatusLocked {
		return models.ErrLocked
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM exam_results WHERE exam_schedule_id = $1`, scheduleID); err != nil {
		return fmt.Errorf("failed to delete results: %w", err)
	}

	res, err := tx.Exec(`UPDATE exam_schedules SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete exam schedule: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return models.ErrScheduleNotFound
	}

	return tx.Commit()
}
