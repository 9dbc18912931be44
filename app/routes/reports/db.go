package reports

import (
	"database/sql"
	"fmt"
)

// LoadTermResults fetches every recorded mark for one exam term, joined with
// its student, class and subject. Seeded rows with no mark yet are left out.
// classID narrows the load to one class when non-empty.
func LoadTermResults(db *sql.DB, examGroupID, classID string) ([]ResultRow, error) {
	query := `
		SELECT
			s.id, s.first_name || ' ' || s.last_name, s.admission_no, s.roll_no,
			c.id, c.name || CASE WHEN c.section != '' THEN '-' || c.section ELSE '' END,
			sub.id, sub.name, sub.code,
			r.marks_obtained
		FROM exam_results r
		JOIN exam_schedules es ON r.exam_schedule_id = es.id
		JOIN students s ON r.student_id = s.id
		JOIN classes c ON es.class_id = c.id
		JOIN subjects sub ON es.subject_id = sub.id
		WHERE es.exam_group_id = $1
		  AND r.marks_obtained IS NOT NULL
		  AND s.deleted_at IS NULL
	`
	args := []interface{}{examGroupID}
	if classID != "" {
		query += ` AND es.class_id = $2`
		args = append(args, classID)
	}
	query += ` ORDER BY c.name, c.section, s.roll_no, sub.name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch term results: %w", err)
	}
	defer rows.Close()

	var results []ResultRow
	for rows.Next() {
		var row ResultRow
		err := rows.Scan(
			&row.StudentID, &row.StudentName, &row.AdmissionNo, &row.RollNo,
			&row.ClassID, &row.ClassName,
			&row.SubjectID, &row.SubjectName, &row.SubjectCode,
			&row.Marks,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, row)
	}

	return results, nil
}
