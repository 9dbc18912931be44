package grading

import (
	"database/sql"
	"fmt"

	"acadia-schools/app/models"
)

// GetAllGradeBands fetches the active grading system ordered ascending by min_marks
func GetAllGradeBands(db *sql.DB) ([]*models.GradeBand, error) {
	query := `
		SELECT id, grade, min_marks, max_marks, grade_point, description, sort_order, is_active, created_at, updated_at
		FROM grade_bands
		WHERE deleted_at IS NULL AND is_active = true
		ORDER BY min_marks
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grade bands: %w", err)
	}
	defer rows.Close()

	var bands []*models.GradeBand
	for rows.Next() {
		var b models.GradeBand
		err := rows.Scan(
			&b.ID, &b.Grade, &b.MinMarks, &b.MaxMarks, &b.GradePoint,
			&b.Description, &b.SortOrder, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade band: %w", err)
		}
		bands = append(bands, &b)
	}
	return bands, nil
}

// CreateGradeBand inserts a new grade band record
func CreateGradeBand(db *sql.DB, b *models.GradeBand) error {
	query := `
		INSERT INTO grade_bands (grade, min_marks, max_marks, grade_point, description, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING id, created_at, updated_at
	`

	err := db.QueryRow(
		query,
		b.Grade, b.MinMarks, b.MaxMarks, b.GradePoint, b.Description, b.SortOrder,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create grade band: %w", err)
	}
	return nil
}

// UpdateGradeBand updates an existing grade band record
func UpdateGradeBand(db *sql.DB, b *models.GradeBand) error {
	query := `
		UPDATE grade_bands
		SET grade = $1, min_marks = $2, max_marks = $3, grade_point = $4,
			description = $5, sort_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
	`

	_, err := db.Exec(
		query,
		b.Grade, b.MinMarks, b.MaxMarks, b.GradePoint,
		b.Description, b.SortOrder, b.IsActive, b.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update grade band: %w", err)
	}
	return nil
}

// DeleteGradeBand soft deletes a grade band record
func DeleteGradeBand(db *sql.DB, id string) error {
	query := `UPDATE grade_bands SET deleted_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}
