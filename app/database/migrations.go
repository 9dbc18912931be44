package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []struct {
		name string
		fn   func(*sql.DB) error
	}{
		{"core tables", createCoreTables},
		{"exam tables", createExamTables},
		{"workflow status column", addWorkflowStatusColumn},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			log.Printf("Migration step %q failed: %v", step.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createCoreTables(db *sql.DB) error {
	query := `
		CREATE EXTENSION IF NOT EXISTS pgcrypto;

		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS user_roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (user_id, role_id)
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			section TEXT NOT NULL DEFAULT '',
			teacher_id UUID REFERENCES users(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (name, section)
		);

		CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			code TEXT UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			admission_no TEXT UNIQUE NOT NULL,
			roll_no INTEGER NOT NULL DEFAULT 0,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			gender TEXT,
			class_id UUID REFERENCES classes(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create core tables: %v", err)
		return err
	}
	return nil
}

func createExamTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS exam_groups (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS exam_schedules (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_group_id UUID NOT NULL REFERENCES exam_groups(id),
			class_id UUID NOT NULL REFERENCES classes(id),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			teacher_id UUID REFERENCES users(id),
			exam_date TIMESTAMPTZ NOT NULL,
			max_marks DECIMAL(5,2) NOT NULL DEFAULT 100,
			passing_marks DECIMAL(5,2) NOT NULL DEFAULT 33,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (exam_group_id, class_id, subject_id)
		);

		CREATE TABLE IF NOT EXISTS exam_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_schedule_id UUID NOT NULL REFERENCES exam_schedules(id),
			student_id UUID NOT NULL REFERENCES students(id),
			marks_obtained DECIMAL(5,2),
			grade TEXT,
			remarks TEXT NOT NULL DEFAULT '',
			workflow_status TEXT NOT NULL DEFAULT 'DRAFT',
			entered_by UUID REFERENCES users(id),
			entered_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (exam_schedule_id, student_id)
		);

		CREATE TABLE IF NOT EXISTS grade_bands (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			grade TEXT NOT NULL,
			min_marks DECIMAL(5,2) NOT NULL,
			max_marks DECIMAL(5,2) NOT NULL,
			grade_point DECIMAL(4,2) NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			sort_order INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE INDEX IF NOT EXISTS idx_exam_results_schedule ON exam_results (exam_schedule_id);
		CREATE INDEX IF NOT EXISTS idx_exam_results_student ON exam_results (student_id);
		CREATE INDEX IF NOT EXISTS idx_exam_schedules_group ON exam_schedules (exam_group_id);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create exam tables: %v", err)
		return err
	}
	return nil
}

// Older deployments predate the review workflow; backfill the column.
func addWorkflowStatusColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'exam_results'
				AND column_name = 'workflow_status'
			) THEN
				ALTER TABLE exam_results ADD COLUMN workflow_status TEXT NOT NULL DEFAULT 'DRAFT';
				RAISE NOTICE 'Added workflow_status column to exam_results';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for workflow_status column: %v", err)
		return err
	}
	return nil
}
