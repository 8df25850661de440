package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/snaptrack/attendance-api/internal/models"
)

// ClassRepository provides PostgreSQL access to the class roster.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// ClassesForTeacher returns the classes owned by the given teacher.
func (r *ClassRepository) ClassesForTeacher(ctx context.Context, teacherID string) ([]models.Class, error) {
	const query = `SELECT id, name, schedule, teacher_id, students FROM classes WHERE teacher_id = $1 ORDER BY id`
	classes := []models.Class{}
	if err := r.db.SelectContext(ctx, &classes, query, teacherID); err != nil {
		return nil, fmt.Errorf("list classes for teacher: %w", err)
	}
	return classes, nil
}

// ClassesForStudent returns the classes the given student is enrolled in.
func (r *ClassRepository) ClassesForStudent(ctx context.Context, studentID string) ([]models.Class, error) {
	const query = `SELECT id, name, schedule, teacher_id, students FROM classes WHERE $1 = ANY(students) ORDER BY id`
	classes := []models.Class{}
	if err := r.db.SelectContext(ctx, &classes, query, studentID); err != nil {
		return nil, fmt.Errorf("list classes for student: %w", err)
	}
	return classes, nil
}

// FindByID returns a class by identifier.
func (r *ClassRepository) FindByID(ctx context.Context, id string) (*models.Class, error) {
	const query = `SELECT id, name, schedule, teacher_id, students FROM classes WHERE id = $1 LIMIT 1`
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find class by id: %w", err)
	}
	return &class, nil
}
