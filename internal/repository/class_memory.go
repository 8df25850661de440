package repository

import (
	"context"
	"sync"

	"github.com/snaptrack/attendance-api/internal/models"
)

// MemoryClassRepository is the seeded in-process class roster.
type MemoryClassRepository struct {
	mu      sync.RWMutex
	classes []models.Class
}

// NewMemoryClassRepository builds the store from seed data.
func NewMemoryClassRepository(classes []models.Class) *MemoryClassRepository {
	return &MemoryClassRepository{classes: append([]models.Class(nil), classes...)}
}

// ClassesForTeacher returns the classes owned by the given teacher, in
// roster order.
func (r *MemoryClassRepository) ClassesForTeacher(_ context.Context, teacherID string) ([]models.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []models.Class{}
	for _, class := range r.classes {
		if class.TeacherID == teacherID {
			result = append(result, class)
		}
	}
	return result, nil
}

// ClassesForStudent returns the classes the given student is enrolled in, in
// roster order.
func (r *MemoryClassRepository) ClassesForStudent(_ context.Context, studentID string) ([]models.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []models.Class{}
	for _, class := range r.classes {
		if class.HasStudent(studentID) {
			result = append(result, class)
		}
	}
	return result, nil
}

// FindByID returns a class by identifier.
func (r *MemoryClassRepository) FindByID(_ context.Context, id string) (*models.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.classes {
		if r.classes[i].ID == id {
			class := r.classes[i]
			return &class, nil
		}
	}
	return nil, ErrNotFound
}
