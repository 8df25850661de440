package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClassesForTeacher(t *testing.T) {
	repo := NewMemoryClassRepository(DemoClasses())

	classes, err := repo.ClassesForTeacher(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, classes, 2)

	classes, err = repo.ClassesForTeacher(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestMemoryClassesForStudent(t *testing.T) {
	repo := NewMemoryClassRepository(DemoClasses())

	classes, err := repo.ClassesForStudent(context.Background(), "2")
	require.NoError(t, err)
	assert.Len(t, classes, 2)

	classes, err = repo.ClassesForStudent(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, classes, "the teacher id must not match an enrollment")
}

func TestMemoryClassFindByID(t *testing.T) {
	repo := NewMemoryClassRepository(DemoClasses())

	class, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Mathematics 101", class.Name)

	_, err = repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUserFindByEmail(t *testing.T) {
	repo := NewMemoryUserRepository(DemoUsers())

	user, err := repo.FindByEmail(context.Background(), "teacher@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)

	// Email matching is exact and case-sensitive.
	_, err = repo.FindByEmail(context.Background(), "Teacher@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
