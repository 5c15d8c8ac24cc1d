package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studenthub/internal/app/models"
	"github.com/yigit/studenthub/internal/pkg/apperrors"
)

func seedStudents(t *testing.T) StudentRepository {
	t.Helper()
	repo := NewMemoryStudentRepository()
	ctx := context.Background()

	for _, s := range []models.Student{
		{Name: "John Doe", Email: "john@example.com", Course: "Computer Science", Grade: "A"},
		{Name: "Jane Smith", Email: "jane@example.com", Course: "Mathematics", Grade: "B"},
		{Name: "Bob Johnson", Email: "bob@example.com", Course: "Physics", Grade: "A"},
	} {
		student := s
		_, err := repo.Create(ctx, &student)
		require.NoError(t, err)
	}
	return repo
}

func strPtr(s string) *string { return &s }

func TestCreate_AssignsIncreasingIDs(t *testing.T) {
	repo := NewMemoryStudentRepository()
	ctx := context.Background()

	var lastID int64
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		created, err := repo.Create(ctx, &models.Student{Name: "X", Email: email, Course: "Y", Grade: "A"})
		require.NoError(t, err)
		assert.Greater(t, created.ID, lastID)
		lastID = created.ID
	}

	// Deleting must not free the id for reuse
	_, err := repo.Delete(ctx, lastID)
	require.NoError(t, err)

	created, err := repo.Create(ctx, &models.Student{Name: "X", Email: "d@example.com", Course: "Y", Grade: "A"})
	require.NoError(t, err)
	assert.Greater(t, created.ID, lastID)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := seedStudents(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Student{Name: "Someone Else", Email: "john@example.com", Course: "History", Grade: "C"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// The email comparison is case-sensitive
	_, err = repo.Create(ctx, &models.Student{Name: "Someone Else", Email: "John@example.com", Course: "History", Grade: "C"})
	assert.NoError(t, err)
}

func TestGetAll_InsertionOrder(t *testing.T) {
	repo := seedStudents(t)

	students, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "John Doe", students[0].Name)
	assert.Equal(t, "Jane Smith", students[1].Name)
	assert.Equal(t, "Bob Johnson", students[2].Name)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := seedStudents(t)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.EqualError(t, err, "Student with id 99 not found")
}

func TestSearch(t *testing.T) {
	repo := seedStudents(t)
	ctx := context.Background()

	// Case-insensitive substring match on name
	results, err := repo.Search(ctx, StudentFilter{Name: "jo"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "John Doe", results[0].Name)
	assert.Equal(t, "Bob Johnson", results[1].Name)

	// Substring match on course
	results, err = repo.Search(ctx, StudentFilter{Course: "math"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Smith", results[0].Name)

	// Grade matches exactly but case-insensitively
	results, err = repo.Search(ctx, StudentFilter{Grade: "a"})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Filters combine
	results, err = repo.Search(ctx, StudentFilter{Name: "jo", Grade: "a"})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// No filters returns everything
	results, err = repo.Search(ctx, StudentFilter{})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestReplace(t *testing.T) {
	repo := seedStudents(t)
	ctx := context.Background()

	replaced, err := repo.Replace(ctx, 1, &models.Student{Name: "John Q. Doe", Email: "johnq@example.com", Course: "Philosophy", Grade: "B"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), replaced.ID)
	assert.Equal(t, "Philosophy", replaced.Course)

	_, err = repo.Replace(ctx, 99, &models.Student{Name: "N", Email: "n@example.com", Course: "C", Grade: "A"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	// Another student's email is rejected
	_, err = repo.Replace(ctx, 1, &models.Student{Name: "John", Email: "jane@example.com", Course: "C", Grade: "A"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// Keeping your own email is allowed
	_, err = repo.Replace(ctx, 1, &models.Student{Name: "John", Email: "johnq@example.com", Course: "C", Grade: "A"})
	assert.NoError(t, err)
}

func TestPatch(t *testing.T) {
	repo := seedStudents(t)
	ctx := context.Background()

	merged, err := repo.Patch(ctx, 2, StudentPatch{Grade: strPtr("A")})
	require.NoError(t, err)
	assert.Equal(t, int64(2), merged.ID)
	assert.Equal(t, "Jane Smith", merged.Name)
	assert.Equal(t, "A", merged.Grade)

	_, err = repo.Patch(ctx, 2, StudentPatch{Email: strPtr("bob@example.com")})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = repo.Patch(ctx, 99, StudentPatch{Name: strPtr("Nobody")})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDelete(t *testing.T) {
	repo := seedStudents(t)
	ctx := context.Background()

	deleted, err := repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", deleted.Name)

	_, err = repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	students, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 2)

	_, err = repo.Delete(ctx, 2)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
