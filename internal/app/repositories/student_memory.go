package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/yigit/studenthub/internal/app/models"
	"github.com/yigit/studenthub/internal/pkg/apperrors"
)

// memoryStudentRepository keeps students in an insertion-ordered slice.
// Handlers run on concurrent goroutines, so mutations are guarded by a
// read-write lock. Assigned ids only ever increase; deletes never free them.
type memoryStudentRepository struct {
	mu       sync.RWMutex
	students []models.Student
	nextID   int64
}

// NewMemoryStudentRepository creates an empty in-memory student store
func NewMemoryStudentRepository() StudentRepository {
	return &memoryStudentRepository{
		nextID: 1,
	}
}

func notFoundErr(id int64) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("Student with id %d not found", id))
}

// GetAll returns all students in insertion order
func (r *memoryStudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Student, len(r.students))
	copy(out, r.students)
	return out, nil
}

// GetByID returns the student with the given id
func (r *memoryStudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.students {
		if r.students[i].ID == id {
			s := r.students[i]
			return &s, nil
		}
	}
	return nil, notFoundErr(id)
}

// Search returns the students matching every non-empty filter field
func (r *memoryStudentRepository) Search(ctx context.Context, filter StudentFilter) ([]models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.Student, 0)
	for _, s := range r.students {
		if filter.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Course != "" && !strings.Contains(strings.ToLower(s.Course), strings.ToLower(filter.Course)) {
			continue
		}
		if filter.Grade != "" && !strings.EqualFold(s.Grade, filter.Grade) {
			continue
		}
		results = append(results, s)
	}
	return results, nil
}

// Create assigns the next id and appends the student
func (r *memoryStudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(student.Email, 0) {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	student.ID = r.nextID
	r.nextID++
	r.students = append(r.students, *student)

	created := *student
	return &created, nil
}

// Replace overwrites the entire record at id, keeping the id itself
func (r *memoryStudentRepository) Replace(ctx context.Context, id int64, student *models.Student) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, notFoundErr(id)
	}
	if r.emailTaken(student.Email, id) {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	student.ID = id
	r.students[idx] = *student

	replaced := r.students[idx]
	return &replaced, nil
}

// Patch merges the non-nil fields of the patch onto the record at id
func (r *memoryStudentRepository) Patch(ctx context.Context, id int64, patch StudentPatch) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, notFoundErr(id)
	}
	if patch.Email != nil && r.emailTaken(*patch.Email, id) {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if patch.Name != nil {
		r.students[idx].Name = *patch.Name
	}
	if patch.Email != nil {
		r.students[idx].Email = *patch.Email
	}
	if patch.Course != nil {
		r.students[idx].Course = *patch.Course
	}
	if patch.Grade != nil {
		r.students[idx].Grade = *patch.Grade
	}

	merged := r.students[idx]
	return &merged, nil
}

// Delete removes the record at id and returns it
func (r *memoryStudentRepository) Delete(ctx context.Context, id int64) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, notFoundErr(id)
	}

	deleted := r.students[idx]
	r.students = append(r.students[:idx], r.students[idx+1:]...)
	return &deleted, nil
}

// indexOf returns the slice index of id, or -1. Callers must hold the lock.
func (r *memoryStudentRepository) indexOf(id int64) int {
	for i := range r.students {
		if r.students[i].ID == id {
			return i
		}
	}
	return -1
}

// emailTaken reports whether email belongs to a student other than excludeID.
// The comparison is case-sensitive. Callers must hold the lock.
func (r *memoryStudentRepository) emailTaken(email string, excludeID int64) bool {
	for i := range r.students {
		if r.students[i].Email == email && r.students[i].ID != excludeID {
			return true
		}
	}
	return false
}
