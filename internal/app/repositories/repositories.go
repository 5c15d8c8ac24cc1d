package repositories

import (
	"context"

	"github.com/yigit/studenthub/internal/app/models"
)

// StudentFilter holds search criteria for students. Empty fields are
// skipped; Name and Course match as case-insensitive substrings, Grade
// matches case-insensitively but exact.
type StudentFilter struct {
	Name   string
	Course string
	Grade  string
}

// StudentPatch holds a partial update. Nil fields are left untouched.
type StudentPatch struct {
	Name   *string
	Email  *string
	Course *string
	Grade  *string
}

// StudentRepository is the store abstraction for student records. The only
// implementation keeps records in process memory; a persistent backend would
// plug in behind the same interface.
type StudentRepository interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Search(ctx context.Context, filter StudentFilter) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	Replace(ctx context.Context, id int64, student *models.Student) (*models.Student, error)
	Patch(ctx context.Context, id int64, patch StudentPatch) (*models.Student, error)
	Delete(ctx context.Context, id int64) (*models.Student, error)
}

// UserRepository is the store abstraction for user accounts
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository StudentRepository
	UserRepository    UserRepository
}

// NewRepositories initializes the in-memory repositories
func NewRepositories() *Repositories {
	return &Repositories{
		StudentRepository: NewMemoryStudentRepository(),
		UserRepository:    NewMemoryUserRepository(),
	}
}
