package services

import (
	"context"

	"github.com/yigit/studenthub/internal/app/models"
	"github.com/yigit/studenthub/internal/app/models/dto"
)

// StudentService handles student record operations
type StudentService interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Search(ctx context.Context, filter dto.StudentSearchFilter) ([]models.Student, error)
	Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	Replace(ctx context.Context, id int64, req dto.ReplaceStudentRequest) (*models.Student, error)
	Patch(ctx context.Context, id int64, req dto.PatchStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) (*models.Student, error)
}

// AuthService handles registration and login
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.PublicUser, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
