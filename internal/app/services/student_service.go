package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/studenthub/internal/app/models"
	"github.com/yigit/studenthub/internal/app/models/dto"
	"github.com/yigit/studenthub/internal/app/repositories"
	"github.com/yigit/studenthub/internal/pkg/apperrors"
)

type studentService struct {
	studentRepo repositories.StudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// GetAll returns all students in insertion order
func (s *studentService) GetAll(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetByID returns a single student
func (s *studentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// Search filters students by name, course and grade
func (s *studentService) Search(ctx context.Context, filter dto.StudentSearchFilter) ([]models.Student, error) {
	return s.studentRepo.Search(ctx, repositories.StudentFilter{
		Name:   filter.Name,
		Course: filter.Course,
		Grade:  filter.Grade,
	})
}

// Create validates the request and stores a new student. Grade defaults
// to "N/A" when absent.
func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	if req.Name == "" || req.Email == "" || req.Course == "" {
		return nil, apperrors.NewValidationError("Please provide name, email, and course")
	}

	grade := req.Grade
	if grade == "" {
		grade = models.DefaultGrade
	}

	student, err := s.studentRepo.Create(ctx, &models.Student{
		Name:   req.Name,
		Email:  req.Email,
		Course: req.Course,
		Grade:  grade,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Str("email", student.Email).Msg("Student created")
	return student, nil
}

// Replace fully overwrites an existing student. The id must exist before
// anything else is checked, and a validation failure never mutates the store.
func (s *studentService) Replace(ctx context.Context, id int64, req dto.ReplaceStudentRequest) (*models.Student, error) {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.Name == "" || req.Email == "" || req.Course == "" || req.Grade == "" {
		return nil, apperrors.NewValidationError("PUT requires all fields: name, email, course, and grade")
	}

	return s.studentRepo.Replace(ctx, id, &models.Student{
		Name:   req.Name,
		Email:  req.Email,
		Course: req.Course,
		Grade:  req.Grade,
	})
}

// Patch merges the provided fields onto an existing student
func (s *studentService) Patch(ctx context.Context, id int64, req dto.PatchStudentRequest) (*models.Student, error) {
	return s.studentRepo.Patch(ctx, id, repositories.StudentPatch{
		Name:   req.Name,
		Email:  req.Email,
		Course: req.Course,
		Grade:  req.Grade,
	})
}

// Delete removes a student and returns the removed record
func (s *studentService) Delete(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return student, nil
}
