package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/studenthub/internal/app/models"
	"github.com/yigit/studenthub/internal/app/repositories"
	"github.com/yigit/studenthub/internal/pkg/apperrors"
	"github.com/yigit/studenthub/internal/pkg/auth"
)

// CreateDefaultData inserts the starter student records and, when demoUsers
// is set, two demo accounts for trying the auth endpoints. Existing records
// are left alone so restarts of a supervised process stay quiet.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, demoUsers bool, lgr zerolog.Logger) error {
	var finalErr error

	students := []models.Student{
		{Name: "John Doe", Email: "john@example.com", Course: "Computer Science", Grade: "A"},
		{Name: "Jane Smith", Email: "jane@example.com", Course: "Mathematics", Grade: "B"},
		{Name: "Bob Johnson", Email: "bob@example.com", Course: "Physics", Grade: "A"},
	}

	for _, s := range students {
		student := s
		if _, err := repos.StudentRepository.Create(ctx, &student); err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("email", s.Email).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if !demoUsers {
		return finalErr
	}

	users := []struct {
		username string
		password string
		role     models.Role
	}{
		{"teacher", "teacher123", models.RoleAdmin},
		{"student", "student123", models.RoleUser},
	}

	for _, u := range users {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error hashing demo user password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		_, err = repos.UserRepository.Create(ctx, &models.User{
			Username: u.username,
			Password: hash,
			Role:     u.role,
		})
		if err != nil && !errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error seeding demo user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data seeded")
	return finalErr
}
