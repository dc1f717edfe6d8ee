package services

import (
	"errors"
	"fmt"

	"github.com/quizgen/quizgen/internal/models"
	"github.com/quizgen/quizgen/internal/repositories"
)

var ErrPlanLimit = errors.New("plan limit reached; please upgrade")

type ClassService struct {
	users    repositories.UserRepository
	sections repositories.ClassSectionRepository
}

func NewClassService(users repositories.UserRepository, sections repositories.ClassSectionRepository) *ClassService {
	return &ClassService{users: users, sections: sections}
}

// CreateSection creates a class section unless the owner already holds as
// many sections as the plan allows. Users without a plan get the default
// limit of one section.
func (s *ClassService) CreateSection(ownerID uint, name string) (*models.ClassSection, error) {
	count, err := s.sections.CountByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sections: %w", err)
	}

	maxSections := models.DefaultMaxClassSections
	user, err := s.users.ByIDWithPlan(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Plan != nil {
		maxSections = user.Plan.MaxClassSections
	}

	if count >= int64(maxSections) {
		return nil, ErrPlanLimit
	}

	section := models.ClassSection{OwnerID: ownerID, Name: name}
	if err := s.sections.Create(&section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}
	return &section, nil
}
