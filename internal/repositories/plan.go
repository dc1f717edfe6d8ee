package repositories

import (
	"github.com/quizgen/quizgen/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanRepository manages the seeded plan tiers.
type PlanRepository interface {
	EnsureDefaults() error
	List() ([]models.Plan, error)
}

type GormPlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// EnsureDefaults inserts the built-in plans when missing. Existing rows are
// left untouched so operators can tune quotas in place.
func (r *GormPlanRepository) EnsureDefaults() error {
	plans := []models.Plan{
		{Name: "free", MonthlyQuotaBytes: models.DefaultQuotaBytes, MaxClassSections: models.DefaultMaxClassSections},
		{Name: "pro", MonthlyQuotaBytes: 1024 * 1024 * 1024, MaxClassSections: 10},
	}

	for _, p := range plans {
		if err := r.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *GormPlanRepository) List() ([]models.Plan, error) {
	var plans []models.Plan
	if err := r.db.Order("id").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
