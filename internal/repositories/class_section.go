package repositories

import (
	"github.com/quizgen/quizgen/internal/models"
	"gorm.io/gorm"
)

type ClassSectionRepository interface {
	CountByOwner(ownerID uint) (int64, error)
	Create(section *models.ClassSection) error
}

type GormClassSectionRepository struct {
	db *gorm.DB
}

func NewClassSectionRepository(db *gorm.DB) *GormClassSectionRepository {
	return &GormClassSectionRepository{db: db}
}

func (r *GormClassSectionRepository) CountByOwner(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ClassSection{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *GormClassSectionRepository) Create(section *models.ClassSection) error {
	return r.db.Create(section).Error
}
