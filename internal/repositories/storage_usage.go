package repositories

import (
	"errors"

	"github.com/quizgen/quizgen/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageUsageRepository tracks per-user consumed bytes.
type StorageUsageRepository interface {
	// ByUserID returns nil (no error) when the user has no usage row yet.
	ByUserID(userID uint) (*models.StorageUsage, error)
	// Add creates the row with addBytes or increments the existing counter.
	// The increment happens in a single UPDATE so concurrent backups cannot
	// lose an addition.
	Add(userID uint, addBytes int64) error
}

type GormStorageUsageRepository struct {
	db *gorm.DB
}

func NewStorageUsageRepository(db *gorm.DB) *GormStorageUsageRepository {
	return &GormStorageUsageRepository{db: db}
}

func (r *GormStorageUsageRepository) ByUserID(userID uint) (*models.StorageUsage, error) {
	var usage models.StorageUsage
	err := r.db.Where("user_id = ?", userID).First(&usage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

func (r *GormStorageUsageRepository) Add(userID uint, addBytes int64) error {
	usage := models.StorageUsage{UserID: userID, UsedBytes: addBytes}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"used_bytes": gorm.Expr("storage_usages.used_bytes + ?", addBytes),
		}),
	}).Create(&usage).Error
}
