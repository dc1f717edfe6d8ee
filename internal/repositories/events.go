package repositories

import (
	"github.com/quizgen/quizgen/internal/models"
	"gorm.io/gorm"
)

// The remaining entities are append-only event rows: created once, never
// updated or deleted through the API.

type BackupRepository interface {
	Create(backup *models.Backup) error
}

type ContactRepository interface {
	Create(contact *models.Contact) error
}

type AnalyticsRepository interface {
	Create(event *models.AnalyticsEvent) error
}

type GormBackupRepository struct {
	db *gorm.DB
}

func NewBackupRepository(db *gorm.DB) *GormBackupRepository {
	return &GormBackupRepository{db: db}
}

func (r *GormBackupRepository) Create(backup *models.Backup) error {
	return r.db.Create(backup).Error
}

type GormContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

type GormAnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

func (r *GormAnalyticsRepository) Create(event *models.AnalyticsEvent) error {
	return r.db.Create(event).Error
}
