package models

import "time"

// Plan is a seeded pricing tier. Rows are referenced by users, never mutated
// by user actions.
type Plan struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	MonthlyQuotaBytes int64     `gorm:"not null" json:"monthly_quota_bytes"`
	MaxClassSections  int       `gorm:"not null" json:"max_class_sections"`
	CreatedAt         time.Time `json:"created_at"`
}

// DefaultQuotaBytes applies when a user has no plan assigned (100 MiB).
const DefaultQuotaBytes int64 = 100 * 1024 * 1024

// DefaultMaxClassSections applies when a user has no plan assigned.
const DefaultMaxClassSections = 1
