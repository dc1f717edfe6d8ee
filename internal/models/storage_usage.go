package models

import "time"

// StorageUsage tracks consumed backup bytes per user. One row per user,
// created on the first backup and incremented after that.
type StorageUsage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	UsedBytes int64     `gorm:"not null;default:0" json:"used_bytes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
