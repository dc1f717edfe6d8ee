package models

import "time"

// ClassSection is a teacher-created section. Creation is gated by the owner's
// plan limit; there is no update or delete path.
type ClassSection struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
