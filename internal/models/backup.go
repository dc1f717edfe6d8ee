package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Backup is an immutable snapshot of client-declared metadata summaries.
// It never contains full record payloads, only {id, timestamp, approxBytes}
// entries as submitted by the client.
type Backup struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    *uint          `gorm:"index" json:"user_id"`
	Quizzes   datatypes.JSON `gorm:"type:jsonb" json:"quizzes"`
	Messages  datatypes.JSON `gorm:"type:jsonb" json:"messages"`
	Notes     datatypes.JSON `gorm:"type:jsonb" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
}
