package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalyticsEvent is a consented telemetry report. Rows only exist for
// submissions that carried consent=true; the collector leaves the personal
// fields empty, the schema just reserves them.
type AnalyticsEvent struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      *uint          `gorm:"index" json:"user_id"`
	AgeRange    string         `gorm:"size:50" json:"age_range"`
	Country     string         `gorm:"size:100" json:"country"`
	City        string         `gorm:"size:100" json:"city"`
	DeviceType  string         `gorm:"size:20" json:"device_type"`
	ActiveHours string         `gorm:"size:100" json:"active_hours"`
	Interests   string         `gorm:"type:text" json:"interests"`
	Engagement  datatypes.JSON `gorm:"type:jsonb" json:"engagement"`
	CreatedAt   time.Time      `json:"created_at"`
}
