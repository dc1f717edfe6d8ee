package logging

import (
	"log/slog"
	"time"

	"github.com/quizgen/quizgen/internal/models"
	"gorm.io/gorm"
)

// DefaultRetention is how long persisted log rows are kept.
const DefaultRetention = 30 * 24 * time.Hour

// StartCleanup runs a daily goroutine that prunes system_logs older than the
// retention window. A zero retention falls back to DefaultRetention. Closing
// done stops the goroutine.
func StartCleanup(db *gorm.DB, retention time.Duration, done chan struct{}) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				prune(db, retention)
			case <-done:
				return
			}
		}
	}()
}

func prune(db *gorm.DB, retention time.Duration) {
	cutoff := time.Now().Add(-retention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
	} else if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected, "cutoff", cutoff)
	}
}
