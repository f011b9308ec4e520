package logging

import (
	"log/slog"
	"time"

	"github.com/JasminHed/project-final-sub000/internal/models"
	"gorm.io/gorm"
)

// StartCleanup runs a daily goroutine that deletes system_logs older than 30
// days and expired or revoked access tokens.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -30)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}

				tokens := db.Where("expires_at < ? OR revoked = ?", time.Now(), true).Delete(&models.AccessToken{})
				if tokens.Error != nil {
					slog.Error("token cleanup failed", "error", tokens.Error)
				} else if tokens.RowsAffected > 0 {
					slog.Info("token cleanup completed", "deleted", tokens.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
