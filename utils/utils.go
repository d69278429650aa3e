package utils

import (
	"fms-app/models"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// InsertLog stores an import log row. Failures are only logged.
func InsertLog(db *gorm.DB, entry models.IntegrationLog) {
	if err := db.Create(&entry).Error; err != nil {
		log.Errorw("insert integration log failed", "file", entry.FileName, "row", entry.RowNo, "error", err)
	}
}

// LogEvent writes a structured service event.
func LogEvent(module, action string, keysAndValues ...interface{}) {
	kv := append([]interface{}{"module", module, "action", action}, keysAndValues...)
	log.Infow(module+"."+action, kv...)
}
