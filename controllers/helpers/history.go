package helpers

import (
	"time"

	"fms-app/models"
	"fms-app/types"

	"gorm.io/gorm"
)

// InsertTransactionHistory appends one audit row for a booking action.
func InsertTransactionHistory(db *gorm.DB, refID types.SnowflakeID, refNo, status, txType, detail string, actor int) error {
	history := models.TransactionHistory{
		RefID:     refID,
		RefNo:     refNo,
		Status:    status,
		Type:      txType,
		Detail:    detail,
		CreatedAt: time.Now(),
		CreatedBy: actor,
	}

	return db.Create(&history).Error
}
