package repositories

import (
	"context"
	"errors"

	"fms-app/models"
	"fms-app/utils"

	"gorm.io/gorm"
)

// ImportLogRepository tracks processed batch files and their per-row outcome.
type ImportLogRepository struct {
	db *gorm.DB
}

func NewImportLogRepository(db *gorm.DB) *ImportLogRepository {
	return &ImportLogRepository{db: db}
}

func (r *ImportLogRepository) Processed(ctx context.Context, filename string) (bool, error) {
	var existing models.FileLog
	err := r.db.WithContext(ctx).Where("filename = ?", filename).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ImportLogRepository) MarkProcessed(ctx context.Context, entry models.FileLog) error {
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *ImportLogRepository) LogRow(ctx context.Context, entry models.IntegrationLog) {
	utils.InsertLog(r.db.WithContext(ctx), entry)
}
