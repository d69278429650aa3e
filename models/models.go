package models

import (
	"time"

	"gorm.io/gorm"
)

// FileLog marks a batch import file as processed so it is never imported twice.
type FileLog struct {
	gorm.Model
	Filename     string `gorm:"size:255;uniqueIndex;not null"`
	DateModified time.Time
	Created      int
	Skipped      int
}
