package models

import "time"

// IntegrationLog records the outcome of each row of a batch import file.
type IntegrationLog struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProcessName string    `gorm:"size:100;not null" json:"process_name"`
	FileName    string    `gorm:"size:255;index" json:"file_name"`
	RowNo       int       `json:"row_no"`
	BookingNo   string    `gorm:"size:20" json:"booking_no"`
	LogLevel    string    `gorm:"size:10;not null" json:"log_level"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedBy   string    `gorm:"size:100;default:'SYSTEM'" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
